package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/mdtags/pkg/runner"
)

// FlatReporter writes the 15-integer tag records, one record per line,
// under a "# path count" header per file. Failed files get a
// "# path error: ..." header and no records.
type FlatReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewFlatReporter creates a new flat record reporter.
func NewFlatReporter(opts Options) *FlatReporter {
	return &FlatReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *FlatReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var total int
	buf := make([]byte, 0, 128) //nolint:mnd // fits one record

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprintf(r.bw, "# %s error: %v\n", path, file.Error)
			continue
		}

		fmt.Fprintf(r.bw, "# %s %d\n", path, len(file.Tags))
		for _, tag := range file.Tags {
			buf = buf[:0]
			for idx, field := range tag.Record() {
				if idx > 0 {
					buf = append(buf, ' ')
				}
				buf = strconv.AppendInt(buf, int64(field), 10)
			}
			buf = append(buf, '\n')
			if _, err := r.bw.Write(buf); err != nil {
				return total, fmt.Errorf("write record: %w", err)
			}
			total++
		}
	}

	return total, nil
}
