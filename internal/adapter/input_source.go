package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// InputSource hides where record text comes from so the workflow can be tested
// without touching the disk.
type InputSource interface {
	// Open returns the concatenation of the files at paths, or standard input
	// when no path is given. A path of "-" also stands for standard input.
	Open(paths ...m.Path) (io.ReadCloser, error)
}

// LocalInputSource reads records from local files and the process standard input.
type LocalInputSource struct {
	stdin io.Reader
}

// NewLocalInputSource constructs a LocalInputSource that falls back to stdin.
func NewLocalInputSource(stdin io.Reader) *LocalInputSource {
	return &LocalInputSource{stdin: stdin}
}

// Open implements InputSource.
func (s *LocalInputSource) Open(paths ...m.Path) (io.ReadCloser, error) {
	if len(paths) == 0 {
		return io.NopCloser(s.stdin), nil
	}

	readers := make([]io.Reader, 0, len(paths))
	closers := make(multiCloser, 0, len(paths))

	for _, path := range paths {
		if path == "-" {
			readers = append(readers, s.stdin)
			continue
		}

		f, err := os.Open(string(path))
		if err != nil {
			_ = closers.Close()
			return nil, fmt.Errorf("failed to open input %s: %w", path, err)
		}

		readers = append(readers, f)
		closers = append(closers, f)
	}

	return struct {
		io.Reader
		io.Closer
	}{io.MultiReader(readers...), closers}, nil
}

type multiCloser []io.Closer

func (mc multiCloser) Close() error {
	var errs []error

	for _, c := range mc {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
