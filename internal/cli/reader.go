package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/quota-sniper/internal/common"
	"github.com/Veraticus/quota-sniper/internal/config"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader reads pasted listings while honoring context cancellation,
// so Ctrl-C works while waiting on a terminal.
type NonBlockingReader struct {
	reader io.Reader
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{reader: reader}
}

// ReadAll reads until EOF or until ctx is done.
func (r *NonBlockingReader) ReadAll(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		data, err := io.ReadAll(r.reader)
		resultCh <- result{value: string(data), err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine finishes on its own once the reader returns.
		return "", ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}

// ReadListings loads listing text from path, or from stdin when path is empty
// or "-". Whitespace-only input is rejected with common.ErrNoInput.
func ReadListings(ctx context.Context, path string, stdin io.Reader) (string, error) {
	var src io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(config.ExpandPath(path))
		if err != nil {
			return "", common.NewUserError(fmt.Sprintf("cannot open %s", path), err)
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	text, err := NewNonBlockingReader(src).ReadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read listings: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", common.NewUserError("nothing to parse, paste listings or pass a file", common.ErrNoInput)
	}
	return text, nil
}
