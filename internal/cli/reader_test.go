package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/quota-sniper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonBlockingReader_ReadAll(t *testing.T) {
	nbr := NewNonBlockingReader(strings.NewReader("Imóvel CAIXA\nCrédito R$ 100.000,00\n"))

	text, err := nbr.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Imóvel CAIXA\nCrédito R$ 100.000,00\n", text)
}

func TestNonBlockingReader_ContextCancellation(t *testing.T) {
	t.Run("immediate cancellation", func(t *testing.T) {
		nbr := NewNonBlockingReader(strings.NewReader("data"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := nbr.ReadAll(ctx)
		assert.Equal(t, ErrInputCancelled, err)
	})

	t.Run("cancellation during read", func(t *testing.T) {
		// A pipe that never closes blocks ReadAll until the deadline.
		pr, pw := io.Pipe()
		defer func() { _ = pr.Close() }()
		defer func() { _ = pw.Close() }()

		nbr := NewNonBlockingReader(pr)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := nbr.ReadAll(ctx)
		assert.Equal(t, ErrInputCancelled, err)
	})
}

func TestNewNonBlockingReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewNonBlockingReader(nil) })
}

func TestReadListings(t *testing.T) {
	ctx := context.Background()

	t.Run("stdin", func(t *testing.T) {
		text, err := ReadListings(ctx, "-", strings.NewReader("Moto YAMAHA R$ 30.000,00"))
		require.NoError(t, err)
		assert.Equal(t, "Moto YAMAHA R$ 30.000,00", text)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "offers.txt")
		require.NoError(t, os.WriteFile(path, []byte("Imóvel CAIXA R$ 100.000,00"), 0o600))

		text, err := ReadListings(ctx, path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, "Imóvel CAIXA R$ 100.000,00", text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadListings(ctx, filepath.Join(t.TempDir(), "missing.txt"), nil)
		var userErr *common.UserError
		assert.ErrorAs(t, err, &userErr)
	})

	t.Run("blank input", func(t *testing.T) {
		_, err := ReadListings(ctx, "", strings.NewReader(" \n\t\n"))
		assert.ErrorIs(t, err, common.ErrNoInput)
	})
}
