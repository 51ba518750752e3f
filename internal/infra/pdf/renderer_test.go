package pdf

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"storefront/config"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *rodRenderer {
	bin := os.Getenv("CHROME_BIN")
	if bin == "" {
		found, ok := launcher.LookPath()
		if !ok {
			t.Skip("no Chromium binary available")
		}
		bin = found
	}

	r := newRodRenderer(&config.ExportConfig{ChromeBin: bin, RenderTimeout: 30 * time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func TestRodRenderer_RenderPDF(t *testing.T) {
	r := newTestRenderer(t)

	data, err := r.RenderPDF(context.Background(), `<html><body><h1>Invoice</h1></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRodRenderer_ClosedRejectsRender(t *testing.T) {
	r := newRodRenderer(&config.ExportConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, r.Close())

	_, err := r.RenderPDF(context.Background(), "<p>x</p>")
	assert.ErrorIs(t, err, ErrRendererClosed)
}
