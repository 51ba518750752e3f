// Package pdf prints HTML documents to PDF with headless Chromium.
package pdf

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrRendererClosed is returned by RenderPDF after Close.
var ErrRendererClosed = errors.New("renderer closed")

// RendererParams holds the dependencies for NewRenderer.
type RendererParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// rodRenderer launches Chromium on first use and reuses it; each render gets its own tab.
type rodRenderer struct {
	chromeBin string
	timeout   time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	browser *rod.Browser
	closed  bool
}

// NewRenderer creates a DocumentRenderer and closes the browser on shutdown.
func NewRenderer(params RendererParams) service.DocumentRenderer {
	r := newRodRenderer(params.Config.Export, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return r.Close()
		},
	})

	return r
}

func newRodRenderer(cfg *config.ExportConfig, logger *slog.Logger) *rodRenderer {
	return &rodRenderer{
		chromeBin: cfg.ChromeBin,
		timeout:   cfg.RenderTimeout,
		logger:    logger,
	}
}

// RenderPDF loads markup into a fresh tab and prints it with the page's own CSS size.
func (r *rodRenderer) RenderPDF(ctx context.Context, markup string) ([]byte, error) {
	browser, err := r.connect()
	if err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open page")
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			r.logger.Warn("Failed to close render page", slog.Any("error", closeErr))
		}
	}()

	if err := page.SetDocumentContent(markup); err != nil {
		return nil, errors.Wrap(err, "failed to load document")
	}
	if err := page.WaitLoad(); err != nil {
		return nil, errors.Wrap(err, "failed to wait for document")
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to print document")
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read printed document")
	}

	return data, nil
}

// Close shuts the browser down. Rendering afterwards fails with ErrRendererClosed.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	if r.browser == nil {
		return nil
	}
	browser := r.browser
	r.browser = nil

	return errors.Wrap(browser.Close(), "failed to close browser")
}

func (r *rodRenderer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRendererClosed
	}
	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(true).Leakless(false)
	if r.chromeBin != "" {
		l = l.Bin(r.chromeBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, errors.Wrap(err, "failed to launch browser")
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to browser")
	}
	r.logger.Info("Headless browser started")
	r.browser = browser

	return browser, nil
}
