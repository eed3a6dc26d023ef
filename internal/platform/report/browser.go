package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

const mmPerInch = 25.4

// assetsReady is polled until fonts and images have finished loading, so
// the PDF never captures a half-rendered page.
const assetsReady = `document.fonts.status === "loaded" && Array.from(document.images).every(i => i.complete)`

// Renderer turns an HTML document into PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
	Close()
}

// BrowserRenderer drives a headless Chrome instance. The browser is
// launched lazily on first use and shared by all renders; each render
// gets its own tab. A failed launch resets the state so the next request
// retries.
type BrowserRenderer struct {
	timeout time.Duration
	log     zerolog.Logger

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

func NewBrowserRenderer(timeout time.Duration, log zerolog.Logger) *BrowserRenderer {
	return &BrowserRenderer{timeout: timeout, log: log}
}

func (b *BrowserRenderer) browser() (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browserCtx != nil {
		return b.browserCtx, nil
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// start the browser process now so launch failures surface here
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b.log.Info().Msg("headless browser started")
	b.allocCancel = allocCancel
	b.browserCtx = browserCtx
	b.browserCancel = browserCancel
	return b.browserCtx, nil
}

// RenderPDF prints the given HTML as an A4 document with 10mm margins
// and backgrounds on. The render runs in a fresh tab on the shared
// browser under the configured timeout; the caller context is only
// checked before work starts, matching the fire-and-forget print model.
func (b *BrowserRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browserCtx, err := b.browser()
	if err != nil {
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()
	runCtx, cancelRun := context.WithTimeout(tabCtx, b.timeout)
	defer cancelRun()

	var pdf []byte
	var ready bool
	err = chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.Poll(assetsReady, &ready),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(10 / mmPerInch).
				WithMarginBottom(10 / mmPerInch).
				WithMarginLeft(10 / mmPerInch).
				WithMarginRight(10 / mmPerInch).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

// Close shuts the shared browser down. Safe to call without a prior
// launch.
func (b *BrowserRenderer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browserCancel != nil {
		b.browserCancel()
		b.browserCancel = nil
		b.browserCtx = nil
	}
	if b.allocCancel != nil {
		b.allocCancel()
		b.allocCancel = nil
	}
}
