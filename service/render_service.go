package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// pdfTimeout bounds a whole headless Chrome print
const pdfTimeout = 30 * time.Second

// RenderService prints site pages to PDF with headless Chrome
type RenderService struct {
	baseURL    string // Base URL Chrome uses to reach this server (e.g., "http://localhost:8080")
	chromePath string
}

// NewRenderService creates a new RenderService. chromePath may be empty to auto-detect.
func NewRenderService(baseURL, chromePath string) *RenderService {
	return &RenderService{baseURL: baseURL, chromePath: chromePath}
}

// chromeCandidates are the common installation paths, probed in order
var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// detectChromePath returns the configured Chrome path if it exists,
// otherwise the first of chromeCandidates found
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	for _, path := range chromeCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ProductSheetURL is the page Chrome prints for a product spec sheet
func (s *RenderService) ProductSheetURL(slug string) string {
	return s.baseURL + DetailURL(slug)
}

// ProductSheetPDF prints the detail page of a product to an A4 PDF
func (s *RenderService) ProductSheetPDF(ctx context.Context, slug string) ([]byte, error) {
	return s.printPDF(ctx, s.ProductSheetURL(slug))
}

func (s *RenderService) printPDF(ctx context.Context, pageURL string) ([]byte, error) {
	if _, err := url.Parse(pageURL); err != nil {
		return nil, fmt.Errorf("invalid render URL %s: %w", pageURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, pdfTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(s.chromePath); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	} else {
		log.Warn().Msg("⚠️  RenderService: no Chrome found, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	log.Info().Msgf("📄 RenderService: printing %s", pageURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
