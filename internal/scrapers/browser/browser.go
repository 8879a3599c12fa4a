// Package browser drives a headless chrome for the acquisition tiers that need a real browser
// session.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/telemetry"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

const (
	report_browser_fetch_json    = "browser.fetch-json"
	report_browser_rendered_html = "browser.rendered-html"
)

// API is the part of a browser session the acquisition ladder needs.
//
// note: fault injection point
type API interface {
	// FetchJSON opens pageURL and then requests apiURL with fetch() from inside the page, so the
	// request carries the page's cookies and origin.
	FetchJSON(ctx context.Context, pageURL, apiURL string) ([]byte, error)
	// RenderedHTML opens pageURL, waits for waitSelector to be visible and returns the page's
	// html.
	RenderedHTML(ctx context.Context, pageURL, waitSelector string) (string, error)
}

type Config struct {
	// ExecPath overrides the chrome binary that is used.
	ExecPath       string `json:"exec_path"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	Headful        bool   `json:"headful"`
}

// Chrome is an API that starts a fresh headless chrome for every call.
type Chrome struct {
	config  Config
	timeout time.Duration
	tel     telemetry.API
}

func NewChrome(config Config, tel telemetry.API) Chrome {
	assert.NotNil(tel, "tel")
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return Chrome{
		config:  config,
		timeout: timeout,
		tel:     telemetry.NewScopedAPI("browser", tel),
	}
}

func (c Chrome) session(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !c.config.Headful),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"),
	)
	if c.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.config.ExecPath))
	}

	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, c.timeout)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	return browserCtx, func() {
		cancelBrowser()
		cancelAlloc()
		cancelTimeout()
	}
}

const fetchScript = `fetch(%s, {credentials: "include", headers: {"accept": "application/json"}})
	.then((res) => {
		if (!res.ok) { throw new Error("status " + res.status); }
		return res.text();
	})`

func (c Chrome) FetchJSON(ctx context.Context, pageURL, apiURL string) ([]byte, error) {
	ctx, cancel := c.session(ctx)
	defer cancel()

	quoted, err := json.Marshal(apiURL)
	if err != nil {
		return nil, err
	}

	var body string
	err = chromedp.Run(
		ctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(fmt.Sprintf(fetchScript, quoted), &body, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		c.tel.ReportWarning(report_browser_fetch_json, err, pageURL, apiURL)
		return nil, err
	}
	return []byte(body), nil
}

func (c Chrome) RenderedHTML(ctx context.Context, pageURL, waitSelector string) (string, error) {
	ctx, cancel := c.session(ctx)
	defer cancel()

	var html string
	err := chromedp.Run(
		ctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		c.tel.ReportWarning(report_browser_rendered_html, err, pageURL)
		return "", err
	}
	return html, nil
}
