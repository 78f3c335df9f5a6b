// Package chrome adapts a headless Chrome browser (via go-rod) to the
// pipeline's element and rasterizer capabilities: it loads documents, hands
// out measured element handles, and screenshots subtrees into bitmaps.
// Rod automatically downloads Chromium on first run if not found.
package chrome

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds page loads when the context carries no deadline.
const DefaultTimeout = 30 * time.Second

// Browser owns one headless Chrome instance, connected lazily on first use.
// Not safe for concurrent use.
type Browser struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewBrowser creates a Browser with the given page-load timeout.
// A non-positive timeout means DefaultTimeout.
func NewBrowser(timeout time.Duration) *Browser {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Browser{timeout: timeout}
}

// ensure lazily launches and connects to the browser.
func (b *Browser) ensure() error {
	if b.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b.browser = rod.New().ControlURL(u)
	if err := b.browser.Connect(); err != nil {
		b.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (b *Browser) Close() error {
	if b.browser != nil {
		err := b.browser.Close()
		b.browser = nil
		return err
	}
	return nil
}

// Open loads url (http, https, or file scheme) and waits for the load event.
func (b *Browser) Open(ctx context.Context, url string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := b.ensure(); err != nil {
		return nil, err
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	timeout := b.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			page.Close()
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	return &Page{page: page}, nil
}

// Page is one loaded document in the browser.
type Page struct {
	page *rod.Page
}

// Close closes the underlying browser tab.
func (p *Page) Close() error {
	return p.page.Close()
}
