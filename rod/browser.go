// Package rod provides headless Chrome implementations of bookpdf services:
// a Fetcher for JavaScript-rendered books and the PDF Renderer.
package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/bookpdf"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Browser owns a headless Chrome process shared by the Fetcher and the
// Renderer. Chrome is launched on first use.
//
// Browser is safe for concurrent use.
type Browser struct {
	bin       string
	noSandbox bool

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   atomic.Bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithBin uses the Chrome binary at path instead of rod's lookup/download.
func WithBin(path string) BrowserOption {
	return func(b *Browser) {
		b.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, which containers and CI
// environments usually require.
func WithNoSandbox(v bool) BrowserOption {
	return func(b *Browser) {
		b.noSandbox = v
	}
}

// NewBrowser creates a Browser. Close must be called when it is no longer
// needed.
func NewBrowser(opts ...BrowserOption) *Browser {
	b := &Browser{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Get returns the connected browser, launching Chrome if necessary.
func (b *Browser) Get() (*rod.Browser, error) {
	if b.closed.Load() {
		return nil, bookpdf.Errorf(bookpdf.EINVALID, "browser is closed")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil {
		return b.browser, nil
	}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b.browser, nil
}

// Close shuts down Chrome. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 if
// Chrome has not been started.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

// launch starts Chrome with stability flags. Must be called with mu held.
func (b *Browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if b.bin != "" {
		l = l.Bin(b.bin)
	}
	if b.noSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = l
	return nil
}
