package exdoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/CAPITAL-Skrax/enaml/internal/fileutil"
	"github.com/CAPITAL-Skrax/enaml/internal/hints"
)

// Capture defaults. The settle delay gives asynchronous layout and font
// loading time to finish before the snapshot; it is a fixed wait, not a
// poll.
const (
	defaultCaptureTimeout = 30 * time.Second
	defaultSettleDelay    = 500 * time.Millisecond
	defaultViewportWidth  = 900
	defaultViewportHeight = 700
)

// File permission constants for capture artifacts.
const (
	cacheDirPermissions  = 0o750
	imageFilePermissions = 0o644
)

// Compile-time interface check.
var _ Capturer = (*RodCapturer)(nil)

// RodCapturer renders example previews in headless Chrome and saves PNG
// snapshots. Rod automatically downloads a managed Chromium on first run if
// none is found.
type RodCapturer struct {
	browser *rod.Browser
	preview *previewRenderer

	timeout     time.Duration
	settleDelay time.Duration
	width       int
	height      int
}

// CaptureOption configures a RodCapturer.
type CaptureOption func(*RodCapturer)

// WithCaptureTimeout sets the per-capture page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithCaptureTimeout(d time.Duration) CaptureOption {
	if d <= 0 {
		panic("exdoc: WithCaptureTimeout duration must be positive")
	}
	return func(c *RodCapturer) {
		c.timeout = d
	}
}

// WithSettleDelay sets the fixed wait between page load and snapshot.
func WithSettleDelay(d time.Duration) CaptureOption {
	if d < 0 {
		panic("exdoc: WithSettleDelay duration must not be negative")
	}
	return func(c *RodCapturer) {
		c.settleDelay = d
	}
}

// WithViewport sets the snapshot viewport in CSS pixels.
func WithViewport(width, height int) CaptureOption {
	if width <= 0 || height <= 0 {
		panic("exdoc: WithViewport dimensions must be positive")
	}
	return func(c *RodCapturer) {
		c.width = width
		c.height = height
	}
}

// NewRodCapturer creates a RodCapturer with default settings. The browser
// connection is established lazily on the first capture.
func NewRodCapturer(opts ...CaptureOption) *RodCapturer {
	c := &RodCapturer{
		preview:     newPreviewRenderer(),
		timeout:     defaultCaptureTimeout,
		settleDelay: defaultSettleDelay,
		width:       defaultViewportWidth,
		height:      defaultViewportHeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ensureBrowser lazily connects to the browser.
func (c *RodCapturer) ensureBrowser() error {
	if c.browser != nil {
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
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	return nil
}

// Close releases browser resources.
func (c *RodCapturer) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// Capture renders the example's preview page and writes the snapshot PNG to
// the requested path. The preview HTML is written into the loader cache
// directory next to the example; the Orchestrator removes that directory
// after every attempt.
func (c *RodCapturer) Capture(ctx context.Context, req CaptureRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.ensureBrowser(); err != nil {
		return err
	}

	source, err := os.ReadFile(req.ExamplePath) // #nosec G304 -- discovered path
	if err != nil {
		return fmt.Errorf("reading %s: %w", req.ExamplePath, err)
	}

	ex := NewExample(req.ExamplePath)
	htmlContent, err := c.preview.RenderPreview(ex, string(source))
	if err != nil {
		return err
	}

	previewPath, err := writePreview(req.ExampleDir, ex.Name, htmlContent)
	if err != nil {
		return err
	}

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + previewPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             c.width,
		Height:            c.height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Wait for page load with timeout from context or default
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForTimeout())
	}

	// Fixed settle delay before the snapshot, no polling or escalation.
	time.Sleep(c.settleDelay)

	img, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	if err := fileutil.EnsureDir(filepath.Dir(req.ImagePath)); err != nil {
		return fmt.Errorf("creating image directory: %w", err)
	}
	// #nosec G306 -- snapshots are meant to be readable
	if err := os.WriteFile(req.ImagePath, img, imageFilePermissions); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrScreenshot, req.ImagePath, err)
	}
	return nil
}

// writePreview stores the preview page inside the loader cache directory
// sibling to the example and returns its path.
func writePreview(exampleDir, name, htmlContent string) (string, error) {
	cacheDir := filepath.Join(exampleDir, cacheDirName)
	if err := os.MkdirAll(cacheDir, cacheDirPermissions); err != nil {
		return "", fmt.Errorf("creating preview cache: %w", err)
	}

	path := filepath.Join(cacheDir, name+".html")
	// #nosec G306 -- transient preview page, removed after capture
	if err := os.WriteFile(path, []byte(htmlContent), imageFilePermissions); err != nil {
		return "", fmt.Errorf("writing preview page: %w", err)
	}
	return path, nil
}
