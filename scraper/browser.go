package scraper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

// Browser launches isolated browser sessions.
type Browser interface {
	Launch(ctx context.Context) (Session, error)
}

// Session is one running browser process. Close must be safe to call more
// than once.
type Session interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page is a single tab inside a Session.
type Page interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	Click(ctx context.Context, selector string, timeout time.Duration) error
	// Content returns the rendered document's outer HTML.
	Content(ctx context.Context) (string, error)
}

// ChromeBrowser starts a fresh Chrome process per session through chromedp.
type ChromeBrowser struct {
	opts []chromedp.ExecAllocatorOption
}

func NewChromeBrowser(opts ...chromedp.ExecAllocatorOption) *ChromeBrowser {
	return &ChromeBrowser{opts: opts}
}

func (b *ChromeBrowser) Launch(ctx context.Context) (Session, error) {
	// The session outlives individual calls, so it is rooted in a detached
	// context and torn down only by Close.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), b.opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// An empty Run starts the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	return &chromeSession{
		ctx:           browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
	}, nil
}

type chromeSession struct {
	ctx           context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc

	mu         sync.Mutex
	cancelTabs []context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

func (s *chromeSession) NewPage(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPage, err)
	}

	tabCtx, cancelTab := chromedp.NewContext(s.ctx)

	// The first Run opens the tab and binds it to the context it receives,
	// so it must not be a short-lived derivative.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		return nil, fmt.Errorf("%w: %v", ErrPage, err)
	}

	s.mu.Lock()
	s.cancelTabs = append(s.cancelTabs, cancelTab)
	s.mu.Unlock()

	return &chromePage{ctx: tabCtx}, nil
}

func (s *chromeSession) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		for _, cancelTab := range s.cancelTabs {
			cancelTab()
		}
		s.mu.Unlock()

		s.closeErr = chromedp.Cancel(s.ctx)
		s.cancelBrowser()
		s.cancelAlloc()
	})
	return s.closeErr
}

type chromePage struct {
	ctx context.Context
}

// run executes actions on the tab, bounded by timeout (if positive) and by
// the caller's ctx.
func (p *chromePage) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(p.ctx, timeout)
	} else {
		runCtx, cancel = context.WithCancel(p.ctx)
	}
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	return p.run(ctx, 0, chromedp.Navigate(url))
}

func (p *chromePage) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return p.run(ctx, timeout, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (p *chromePage) Click(ctx context.Context, selector string, timeout time.Duration) error {
	return p.run(ctx, timeout, chromedp.Click(selector, chromedp.ByQuery, chromedp.NodeVisible))
}

func (p *chromePage) Content(ctx context.Context) (string, error) {
	var html string
	err := p.run(ctx, 0, chromedp.OuterHTML(DocumentSelector, &html, chromedp.ByQuery))
	return html, err
}
