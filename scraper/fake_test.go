package scraper

import (
	"context"
	"errors"
	"sync"
	"time"
)

type fakeBrowser struct {
	launchErr error
	session   *fakeSession
}

func (b *fakeBrowser) Launch(ctx context.Context) (Session, error) {
	if b.launchErr != nil {
		return nil, b.launchErr
	}
	return b.session, nil
}

type fakeSession struct {
	page    *fakePage
	pageErr error

	mu     sync.Mutex
	closed int
}

func (s *fakeSession) NewPage(ctx context.Context) (Page, error) {
	if s.pageErr != nil {
		return nil, s.pageErr
	}
	return s.page, nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	return nil
}

func (s *fakeSession) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// fakePage answers WaitVisible from a fixed set of present selectors.
type fakePage struct {
	html        string
	present     map[string]bool
	navigateErr error
	contentErr  error
	clickErr    map[string]error

	navigated []string
	waited    []string
	clicked   []string
}

var errNotVisible = errors.New("context deadline exceeded")

func newFakePage(html string, present ...string) *fakePage {
	p := &fakePage{html: html, present: make(map[string]bool), clickErr: make(map[string]error)}
	for _, sel := range present {
		p.present[sel] = true
	}
	return p
}

func (p *fakePage) Navigate(ctx context.Context, url string) error {
	p.navigated = append(p.navigated, url)
	return p.navigateErr
}

func (p *fakePage) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	p.waited = append(p.waited, selector)
	if !p.present[selector] {
		return errNotVisible
	}
	return nil
}

func (p *fakePage) Click(ctx context.Context, selector string, timeout time.Duration) error {
	if err := p.clickErr[selector]; err != nil {
		return err
	}
	p.clicked = append(p.clicked, selector)
	return nil
}

func (p *fakePage) Content(ctx context.Context) (string, error) {
	if p.contentErr != nil {
		return "", p.contentErr
	}
	return p.html, nil
}
