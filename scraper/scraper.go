package scraper

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/emon51/property-scraper/models"
)

// Scraper extracts property details from one listing URL at a time.
type Scraper struct {
	browser           Browser
	sequencer         *Sequencer
	extractor         *Extractor
	navigationTimeout time.Duration
	logger            *zap.Logger
}

// Options controls the interaction steps and page timeouts of a Scraper.
type Options struct {
	ScrapeAmenities   bool
	StepTimeout       time.Duration
	NavigationTimeout time.Duration
}

func NewScraper(browser Browser, opts Options, logger *zap.Logger) *Scraper {
	return &Scraper{
		browser:           browser,
		sequencer:         NewSequencer(DefaultSteps(opts.ScrapeAmenities), opts.StepTimeout, logger),
		extractor:         NewExtractor(opts.ScrapeAmenities),
		navigationTimeout: opts.NavigationTimeout,
		logger:            logger,
	}
}

// Scrape loads a single listing page in its own browser session and
// extracts its details. Failed navigation yields no record. The session is
// closed on every return path.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*models.PropertyRecord, error) {
	log := s.logger.With(zap.String("url", pageURL))

	session, err := s.browser.Launch(ctx)
	if err != nil {
		log.Error("Failed to launch browser", zap.Error(err))
		return nil, err
	}
	defer func() {
		log.Info("Closing browser")
		if err := session.Close(); err != nil {
			log.Warn("Browser did not close cleanly", zap.Error(err))
		}
	}()

	page, err := session.NewPage(ctx)
	if err != nil {
		log.Error("Failed to open page", zap.Error(err))
		return nil, err
	}

	if err := s.navigate(ctx, page, pageURL); err != nil {
		log.Error("Navigation failed", zap.Error(err))
		return nil, err
	}

	if failed := s.sequencer.Run(ctx, page); len(failed) > 0 {
		log.Info("Continuing with extraction", zap.Strings("failed_steps", failed))
	}

	html, err := page.Content(ctx)
	if err != nil {
		err = fmt.Errorf("%w: read document: %v", ErrPage, err)
		log.Error("Failed to read page content", zap.Error(err))
		return nil, err
	}

	record := s.extractor.ExtractHTML(html)
	s.report(log, record)

	return &record, nil
}

func (s *Scraper) navigate(ctx context.Context, page Page, pageURL string) error {
	if err := validateURL(pageURL); err != nil {
		return err
	}

	navCtx := ctx
	if s.navigationTimeout > 0 {
		var cancel context.CancelFunc
		navCtx, cancel = context.WithTimeout(ctx, s.navigationTimeout)
		defer cancel()
	}

	if err := page.Navigate(navCtx, pageURL); err != nil {
		// An interrupted run is not a navigation failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %v", ErrNavigation, pageURL, err)
	}
	return nil
}

func validateURL(pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNavigation, pageURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute URL", ErrNavigation, pageURL)
	}
	return nil
}

// report logs the extracted record.
func (s *Scraper) report(log *zap.Logger, record models.PropertyRecord) {
	fields := []zap.Field{
		zap.String("name", record.Name),
		zap.String("type", record.Category),
		zap.Stringer("bedrooms", record.Bedrooms),
		zap.Stringer("bathrooms", record.Bathrooms),
	}
	if record.Amenities != nil {
		fields = append(fields,
			zap.Strings("available", record.Amenities.Available),
			zap.Strings("not_included", record.Amenities.Unavailable),
		)
	}
	log.Info("Property details", fields...)
}
