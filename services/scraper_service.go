package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/emon51/property-scraper/config"
	"github.com/emon51/property-scraper/models"
	"github.com/emon51/property-scraper/scraper"
)

// PageScraper scrapes a single listing URL.
type PageScraper interface {
	Scrape(ctx context.Context, url string) (*models.PropertyRecord, error)
}

type ScraperService struct {
	cfg     *config.Config
	scraper PageScraper
	logger  *zap.Logger
}

func NewScraperService(cfg *config.Config, s PageScraper, logger *zap.Logger) *ScraperService {
	return &ScraperService{cfg: cfg, scraper: s, logger: logger}
}

// ScrapeAll scrapes every URL, each in its own browser session, and returns
// results in input order. At most cfg.MaxConcurrent scrapes run at once and
// starts are spaced by cfg.RequestDelay. Per-URL failures stay in the
// results; the first launch failure is also returned as the error.
func (ss *ScraperService) ScrapeAll(ctx context.Context, urls []string) ([]models.ScrapeResult, error) {
	results := make([]models.ScrapeResult, len(urls))
	if len(urls) == 0 {
		return results, nil
	}

	maxConcurrent := ss.cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	limit := rate.Inf
	if ss.cfg.RequestDelay > 0 {
		limit = rate.Every(ss.cfg.RequestDelay)
	}
	limiter := rate.NewLimiter(limit, 1)

	type scrapeJob struct {
		index int
		url   string
	}

	jobs := make(chan scrapeJob)
	resultsChan := make(chan models.ScrapeResult, len(urls))

	workers := min(maxConcurrent, len(urls))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				resultsChan <- ss.scrapeOne(ctx, limiter, job.index, len(urls), job.url)
			}
		}()
	}

	// Jobs are handed out in input order, so a single worker scrapes
	// sequentially.
	go func() {
		for i, u := range urls {
			jobs <- scrapeJob{index: i, url: u}
		}
		close(jobs)
		wg.Wait()
		close(resultsChan)
	}()

	for result := range resultsChan {
		results[result.Index] = result
	}

	for _, result := range results {
		if errors.Is(result.Err, scraper.ErrLaunch) {
			return results, result.Err
		}
	}

	return results, nil
}

func (ss *ScraperService) scrapeOne(ctx context.Context, limiter *rate.Limiter, index, total int, pageURL string) models.ScrapeResult {
	if err := limiter.Wait(ctx); err != nil {
		return models.ScrapeResult{URL: pageURL, Index: index, Err: err}
	}

	ss.logger.Info("Scraping",
		zap.String("progress", fmt.Sprintf("%d/%d", index+1, total)),
		zap.String("url", pageURL),
	)

	record, err := ss.scraper.Scrape(ctx, pageURL)
	return models.ScrapeResult{URL: pageURL, Index: index, Record: record, Err: err}
}
