package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/emon51/property-scraper/config"
	"github.com/emon51/property-scraper/scraper"
	"github.com/emon51/property-scraper/services"
	"github.com/emon51/property-scraper/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run Chrome headless")
	flag.BoolVar(&cfg.ScrapeAmenities, "amenities", cfg.ScrapeAmenities, "Open and scrape the amenities panel")
	flag.DurationVar(&cfg.StepTimeout, "step-timeout", cfg.StepTimeout, "Wait per interaction step")
	flag.DurationVar(&cfg.NavigationTimeout, "nav-timeout", cfg.NavigationTimeout, "Wait for page load")
	flag.DurationVar(&cfg.RequestDelay, "delay", cfg.RequestDelay, "Minimum spacing between scrapes")
	flag.IntVar(&cfg.MaxConcurrent, "concurrent", cfg.MaxConcurrent, "Scrapes running at once")
	flag.StringVar(&cfg.OutputFile, "out", cfg.OutputFile, "Output CSV file")
	flag.BoolVar(&cfg.AppendOutput, "append", cfg.AppendOutput, "Append to the output file instead of replacing it")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file (empty for console only)")
	flag.Parse()

	if flag.NArg() > 0 {
		cfg.URLs = flag.Args()
	}

	logger, err := utils.NewLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, logger.Logger)

	stop()
	_ = logger.Close()

	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Property scraper starting",
		zap.Int("urls", len(cfg.URLs)),
		zap.Bool("amenities", cfg.ScrapeAmenities),
		zap.String("output", cfg.OutputFile),
		zap.Bool("postgres", cfg.DBConfig.Enabled),
	)

	browser := scraper.NewChromeBrowser(utils.AllocatorOptions(cfg)...)
	s := scraper.NewScraper(browser, scraper.Options{
		ScrapeAmenities:   cfg.ScrapeAmenities,
		StepTimeout:       cfg.StepTimeout,
		NavigationTimeout: cfg.NavigationTimeout,
	}, logger)

	pipeline := services.NewPipeline(cfg, s, logger)
	if _, err := pipeline.Execute(ctx, cfg.URLs); err != nil {
		logger.Error("Scraping aborted", zap.Error(err))
		return err
	}

	return nil
}
