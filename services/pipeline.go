package services

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emon51/property-scraper/config"
	"github.com/emon51/property-scraper/models"
	"github.com/emon51/property-scraper/storage"
)

type Pipeline struct {
	cfg     *config.Config
	scraper PageScraper
	logger  *zap.Logger
	runID   string
	report  io.Writer
}

func NewPipeline(cfg *config.Config, s PageScraper, logger *zap.Logger) *Pipeline {
	runID := uuid.NewString()
	return &Pipeline{
		cfg:     cfg,
		scraper: s,
		logger:  logger.With(zap.String("run_id", runID)),
		runID:   runID,
		report:  os.Stdout,
	}
}

// RunID identifies this pipeline run in logs and stored rows.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Execute runs the complete scraping pipeline. Output failures are logged;
// only a browser launch failure is returned.
func (p *Pipeline) Execute(ctx context.Context, urls []string) ([]models.ScrapeResult, error) {
	start := time.Now()
	filter := NewFilter()

	// Step 1: Scrape
	urls = filter.NormalizeURLs(urls)
	p.logger.Info("STEP 1: SCRAPING", zap.Int("urls", len(urls)))

	scraperService := NewScraperService(p.cfg, p.scraper, p.logger)
	results, launchErr := scraperService.ScrapeAll(ctx, urls)

	records := filter.Records(results)
	p.logger.Info("Scraping finished",
		zap.Int("records", len(records)),
		zap.Int("failed", len(results)-len(records)),
	)

	// Step 2: Save to CSV
	p.saveToCSV(records)

	// Step 3: Save to PostgreSQL
	if p.cfg.DBConfig.Enabled {
		p.saveToDatabase(ctx, results)
	}

	// Step 4: Summary
	p.generateInsights(results)

	p.logger.Info("Pipeline finished", zap.Duration("elapsed", time.Since(start)))

	return results, launchErr
}

func (p *Pipeline) saveToCSV(records []models.PropertyRecord) {
	p.logger.Info("STEP 2: SAVING TO CSV", zap.String("file", p.cfg.OutputFile))

	if len(records) == 0 {
		p.logger.Info("No records to save")
		return
	}

	csvWriter := storage.NewCSVWriter(p.cfg.OutputFile, p.cfg.AppendOutput)
	if err := csvWriter.WriteRecords(records); err != nil {
		p.logger.Error("CSV save failed", zap.Error(err))
		return
	}

	p.logger.Info("Records saved", zap.Int("rows", len(records)), zap.String("file", p.cfg.OutputFile))
}

func (p *Pipeline) saveToDatabase(ctx context.Context, results []models.ScrapeResult) {
	p.logger.Info("STEP 3: SAVING TO POSTGRESQL")

	db := p.cfg.DBConfig
	pgWriter, err := storage.NewPostgresWriter(db.Host, db.Port, db.User, db.Password, db.DBName, db.SSLMode)
	if err != nil {
		p.logger.Error("Database connection failed", zap.Error(err))
		return
	}
	defer pgWriter.Close()

	if err := pgWriter.CreateTable(ctx); err != nil {
		p.logger.Error("Table creation failed", zap.Error(err))
		return
	}

	saved, err := pgWriter.InsertResults(ctx, p.runID, results)
	if err != nil {
		p.logger.Error("Database insert failed", zap.Error(err))
		return
	}

	p.logger.Info("Records saved to PostgreSQL", zap.Int("rows", saved))
}

func (p *Pipeline) generateInsights(results []models.ScrapeResult) {
	p.logger.Info("STEP 4: SUMMARY")

	insightGen := NewInsightGenerator()
	insights := insightGen.Generate(results)
	insightGen.PrintReport(p.report, insights)
}
