package utils

import (
	"github.com/chromedp/chromedp"
	"github.com/emon51/property-scraper/config"
)

// AllocatorOptions returns the Chrome flags used for every scrape session.
// chromedp's defaults already disable extensions and the first-run UI.
func AllocatorOptions(cfg *config.Config) []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1440, 900),
	)
}
