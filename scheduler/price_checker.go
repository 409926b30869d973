package scheduler

import (
	"log"

	"pricescout/models"
	"pricescout/repository"
	"pricescout/scraper"

	"github.com/robfig/cron/v3"
)

// PriceChecker rescrapes every watched URL on a cron schedule and records
// the outcomes.
type PriceChecker struct {
	cron       *cron.Cron
	scraper    *scraper.Scraper
	watchRepo  *repository.WatchRepository
	scrapeRepo *repository.ScrapeRepository
}

func NewPriceChecker(s *scraper.Scraper, watchRepo *repository.WatchRepository, scrapeRepo *repository.ScrapeRepository) *PriceChecker {
	return &PriceChecker{
		cron:       cron.New(cron.WithSeconds()),
		scraper:    s,
		watchRepo:  watchRepo,
		scrapeRepo: scrapeRepo,
	}
}

// Start schedules the periodic recheck.
func (pc *PriceChecker) Start(schedule string) {
	_, err := pc.cron.AddFunc(schedule, pc.checkAllWatches)
	if err != nil {
		log.Printf("Failed to schedule price checker: %v", err)
		return
	}

	pc.cron.Start()
	log.Printf("Price checker scheduled: %s", schedule)
}

// Stop stops the scheduled rechecking.
func (pc *PriceChecker) Stop() {
	if pc.cron != nil {
		pc.cron.Stop()
	}
}

// checkAllWatches rescrapes all active watches. Watches are checked one at
// a time; every scrape already owns a whole browser process, so fanning out
// here would only pile Chromium instances onto the host.
func (pc *PriceChecker) checkAllWatches() {
	watches, err := pc.watchRepo.GetWatches()
	if err != nil {
		log.Printf("Failed to get watches: %v", err)
		return
	}

	if len(watches) == 0 {
		log.Println("No watched URLs to check")
		return
	}

	log.Printf("Checking %d watched URLs", len(watches))

	for _, watch := range watches {
		pc.checkWatch(watch)
	}
}

// checkWatch rescrapes one watch and stores the result.
func (pc *PriceChecker) checkWatch(watch models.WatchedURL) {
	result := pc.scraper.Scrape(watch.URL)

	if err := pc.watchRepo.UpdateWatchResult(watch.ID, result); err != nil {
		log.Printf("Failed to update watch %d: %v", watch.ID, err)
	}
	if err := pc.scrapeRepo.AddRecord(watch.ID, result); err != nil {
		log.Printf("Failed to record scrape for watch %d: %v", watch.ID, err)
	}

	if result.Success && result.HasPrice() && watch.HasPrice() && *result.Price != watch.GetLastPrice() {
		log.Printf("Price change for %s: %.2f -> %.2f", watch.URL, watch.GetLastPrice(), *result.Price)
	}
}
