// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and are started
// and stopped together through JobManager:
//
//	jobManager := jobs.NewJobManager(expireQuotesHandler, "", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// QuoteExpiryJob runs once a minute by default and removes quotes past their TTL.
// A quote that expires between sweeps is still rejected when an order tries
// to use it; the sweep only reclaims memory.
package jobs
