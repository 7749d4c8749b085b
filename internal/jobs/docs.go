// Package jobs provides scheduled background tasks for the shop service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OpenOrdersReportJob - Runs every minute and logs the number of orders in
// ORDER status together with their summed totals per currency
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(searchOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed search is logged and the next tick runs normally.
package jobs
