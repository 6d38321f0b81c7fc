// Package jobs provides scheduled background tasks for the laundry marketplace.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and run outside the
// request path.
//
// # Available Jobs
//
// ShopCounterReconciliationJob repairs drift between each shop's totalOrders
// counter and the number of orders referencing it. Order creation increments
// the counter after inserting the order and only logs a failed increment, so
// the counter may lag until the next run. When a geo index is configured the
// same run rebuilds it from the active shops.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, "0 */10 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Overlapping runs are skipped.
package jobs
