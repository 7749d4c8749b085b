package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderSearcher runs order searches. queries.SearchOrdersQueryHandler satisfies it.
type OrderSearcher interface {
	Handle(ctx context.Context, query queries.SearchOrdersQuery) ([]queries.SearchOrdersQueryResponse, error)
}

// OpenOrdersReportJob periodically logs how many orders are still open and
// what they are worth per currency.
//
// The report reads at most queries.SearchOrdersLimit orders. When the search
// comes back full the count and totals are lower bounds, and the report is
// logged at warn level with truncated=true.
type OpenOrdersReportJob struct {
	searcher OrderSearcher
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOpenOrdersReportJob creates a report job backed by searcher.
func NewOpenOrdersReportJob(searcher OrderSearcher, logger *slog.Logger) *OpenOrdersReportJob {
	return &OpenOrdersReportJob{
		searcher: searcher,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "open_orders_report_job"),
	}
}

// Start schedules the report at the beginning of every minute.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started (running every minute)")
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OpenOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}

func (j *OpenOrdersReportJob) run(ctx context.Context) {
	query, err := queries.NewSearchOrdersQuery(order.Ordered.String(), "")
	if err != nil {
		j.logger.ErrorContext(ctx, "Open orders report job failed", "error", err)
		return
	}

	orders, err := j.searcher.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Open orders report job failed", "error", err)
		return
	}

	totals := make(map[string]kernel.Money)
	for _, o := range orders {
		code := o.TotalPrice.Currency().String()
		sum, ok := totals[code]
		if !ok {
			totals[code] = o.TotalPrice
			continue
		}
		if sum, err = sum.Add(o.TotalPrice); err != nil {
			j.logger.ErrorContext(ctx, "Open orders report job failed", "error", err)
			return
		}
		totals[code] = sum
	}

	truncated := len(orders) >= queries.SearchOrdersLimit
	attrs := []any{
		slog.Int("open_orders", len(orders)),
		slog.Int("limit", queries.SearchOrdersLimit),
		slog.Bool("truncated", truncated),
	}
	for code, total := range totals {
		attrs = append(attrs, slog.String("total_"+code, total.Amount().String()))
	}

	level := slog.LevelInfo
	if truncated {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Open orders report", attrs...)
}
