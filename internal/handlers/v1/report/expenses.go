package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/cashbox-server/internal/logging"
	"github.com/carson-networks/cashbox-server/internal/report"
)

type expenseReporter interface {
	ExpensesByPeriod(ctx context.Context, periodToken, start, end string) ([]report.Series, error)
	ExpenseSummaryByPeriod(ctx context.Context, periodToken, start, end string) ([]report.Bucket, error)
	ExpensesByDateRange(ctx context.Context, start, end string) ([]report.Bucket, error)
}

type GroupedOutput struct {
	Body []GroupSeries
}

type FlatOutput struct {
	Body []FlatBucket
}

// ExpensesHandler serves the expense reports under /v1/reports/expenses.
type ExpensesHandler struct {
	Reporter expenseReporter
}

func NewExpensesHandler(r expenseReporter) *ExpensesHandler {
	return &ExpensesHandler{Reporter: r}
}

func (h *ExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expenses-by-period",
		Method:      http.MethodGet,
		Path:        "/v1/reports/expenses/period/{period}",
		Summary:     "Expenses by period",
		Description: "Expense totals per category, bucketed by period.",
		Tags:        []string{"Reports"},
	}, h.byPeriod)

	huma.Register(api, huma.Operation{
		OperationID: "expense-summary-by-period",
		Method:      http.MethodGet,
		Path:        "/v1/reports/expenses/summary/{period}",
		Summary:     "Expense summary by period",
		Description: "One entry per period with per-category sub-totals.",
		Tags:        []string{"Reports"},
	}, h.summary)

	huma.Register(api, huma.Operation{
		OperationID: "expenses-by-date-range",
		Method:      http.MethodGet,
		Path:        "/v1/reports/expenses/range/{start_date}/{end_date}",
		Summary:     "Expenses by date range",
		Description: "One entry per day in the inclusive range with per-category sub-totals.",
		Tags:        []string{"Reports"},
	}, h.byDateRange)
}

func (h *ExpensesHandler) byPeriod(ctx context.Context, input *PeriodInput) (*GroupedOutput, error) {
	series, err := h.Reporter.ExpensesByPeriod(ctx, input.Period, input.StartDate, input.EndDate)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to build expense report")
	}
	addCount(ctx, len(series))
	return &GroupedOutput{Body: toGroupSeries(series)}, nil
}

func (h *ExpensesHandler) summary(ctx context.Context, input *PeriodInput) (*FlatOutput, error) {
	buckets, err := h.Reporter.ExpenseSummaryByPeriod(ctx, input.Period, input.StartDate, input.EndDate)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to build expense summary")
	}
	addCount(ctx, len(buckets))
	return &FlatOutput{Body: toFlatBuckets(buckets)}, nil
}

func (h *ExpensesHandler) byDateRange(ctx context.Context, input *DateRangeInput) (*FlatOutput, error) {
	buckets, err := h.Reporter.ExpensesByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to build expense report")
	}
	addCount(ctx, len(buckets))
	return &FlatOutput{Body: toFlatBuckets(buckets)}, nil
}

func addCount(ctx context.Context, n int) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("resultCount", n)
	}
}
