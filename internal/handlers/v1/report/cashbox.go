package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/cashbox-server/internal/report"
)

// CashboxPoint is one period bucket of a service's revenue.
type CashboxPoint struct {
	BucketKey        string            `json:"bucketKey" doc:"Canonical period key"`
	TotalAmount      string            `json:"totalAmount" doc:"Sum of transaction amounts"`
	TransactionCount int               `json:"transactionCount" doc:"Transactions linked to the service in the bucket"`
	PaymentMethods   map[string]string `json:"paymentMethods" doc:"Sub-totals by payment method"`
}

// CashboxSeries is the revenue series of one service, newest bucket first.
type CashboxSeries struct {
	ServiceID    string         `json:"serviceId"`
	ServiceTitle string         `json:"serviceTitle"`
	Series       []CashboxPoint `json:"series"`
}

type CashboxOutput struct {
	Body []CashboxSeries
}

type cashboxReporter interface {
	CashboxByPeriod(ctx context.Context, start, end, periodToken string) ([]report.Series, error)
	CashboxByDateRange(ctx context.Context, start, end string) ([]report.Series, error)
}

// CashboxHandler serves revenue reports under /v1/reports/cashbox.
type CashboxHandler struct {
	Reporter cashboxReporter
}

func NewCashboxHandler(r cashboxReporter) *CashboxHandler {
	return &CashboxHandler{Reporter: r}
}

func (h *CashboxHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "cashbox-by-period",
		Method:      http.MethodGet,
		Path:        "/v1/reports/cashbox/period/{period}",
		Summary:     "Cashbox revenue by period",
		Description: "Revenue per service bucketed by period. Defaults to the last 30 days when no range is given.",
		Tags:        []string{"Reports"},
	}, h.byPeriod)

	huma.Register(api, huma.Operation{
		OperationID: "cashbox-by-date-range",
		Method:      http.MethodGet,
		Path:        "/v1/reports/cashbox/range/{start_date}/{end_date}",
		Summary:     "Cashbox revenue by date range",
		Description: "Daily revenue per service in the inclusive range.",
		Tags:        []string{"Reports"},
	}, h.byDateRange)
}

func (h *CashboxHandler) byPeriod(ctx context.Context, input *PeriodInput) (*CashboxOutput, error) {
	series, err := h.Reporter.CashboxByPeriod(ctx, input.StartDate, input.EndDate, input.Period)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to build cashbox report")
	}
	addCount(ctx, len(series))
	return &CashboxOutput{Body: toCashboxSeries(series)}, nil
}

func (h *CashboxHandler) byDateRange(ctx context.Context, input *DateRangeInput) (*CashboxOutput, error) {
	series, err := h.Reporter.CashboxByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to build cashbox report")
	}
	addCount(ctx, len(series))
	return &CashboxOutput{Body: toCashboxSeries(series)}, nil
}

func toCashboxSeries(series []report.Series) []CashboxSeries {
	out := make([]CashboxSeries, len(series))
	for i, s := range series {
		points := make([]CashboxPoint, len(s.Points))
		for j, p := range s.Points {
			points[j] = CashboxPoint{
				BucketKey:        p.Key,
				TotalAmount:      p.Total.String(),
				TransactionCount: p.Count,
				PaymentMethods:   toStrings(p.Subtotals),
			}
		}
		out[i] = CashboxSeries{ServiceID: s.GroupKey, ServiceTitle: s.GroupLabel, Series: points}
	}
	return out
}
