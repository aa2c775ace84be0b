package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/cashbox-server/internal/report"
)

type appointmentReporter interface {
	AppointmentsByPeriod(ctx context.Context, periodToken string) ([]report.Series, error)
	AppointmentsByDateRange(ctx context.Context, start, end string) ([]report.Bucket, error)
}

// AppointmentsHandler serves visit counts under /v1/reports/appointments.
type AppointmentsHandler struct {
	Reporter appointmentReporter
}

func NewAppointmentsHandler(r appointmentReporter) *AppointmentsHandler {
	return &AppointmentsHandler{Reporter: r}
}

func (h *AppointmentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "appointments-by-period",
		Method:      http.MethodGet,
		Path:        "/v1/reports/appointments/period/{period}",
		Summary:     "Appointments by period",
		Description: "Visit counts per service, bucketed by period, with per-status sub-counts.",
		Tags:        []string{"Reports"},
	}, h.byPeriod)

	huma.Register(api, huma.Operation{
		OperationID: "appointments-by-date-range",
		Method:      http.MethodGet,
		Path:        "/v1/reports/appointments/range/{start_date}/{end_date}",
		Summary:     "Appointments by date range",
		Description: "Visit counts per day in the inclusive range with per-service sub-counts.",
		Tags:        []string{"Reports"},
	}, h.byDateRange)
}

func (h *AppointmentsHandler) byPeriod(ctx context.Context, input *BarePeriodInput) (*GroupedOutput, error) {
	series, err := h.Reporter.AppointmentsByPeriod(ctx, input.Period)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to build appointment report")
	}
	addCount(ctx, len(series))
	return &GroupedOutput{Body: toGroupSeries(series)}, nil
}

func (h *AppointmentsHandler) byDateRange(ctx context.Context, input *DateRangeInput) (*FlatOutput, error) {
	buckets, err := h.Reporter.AppointmentsByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to build appointment report")
	}
	addCount(ctx, len(buckets))
	return &FlatOutput{Body: toFlatBuckets(buckets)}, nil
}
