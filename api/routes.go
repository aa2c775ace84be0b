package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/cashbox"
	"github.com/carson-networks/cashbox-server/internal/handlers/v1/report"
	"github.com/carson-networks/cashbox-server/internal/handlers/v1/status"
	"github.com/carson-networks/cashbox-server/internal/logging"
	"github.com/carson-networks/cashbox-server/internal/service"
)

const shutdownTimeout = 15 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Pinger  pinger
}

// Handler builds the router with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Pinger)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Cashbox API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	ledger := r.Service.Ledger
	cashbox.NewCreateTransactionHandler(ledger).Register(api)
	cashbox.NewGetTransactionHandler(ledger).Register(api)
	cashbox.NewUpdateTransactionHandler(ledger).Register(api)
	cashbox.NewDeleteTransactionHandler(ledger).Register(api)
	cashbox.NewListTransactionsHandler(ledger).Register(api)

	reports := r.Service.Report
	report.NewExpensesHandler(reports).Register(api)
	report.NewAppointmentsHandler(reports).Register(api)
	report.NewCashboxHandler(reports).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
