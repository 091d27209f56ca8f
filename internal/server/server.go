// Package server assembles the HTTP handler of Total Manager: a chi router
// serving every Connect service plus /health and /metrics.
package server

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/totalmanager/internal/auth"
	"github.com/mmynk/totalmanager/internal/middleware"
	"github.com/mmynk/totalmanager/internal/notify"
	"github.com/mmynk/totalmanager/internal/service"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

// Deps is what the router needs to build the services.
type Deps struct {
	Store         storage.Store
	JWTManager    *auth.JWTManager
	Authenticator *auth.PhoneAuthenticator
	Notifier      notify.Notifier

	// Registry receives the RPC and event log metrics and is served at
	// /metrics.
	Registry *prometheus.Registry

	// CORS enables permissive CORS headers for browser clients.
	CORS bool
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewRouter builds the root handler.
func NewRouter(d Deps) http.Handler {
	if d.Registry == nil {
		d.Registry = NewRegistry()
	}
	if d.Notifier == nil {
		d.Notifier = notify.Nop{}
	}
	metrics := middleware.NewMetrics(d.Registry)

	opts := []service.Option{
		service.WithMetrics(metrics),
		service.WithNotifier(d.Notifier),
	}

	// Interceptors run in order: metrics sees every outcome, logging sees
	// the user set by auth.
	public := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.OptionalAuth(d.JWTManager),
		middleware.LoggingInterceptor(),
	)
	private := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAuth(d.JWTManager),
		middleware.LoggingInterceptor(),
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)
	if d.CORS {
		r.Use(cors)
	}

	r.Get("/health", healthHandler(d.Store))
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	// Connect handlers route on the full procedure path
	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
	}
	mount(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(d.Authenticator, d.Authenticator, d.JWTManager, d.Store, opts...), public))
	mount(apiconnect.NewGroupServiceHandler(service.NewGroupService(d.Store, opts...), private))
	mount(apiconnect.NewCollectionServiceHandler(service.NewCollectionService(d.Store, opts...), private))
	mount(apiconnect.NewMemberServiceHandler(service.NewMemberService(d.Store, opts...), private))
	mount(apiconnect.NewNoticeServiceHandler(service.NewNoticeService(d.Store, opts...), private))
	mount(apiconnect.NewLogServiceHandler(service.NewLogService(d.Store, opts...), private))
	mount(apiconnect.NewReminderServiceHandler(service.NewReminderService(d.Store, opts...), private))
	mount(apiconnect.NewSettingsServiceHandler(service.NewSettingsService(d.Store, opts...), private))

	return r
}
