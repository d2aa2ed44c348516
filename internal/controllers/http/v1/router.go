package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weather-search/internal/services/session"
	"weather-search/pkg/logger"
)

// Options tune the routes. A nil Gatherer leaves /metrics unregistered.
type Options struct {
	Title    string
	Location *time.Location
	Gatherer prometheus.Gatherer
	// SecureCookies marks the session cookie as HTTPS-only.
	SecureCookies bool
}

type routes struct {
	store  *session.Store
	title  string
	loc    *time.Location
	secure bool
	l      *logger.Logger
}

func NewRouter(
	app *fiber.App,
	store *session.Store,
	opts Options,
	l *logger.Logger,
) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	r := &routes{
		store:  store,
		title:  opts.Title,
		loc:    loc,
		secure: opts.SecureCookies,
		l:      l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// Page routes
	app.Get("/", r.handleIndex)
	app.Post("/search", r.handleSubmit)
	app.Post("/unit", r.handleToggleUnit)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/state", r.handleState)
	api.Post("/search", r.handleSearch)
}
