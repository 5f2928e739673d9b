package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/farmfeed/farmfeed/internal/auth"
	"github.com/farmfeed/farmfeed/internal/http/contract"
	"github.com/farmfeed/farmfeed/internal/http/deal"
	"github.com/farmfeed/farmfeed/internal/http/diagnostics"
	"github.com/farmfeed/farmfeed/internal/http/listing"
	"github.com/farmfeed/farmfeed/internal/http/matching"
	"github.com/farmfeed/farmfeed/internal/http/offer"
	"github.com/farmfeed/farmfeed/internal/http/transport"
)

type Options struct {
	Timeout        time.Duration
	AllowedOrigins []string
	// JWTSecret enables bearer-token verification on /api when set.
	JWTSecret []byte
}

type Handlers struct {
	Listings    *listing.Handler
	Aliases     *matching.Handler
	Offers      *offer.Handler
	Deals       *deal.Handler
	Transport   *transport.Handler
	Contracts   *contract.Handler
	Diagnostics *diagnostics.Handler
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Get("/healthz", h.Diagnostics.Health)

	router.Route("/api", func(r chi.Router) {
		if len(opts.JWTSecret) > 0 {
			r.Use(auth.Middleware(opts.JWTSecret))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/offers", h.Offers.Routes)
			r.Route("/deals", h.Deals.Routes)
			r.Post("/update-deal-status", h.Deals.UpdateStatus)
			r.Route("/transport", h.Transport.Routes)
			r.Route("/contracts", h.Contracts.Routes)
			r.Route("/commodity-aliases", h.Aliases.Routes)
		})

		r.Route("/listings", h.Listings.Routes)

		h.Diagnostics.Routes(r)
	})

	return router
}
