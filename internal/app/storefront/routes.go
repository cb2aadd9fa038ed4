// Package storefront собирает HTTP-приложение витрины: хранилища, реестр
// посетителей, обработчики и маршруты.
package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/apsaracreations/saree-shop/internal/analytics"
	"github.com/apsaracreations/saree-shop/internal/config"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/admin"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/auth"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/cart"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/catalog"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/drape"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/health"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/recommend"
	"github.com/apsaracreations/saree-shop/internal/http/middlewarectx"
	"github.com/apsaracreations/saree-shop/internal/lib/jwt"
	"github.com/apsaracreations/saree-shop/internal/metrics"
	authservice "github.com/apsaracreations/saree-shop/internal/services/auth"
	catalogservice "github.com/apsaracreations/saree-shop/internal/services/catalog"
	drapeservice "github.com/apsaracreations/saree-shop/internal/services/drape"
	recommendservice "github.com/apsaracreations/saree-shop/internal/services/recommend"
	"github.com/apsaracreations/saree-shop/internal/visitor"
)

// Deps — зависимости маршрутов.
type Deps struct {
	Config    *config.Config
	Directory *authservice.Directory
	Registry  *visitor.Registry
	Catalog   *catalogservice.Catalog
	Tokens    jwt.Maker
	Cookies   sessions.Store
	Tracker   analytics.Tracker
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Checks    map[string]health.Check
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	cartHandler := cart.New(logger, d.Metrics)
	catalogHandler := catalog.New(logger, d.Catalog, d.Metrics)
	recommendHandler := recommend.New(logger, recommendservice.Matcher{}, d.Tracker, d.Metrics)
	drapeHandler := drape.New(logger, drapeservice.Gallery{})
	adminHandler := admin.New(logger, d.Directory, d.Catalog, d.Registry)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger, d.Checks).ServeHTTP)

		// Каталог, примерка и подбор не зависят от посетителя
		r.Get("/products", catalogHandler.List)
		r.Get("/products/{id}", catalogHandler.Read)
		r.Get("/drape/sarees", drapeHandler.List)
		r.Get("/drape/sarees/{id}", drapeHandler.Read)
		r.Get("/recommendations/options", recommendHandler.Options)

		// Группа с состоянием посетителя
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.VisitorMiddleware(logger, d.Cookies, d.Config.CookieName, d.Tokens, d.Registry))

			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RateLimitMiddleware(logger, d.Config.RPS, d.Config.Burst))
				r.Post("/signup", auth.NewSignup(logger, d.Tokens, d.Metrics).ServeHTTP)
				r.Post("/login", auth.NewLogin(logger, d.Tokens, d.Metrics).ServeHTTP)
			})
			r.Post("/logout", auth.NewLogout(logger, d.Metrics).ServeHTTP)
			r.Get("/me", auth.NewMe(logger).ServeHTTP)
			r.Get("/auth/message", auth.NewMessage(logger).ServeHTTP)

			r.Get("/cart", cartHandler.View)
			r.Delete("/cart", cartHandler.Clear)
			r.Post("/cart/items", cartHandler.Add)
			r.Put("/cart/items/{id}", cartHandler.Update)
			r.Delete("/cart/items/{id}", cartHandler.Remove)
			r.Get("/cart/checkout", cartHandler.Checkout)
			r.Post("/products/{id}/cart", catalogHandler.AddToCart)

			r.Post("/recommendations", recommendHandler.Create)

			r.Route("/admin", func(r chi.Router) {
				r.Use(admin.Guard(logger))
				r.Get("/summary", adminHandler.Summary)
				r.Get("/users", adminHandler.Users)
				r.Get("/users/export", adminHandler.Export)
			})
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

