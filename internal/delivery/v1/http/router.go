package http

import (
	_ "github.com/DRSN-tech/dropflow/docs" // регистрация swagger-спецификации
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalog usecase.CatalogUC, dashboard usecase.DashboardUC) {
	r.router.Use(middleware.RequestID, middleware.Recoverer, requestLogger(r.logger))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/dashboard", NewDashboardHandler(dashboard, r.logger).overview)

		registerProductRoutes(v1, NewProductHandler(catalog, dashboard, r.logger))
		registerSupplierRoutes(v1, NewSupplierHandler(catalog, dashboard, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(catalog, dashboard, r.logger))
		registerCalculatorRoutes(v1, NewCalculatorHandler(r.logger))
	})
}

// Handler нужен для тестов через httptest.
func (r *Router) Handler() *chi.Mux {
	return r.router
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.list)
		pr.Post("/", h.create)
		pr.Put("/{id}", h.update)
		pr.Delete("/{id}", h.delete)
	})
}

func registerSupplierRoutes(router chi.Router, h *SupplierHandler) {
	router.Route("/suppliers", func(sr chi.Router) {
		sr.Get("/", h.list)
		sr.Post("/", h.create)
		sr.Put("/{id}", h.update)
		sr.Delete("/{id}", h.delete)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Get("/", h.list)
		or.Post("/", h.create)
		or.Put("/{id}", h.update)
		or.Delete("/{id}", h.delete)
		or.Patch("/{id}/status", h.setStatus)
	})
}

func registerCalculatorRoutes(router chi.Router, h *CalculatorHandler) {
	router.Route("/calculator", func(cr chi.Router) {
		cr.Get("/profit", h.profit)
		cr.Get("/markup", h.markup)
	})
}
