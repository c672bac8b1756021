package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"soga/quote_backend/internal/app/config"
	"soga/quote_backend/internal/app/http/handlers"
	"soga/quote_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, log *zap.Logger, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.AuthJWTSecret))

			r.Get("/quotations", h.ListQuotations)
			r.Post("/quotations", h.CreateQuotation)
			r.Get("/quotations/template", h.QuotationTemplate)
			r.Post("/quotations/preview", h.PreviewQuotationPDF)
			r.Get("/quotations/{id}", h.GetQuotation)
			r.Put("/quotations/{id}", h.UpdateQuotation)
			r.Delete("/quotations/{id}", h.DeleteQuotation)
			r.Post("/quotations/{id}/sections", h.AppendSection)
			r.Delete("/quotations/{id}/sections/{sectionID}", h.DeleteSection)
			r.Post("/quotations/{id}/sections/move", h.MoveSection)
			r.Get("/quotations/{id}/pdf", h.QuotationPDF)
			r.Post("/quotations/{id}/translate", h.TranslateQuotation)
		})
	})

	return r
}
