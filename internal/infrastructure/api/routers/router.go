package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mufasadev/pix-broker/internal/di"
	"github.com/mufasadev/pix-broker/internal/infrastructure/api/middlewares"
)

func NewRouter(container *di.Container) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	router.Post("/generate-pix", container.PixHandler.GeneratePix)

	router.Route("/payment-notification", func(r chi.Router) {
		r.Use(middlewares.JSONContentTypeMiddleware)
		nh := container.NotificationHandler
		r.Post("/", nh.HandleNotification)
	})

	return router
}
