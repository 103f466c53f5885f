package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/application/services"
	"shopping-backend/interfaces/http/rest/handlers"
	"shopping-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	itemService *services.ItemService
	photoStore  ports.PhotoStore
	enableCORS  bool
	logger      *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	itemService *services.ItemService,
	photoStore ports.PhotoStore,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		itemService: itemService,
		photoStore:  photoStore,
		enableCORS:  enableCORS,
		logger:      logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	// Item endpoints
	router.Route("/items", func(r chi.Router) {
		itemHandler := handlers.NewItemHandler(rt.itemService, rt.logger)
		r.Post("/", itemHandler.CreateItem)
		r.Get("/", itemHandler.ListItems)
		r.Get("/{id}", itemHandler.GetItem)
		r.Put("/{id}", itemHandler.UpdateItem)
		r.Delete("/{id}", itemHandler.DeleteItem)
	})

	// Photo upload, independent of the item domain
	router.Post("/photos", handlers.NewPhotoHandler(rt.photoStore, rt.logger).UploadPhoto)

	return router
}

// healthCheck responds to liveness probes
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
