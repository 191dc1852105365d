package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "bazaardirectory/docs"
	"bazaardirectory/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// uploadsDir is served read-only under /uploads/ so stored image and photo
// references resolve directly in browsers.
func NewRouter(eventController *controllers.EventController, boothController *controllers.BoothController, uploadsDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", eventController.List)
	mux.HandleFunc("GET /events/{id}", eventController.Get)
	mux.HandleFunc("POST /events", eventController.Create)
	mux.HandleFunc("PUT /events/{id}", eventController.Update)
	mux.HandleFunc("DELETE /events/{id}", eventController.Delete)

	// Booths
	mux.HandleFunc("GET /booths", boothController.List)
	mux.HandleFunc("GET /booths/search", boothController.Search)
	mux.HandleFunc("POST /booths", boothController.Create)
	mux.HandleFunc("DELETE /booths/{id}", boothController.Delete)

	// Uploaded assets
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
