package api

import (
	"time"

	"github.com/avnit77/recipes/pkg/model"
	"github.com/avnit77/recipes/pkg/notify"
	"github.com/avnit77/recipes/pkg/storage"
	"github.com/labstack/echo"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Handler contains all properties to serve the API
type Handler struct {
	nc       *nats.Conn
	store    storage.Interface
	notifier *notify.Notifier
	loc      *time.Location
}

// NewHandler create a new API handler. nc may be nil, which disables
// notifications and the realtime feed. Derived date fields are evaluated
// in loc.
func NewHandler(nc *nats.Conn, store storage.Interface, loc *time.Location) *Handler {
	h := &Handler{
		nc:    nc,
		store: store,
		loc:   loc,
	}
	if nc != nil {
		h.notifier = notify.New(nc)
	}
	if h.loc == nil {
		h.loc = time.Local
	}

	return h
}

// idParam returns the :id path parameter in canonical form so that any
// accepted spelling finds the stored record.
func idParam(c echo.Context) string {
	id, _ := model.CanonicalID(c.Param("id"))
	return id
}

// RegisterRoutes attaches the handlers to the echo web server
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	log.Debug("Register API routes")
	e.HTTPErrorHandler = JSONErrorHandler

	api := e.Group("/api/v1")
	api.GET("/events", h.handleFetchEvents)
	api.POST("/events", h.handleCreateEvent)
	api.GET("/events/:id", h.handleGetEventByID)
	api.PATCH("/events/:id", h.handleUpdateEvent)
	api.DELETE("/events/:id", h.handleDeleteEvent)

	api.GET("/recipes", h.handleFetchRecipes)
	api.POST("/recipes", h.handleCreateRecipe)
	api.GET("/recipes/:id", h.handleGetRecipeByID)

	if h.nc != nil {
		api.Any("/realtime-events", h.realtimeEventsHandler())
	}
}
