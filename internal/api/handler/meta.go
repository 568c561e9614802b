package handler

import (
	"net/http"

	"github.com/hexforge/catan-go/internal/api/response"
	"github.com/hexforge/catan-go/internal/storage"
)

// MetaHandler handles the service-level endpoints
type MetaHandler struct {
	storage storage.Storage
	appName string
	version string
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(store storage.Storage, appName, version string) *MetaHandler {
	return &MetaHandler{
		storage: store,
		appName: appName,
		version: version,
	}
}

// Root handles GET /
//
//	@Summary	Service banner
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	response.RootResponse
//	@Router		/ [get]
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RootResponse{
		Message: h.appName + " API",
		Version: h.version,
	})
}

// Health handles GET /health
//
//	@Summary	Liveness and storage health
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	response.HealthResponse
//	@Failure	503	{object}	response.HealthResponse
//	@Router		/health [get]
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		response.JSON(w, http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded"})
		return
	}
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "healthy"})
}
