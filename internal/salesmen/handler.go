package salesmen

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ordertrack/ordertrack/internal/platform/httpx"
)

// Handler wires the salesman management endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers salesman routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/salesmen", h.list)
	r.Post("/salesmen", h.upsert)
	r.Post("/salesmen/bulk", h.bulkSet)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list salesmen failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, SalesmanList{Items: items})
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var sm Salesman
	if err := httpx.DecodeJSON(r, &sm); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	saved, err := h.service.Upsert(r.Context(), sm)
	if err != nil {
		h.logger.Error("upsert salesman failed", "error", err, "name", sm.Name)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) bulkSet(w http.ResponseWriter, r *http.Request) {
	var list SalesmanList
	if err := httpx.DecodeJSON(r, &list); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	saved, err := h.service.BulkSet(r.Context(), list.Items)
	if err != nil {
		h.logger.Error("bulk set salesmen failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, SalesmanList{Items: saved})
}
