package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-api/internal/inventory/relquery"
	"github.com/tair/inventory-api/internal/inventory/usecase/query"
	"github.com/tair/inventory-api/pkg/logger"
)

// GetRelated handles GET /api/{entity}/related
func (h *InventoryHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	entity := mux.Vars(r)["entity"]

	start := time.Now()
	result, err := h.getRelatedHandler.Handle(r.Context(), query.GetRelatedQuery{
		Root:   entity,
		Params: r.URL.Query(),
	})
	if err != nil {
		if errors.Is(err, relquery.ErrInvalidPath) ||
			errors.Is(err, relquery.ErrUnknownField) ||
			errors.Is(err, relquery.ErrUnknownLookup) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.WithContext(r.Context()).Error().
			Err(err).
			Str("entity", entity).
			Str("query", r.URL.RawQuery).
			Msg("Related query failed")
		respondError(w, http.StatusInternalServerError, "Failed to execute query")
		return
	}
	h.querySummary.WithLabelValues(entity).Observe(time.Since(start).Seconds())

	respondJSON(w, http.StatusOK, result)
}
