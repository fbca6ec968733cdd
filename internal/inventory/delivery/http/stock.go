package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/usecase/command"
	"github.com/tair/inventory-api/internal/inventory/usecase/query"
	"github.com/tair/inventory-api/pkg/logger"
)

// CreateStock handles POST /api/stocks
func (h *InventoryHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID   string `json:"product_id"`
		WarehouseID string `json:"warehouse_id"`
		Qty         int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product_id")
		return
	}
	warehouseID, err := uuid.Parse(req.WarehouseID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid warehouse_id")
		return
	}

	stock, err := h.createStockHandler.Handle(command.CreateStockCommand{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Qty:         req.Qty,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock created successfully",
		Data:    stock,
	})
}

// GetStock handles GET /api/stocks/{id}
func (h *InventoryHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid stock ID")
		return
	}

	stock, err := h.repo.FindStockByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Stock not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stock})
}

// ListStocks handles GET /api/stocks
func (h *InventoryHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	stocks, err := h.repo.FindAllStocks(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list stocks")
		respondError(w, http.StatusInternalServerError, "Failed to list stocks")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stocks})
}

// ListAvailableStocks handles GET /api/stocks/available
func (h *InventoryHandler) ListAvailableStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.availableStockHandler.Handle(query.AvailableStockQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list available stocks")
		respondError(w, http.StatusInternalServerError, "Failed to list available stocks")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stocks})
}

// UpdateStock handles PUT /api/stocks/{id}
func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid stock ID")
		return
	}

	stock, err := h.repo.FindStockByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Stock not found")
		return
	}

	var req struct {
		Qty *int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Qty != nil {
		if *req.Qty < stock.Reserved {
			respondError(w, http.StatusBadRequest, "qty cannot drop below reserved units")
			return
		}
		stock.Qty = *req.Qty
	}

	if err := h.repo.UpdateStock(stock); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update stock")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data:    stock,
	})
}

// DeleteStock handles DELETE /api/stocks/{id}
func (h *InventoryHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid stock ID")
		return
	}

	if err := h.repo.DeleteStock(id); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete stock")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Stock deleted successfully"})
}
