package api

import (
	"encoding/json"
	"math"
	"net/http"

	"sklep-api/internal/database"
	"sklep-api/internal/models"
)

type CreateTransactionRequest struct {
	TransactionItems []models.TransactionItem `json:"transaction_items"`
}

// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  errorResponse
// @Router       /transaction [get]
func (s *Server) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.store.ListTransactions(r.Context())
	if err != nil {
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    transactions,
	})
}

// @Summary      Record a transaction
// @Description  Totals are computed server-side from integer minor units, item prices are never floats.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        createTransactionRequest  body      CreateTransactionRequest  true  "Items"
// @Success      200                       {object}  map[string]interface{}
// @Failure      400                       {object}  errorResponse
// @Router       /transaction [post]
func (s *Server) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.TransactionItems) == 0 {
		respondError(w, http.StatusBadRequest, "Transaction must contain at least one item")
		return
	}

	var totalCents int64
	var itemCount int32
	for _, item := range req.TransactionItems {
		if item.Quantity <= 0 || item.PriceCents < 0 {
			respondError(w, http.StatusBadRequest, "Invalid item quantity or price")
			return
		}
		lineCents := int64(item.Quantity) * item.PriceCents
		if item.PriceCents > 0 && lineCents/item.PriceCents != int64(item.Quantity) {
			respondError(w, http.StatusBadRequest, "Transaction total out of range")
			return
		}
		if totalCents > math.MaxInt64-lineCents {
			respondError(w, http.StatusBadRequest, "Transaction total out of range")
			return
		}
		totalCents += lineCents
		if itemCount > math.MaxInt32-item.Quantity {
			respondError(w, http.StatusBadRequest, "Transaction total out of range")
			return
		}
		itemCount += item.Quantity
	}

	transaction, err := s.store.CreateTransaction(r.Context(), database.CreateTransactionParams{
		TotalPriceCents: totalCents,
		ItemCount:       itemCount,
		Items:           req.TransactionItems,
	})
	if err != nil {
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    transaction,
	})
}
