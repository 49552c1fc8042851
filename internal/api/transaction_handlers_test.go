package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"sklep-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestAPI_CreateTransaction(t *testing.T) {
	rr := postJSON(t, testServer.CreateTransactionHandler, "/api/transaction", CreateTransactionRequest{
		TransactionItems: []models.TransactionItem{
			{ProductName: "Klawiatura", ProductCategory: "Elektronika", Quantity: 2, PriceCents: 14999},
			{ProductName: "Podkładka", Quantity: 1, PriceCents: 2500},
		},
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    models.Transaction `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.EqualValues(t, 2*14999+2500, resp.Data.TotalPriceCents)
	require.EqualValues(t, 3, resp.Data.ItemCount)
}

func TestAPI_CreateTransaction_NoItems(t *testing.T) {
	rr := postJSON(t, testServer.CreateTransactionHandler, "/api/transaction", CreateTransactionRequest{})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "at least one item")
}

func TestAPI_CreateTransaction_InvalidItem(t *testing.T) {
	for _, item := range []models.TransactionItem{
		{ProductName: "Zero", Quantity: 0, PriceCents: 100},
		{ProductName: "Ujemna cena", Quantity: 1, PriceCents: -1},
	} {
		rr := postJSON(t, testServer.CreateTransactionHandler, "/api/transaction", CreateTransactionRequest{
			TransactionItems: []models.TransactionItem{item},
		})
		require.Equal(t, http.StatusBadRequest, rr.Code, "item %+v should be rejected", item)
	}
}

func TestAPI_CreateTransaction_TotalOverflow(t *testing.T) {
	cases := [][]models.TransactionItem{
		// single line item whose product exceeds int64
		{{ProductName: "Za drogo", Quantity: math.MaxInt32, PriceCents: math.MaxInt64}},
		// two items whose sum exceeds int64
		{
			{ProductName: "Połowa", Quantity: 1, PriceCents: math.MaxInt64},
			{ProductName: "Kropla", Quantity: 1, PriceCents: 1},
		},
		// item count exceeds int32
		{
			{ProductName: "Sztuki", Quantity: math.MaxInt32, PriceCents: 1},
			{ProductName: "Jeszcze", Quantity: 1, PriceCents: 1},
		},
	}
	for _, items := range cases {
		rr := postJSON(t, testServer.CreateTransactionHandler, "/api/transaction", CreateTransactionRequest{
			TransactionItems: items,
		})
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Contains(t, rr.Body.String(), "out of range")
	}
}

func TestAPI_ListTransactions(t *testing.T) {
	postJSON(t, testServer.CreateTransactionHandler, "/api/transaction", CreateTransactionRequest{
		TransactionItems: []models.TransactionItem{
			{ProductName: "Mysz", Quantity: 1, PriceCents: 7999},
		},
	})

	req := httptest.NewRequest("GET", "/api/transaction", nil)
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.ListTransactionsHandler).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    []models.Transaction `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data)
}
