package database

import (
	"context"
	"encoding/json"
	"sklep-api/internal/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndListTransactions(t *testing.T) {
	items := []models.TransactionItem{
		{ProductName: "Klawiatura", ProductCategory: "Elektronika", Quantity: 2, PriceCents: 12999},
		{ProductName: "Mysz", ProductCategory: "Elektronika", Quantity: 1, PriceCents: 4999},
	}

	created, err := testStore.CreateTransaction(context.Background(), CreateTransactionParams{
		TotalPriceCents: 30997,
		ItemCount:       3,
		Items:           items,
	})
	require.NoError(t, err)
	require.EqualValues(t, 30997, created.TotalPriceCents)
	require.EqualValues(t, 3, created.ItemCount)
	require.False(t, created.TransactionDate.IsZero())

	var storedItems []models.TransactionItem
	require.NoError(t, json.Unmarshal(created.TransactionItems, &storedItems))
	require.Equal(t, items, storedItems)

	list, err := testStore.ListTransactions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)

	var found bool
	for _, tx := range list {
		if tx.TransactionID == created.TransactionID {
			found = true
			require.EqualValues(t, 30997, tx.TotalPriceCents)
		}
	}
	require.True(t, found)
}

func TestCategoriesCRUD(t *testing.T) {
	category, err := testStore.CreateCategory(context.Background(), "Ogród")
	require.NoError(t, err)
	require.Equal(t, "Ogród", category.CategoryName)

	require.NoError(t, testStore.UpdateCategory(context.Background(), category.CategoryID, "Dom i ogród"))

	total, err := testStore.CountCategories(context.Background())
	require.NoError(t, err)
	require.Positive(t, total)

	list, err := testStore.ListCategories(context.Background(), total, 0)
	require.NoError(t, err)

	var found bool
	for _, c := range list {
		if c.CategoryID == category.CategoryID {
			found = true
			require.Equal(t, "Dom i ogród", c.CategoryName)
		}
	}
	require.True(t, found)

	require.NoError(t, testStore.DeleteCategory(context.Background(), category.CategoryID))
}
