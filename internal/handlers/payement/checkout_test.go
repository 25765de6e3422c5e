package payement

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quickplate_back_end/internal/models"
)

func TestBuildLineItems(t *testing.T) {
	t.Parallel()

	items := []models.Food{
		{Name: "Margherita", Price: 100, Quantity: 2, Image: "https://img.example/p1.png"},
		{Name: "Tiramisu", Price: 49.5, Quantity: 1, Image: "https://img.example/p2.png"},
	}

	lineItems := buildLineItems(items)
	require.Len(t, lineItems, 2)

	first := lineItems[0]
	require.Equal(t, "inr", *first.PriceData.Currency)
	require.Equal(t, "Margherita", *first.PriceData.ProductData.Name)
	require.Equal(t, "https://img.example/p1.png", *first.PriceData.ProductData.Images[0])
	require.Equal(t, int64(10000), *first.PriceData.UnitAmount)
	require.Equal(t, int64(2), *first.Quantity)

	second := lineItems[1]
	require.Equal(t, int64(4950), *second.PriceData.UnitAmount)
	require.Equal(t, int64(1), *second.Quantity)
}

func TestBuildLineItems_Empty(t *testing.T) {
	t.Parallel()
	require.Empty(t, buildLineItems(nil))
}
