package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/storefront-admin/internal/domain/inventory"
)

func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minLevel int
		want     inventory.StockStatus
	}{
		{"stock cero es agotado", 0, 5, inventory.StatusOutOfStock},
		{"stock negativo es agotado", -3, 5, inventory.StatusOutOfStock},
		{"stock igual al mínimo es bajo", 5, 5, inventory.StatusLowStock},
		{"stock por debajo del mínimo es bajo", 1, 5, inventory.StatusLowStock},
		{"stock justo encima del mínimo es disponible", 6, 5, inventory.StatusInStock},
		{"mínimo cero: cualquier stock positivo es disponible", 1, 0, inventory.StatusInStock},
		{"mínimo cero y stock cero es agotado", 0, 0, inventory.StatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Classify(tc.stock, tc.minLevel))
		})
	}
}

func TestIsValidStatusFilter(t *testing.T) {
	assert.True(t, inventory.IsValidStatusFilter("in_stock"))
	assert.True(t, inventory.IsValidStatusFilter("low_stock"))
	assert.True(t, inventory.IsValidStatusFilter("out_of_stock"))
	assert.False(t, inventory.IsValidStatusFilter("agotado"))
	assert.False(t, inventory.IsValidStatusFilter(""))
}
