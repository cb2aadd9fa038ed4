package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apsaracreations/saree-shop/internal/lib/price"
	"github.com/apsaracreations/saree-shop/internal/models"
)

func TestList(t *testing.T) {
	c := New()

	products := c.List()
	require.Len(t, products, 9)
	assert.Equal(t, 9, c.Len())
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		_, err := price.Parse(p.Price)
		assert.NoError(t, err, "product %d price", p.ID)
		for _, r := range p.Reviews {
			assert.True(t, r.Rating >= 0 && r.Rating <= 5)
		}
	}
}

func TestGet(t *testing.T) {
	c := New()

	p, err := c.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "Traditional Kanjivaram Saree", p.Name)

	_, err = c.Get(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = c.Get(0)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDiscount(t *testing.T) {
	c := New()
	tests := []struct {
		id   int
		want int
	}{
		{id: 1, want: 29},
		{id: 2, want: 20},
		{id: 3, want: 0},
		{id: 4, want: 45},
		{id: 8, want: 30},
	}

	for _, tt := range tests {
		p, err := c.Get(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Discount(p), "product %d", tt.id)
	}
}

func TestCartProduct(t *testing.T) {
	p, err := New().Get(2)
	require.NoError(t, err)

	assert.Equal(t, models.CartProduct{
		ID:       "2",
		Name:     "Designer Georgette Saree",
		Price:    "₹18,000",
		Image:    "../assets/uploads/product-2.webp",
		Category: "Saree",
	}, CartProduct(p))
}

func TestList_ReturnsCopy(t *testing.T) {
	c := New()
	list := c.List()
	list[0].Name = "changed"

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Silk Banarasi Saree", p.Name)
}
