// Package catalog содержит статический каталог сари.
package catalog

import (
	"errors"
	"strconv"

	"github.com/apsaracreations/saree-shop/internal/lib/price"
	"github.com/apsaracreations/saree-shop/internal/models"
)

// ErrProductNotFound — товара с таким идентификатором нет.
var ErrProductNotFound = errors.New("product not found")

// Catalog хранит карточки товаров. Данные не меняются после создания.
type Catalog struct {
	products []models.Product
}

// New возвращает каталог из девяти сари коллекции.
func New() *Catalog {
	return &Catalog{products: defaultProducts()}
}

// List возвращает все товары по возрастанию идентификатора.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get возвращает товар по идентификатору.
func (c *Catalog) Get(id int) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Len возвращает число товаров в каталоге.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Discount считает скидку в процентах, 0 если исходной цены нет.
func Discount(p models.Product) int {
	if p.OriginalPrice == "" {
		return 0
	}
	return price.Discount(p.Price, p.OriginalPrice)
}

// CartProduct собирает данные товара для добавления в корзину.
func CartProduct(p models.Product) models.CartProduct {
	return models.CartProduct{
		ID:       strconv.Itoa(p.ID),
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: models.DefaultCategory,
	}
}
