package catalog

import "github.com/apsaracreations/saree-shop/internal/models"

// Service описывает каталог товаров.
type Service interface {
	List() []models.Product
	Get(id int) (models.Product, error)
}
