package admin

import "github.com/apsaracreations/saree-shop/internal/models"

// Directory — реестр пользователей.
type Directory interface {
	List() []models.User
}

// Counter возвращает размер коллекции: товаров в каталоге или посетителей в памяти.
type Counter interface {
	Len() int
}
