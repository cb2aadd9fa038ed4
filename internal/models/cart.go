package models

import "time"

// DefaultCategory — категория товара по умолчанию.
const DefaultCategory = "Saree"

// CartItem — строка корзины. Уникальна по ID внутри одной корзины.
type CartItem struct {
	ID       string    `json:"id"`       // Ключ товара
	Name     string    `json:"name"`     // Название
	Price    string    `json:"price"`    // Цена в виде строки для показа, например "₹1,000"
	Image    string    `json:"image"`    // Путь к изображению
	Category string    `json:"category"` // Категория
	Quantity int       `json:"quantity"` // Количество, не меньше 1
	AddedAt  time.Time `json:"addedAt"`  // Когда товар впервые попал в корзину
}

// CartProduct — данные товара, которые передаются при добавлении в корзину.
type CartProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// CartSnapshot — сериализованная копия корзины с моментом сохранения.
type CartSnapshot struct {
	Items     []CartItem `json:"items"`
	Timestamp time.Time  `json:"timestamp"`
}
