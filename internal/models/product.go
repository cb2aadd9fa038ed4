package models

// Review — отзыв покупателя о товаре.
type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"` // Оценка от 0 до 5
	Comment string `json:"comment"`
}

// Product — карточка сари из статического каталога.
type Product struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Price            string   `json:"price"`
	OriginalPrice    string   `json:"originalPrice,omitempty"` // Пустая строка, если скидки нет
	Image            string   `json:"image"`
	Badge            string   `json:"badge,omitempty"`
	Colors           []string `json:"colors"`
	Description      string   `json:"description"`
	Fabric           string   `json:"fabric"`
	Work             string   `json:"work"`
	Occasion         string   `json:"occasion"`
	CareInstructions string   `json:"careInstructions"`
	Blouse           string   `json:"blouse"`
	Origin           string   `json:"origin"`
	Reviews          []Review `json:"reviews"`
}

// DrapeOverlay — накладка для виртуальной примерки сари.
type DrapeOverlay struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Fabric  string `json:"fabric"`
	Overlay string `json:"overlay"` // Путь к изображению-накладке
}
