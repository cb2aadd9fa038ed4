// Package drape содержит справочник накладок для виртуальной примерки сари.
package drape

import (
	"errors"

	"github.com/apsaracreations/saree-shop/internal/models"
)

// ErrUnknownSaree — для этого сари нет накладки.
var ErrUnknownSaree = errors.New("unknown saree")

var overlays = []models.DrapeOverlay{
	{ID: "saree1", Name: "Elegant Red Silk Saree", Color: "Red", Fabric: "Silk", Overlay: "../assets/images/saree1-overlay.svg"},
	{ID: "saree2", Name: "Royal Blue Banarasi", Color: "Blue", Fabric: "Banarasi", Overlay: "../assets/images/saree2-overlay.svg"},
	{ID: "saree3", Name: "Golden Georgette Saree", Color: "Golden", Fabric: "Georgette", Overlay: "../assets/uploads/saree3.jpeg"},
	{ID: "saree4", Name: "Pink Embroidered Saree", Color: "Pink", Fabric: "Embroidered", Overlay: "../assets/uploads/saree4.jpeg"},
	{ID: "saree5", Name: "Green Traditional Saree", Color: "Green", Fabric: "Traditional", Overlay: "../assets/uploads/product-1.webp"},
}

// List возвращает все сари, доступные для примерки.
func List() []models.DrapeOverlay {
	out := make([]models.DrapeOverlay, len(overlays))
	copy(out, overlays)
	return out
}

// Overlay возвращает накладку и описание сари по идентификатору.
func Overlay(id string) (models.DrapeOverlay, error) {
	for _, o := range overlays {
		if o.ID == id {
			return o, nil
		}
	}
	return models.DrapeOverlay{}, ErrUnknownSaree
}

// Gallery даёт доступ к справочнику через значение, которое можно передать обработчику.
type Gallery struct{}

func (Gallery) List() []models.DrapeOverlay { return List() }

func (Gallery) Overlay(id string) (models.DrapeOverlay, error) { return Overlay(id) }
