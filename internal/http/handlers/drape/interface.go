package drape

import "github.com/apsaracreations/saree-shop/internal/models"

// Service — справочник сари для виртуальной примерки.
type Service interface {
	List() []models.DrapeOverlay
	Overlay(id string) (models.DrapeOverlay, error)
}
