package models

import "time"

// Service types applicable to a piece.
const (
	ServicePressing         = "pressing"
	ServiceCleaningPressing = "cleaning-pressing"
)

// Piece du catalogue: vêtement, linge ou accessoire, avec deux tarifs
// (repassage seul ou nettoyage + repassage).
type Piece struct {
	ID                    string    `gorm:"primaryKey" json:"id"`
	Name                  string    `gorm:"not null;index" json:"name"`
	Category              string    `json:"category"` // vetement, linge, accessoire
	PressingPrice         float64   `gorm:"not null" json:"pressingPrice"`
	CleaningPressingPrice float64   `gorm:"not null" json:"cleaningPressingPrice"`
	IsProfessional        bool      `gorm:"index" json:"isProfessional"` // réservé aux clients professionnels
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// PriceFor returns the unit price for the given service type.
func (p Piece) PriceFor(serviceType string) float64 {
	if serviceType == ServiceCleaningPressing {
		return p.CleaningPressingPrice
	}
	return p.PressingPrice
}
