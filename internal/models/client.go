package models

import (
	"strings"
	"time"
)

// Prefixes used for display ids. Sequential ids are allocated by counting
// rows carrying the prefix (see services.NextClientID / NextOrderID); guest
// ids come from the counter UI and are never part of a sequence.
const (
	ClientIDPrefix = "CLI"
	OrderIDPrefix  = "PR"
	GuestIDPrefix  = "GUEST"
)

// Client particulier. Les commandes au comptoir sans fiche client sont
// matérialisées en client "invité": id préfixé GUEST et Temporary=true.
type Client struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"firstName"`
	LastName    string    `gorm:"index" json:"lastName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CompanyName string    `json:"companyName,omitempty"` // renseigné pour les indépendants
	SIRET       string    `gorm:"index" json:"siret,omitempty"`
	Temporary   bool      `json:"temporary"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  float64   `json:"totalSpent"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsGuest reports whether id designates a guest (non-registered) client.
func IsGuest(id string) bool {
	return strings.HasPrefix(id, GuestIDPrefix)
}
