package models

import "time"

// ProfessionalClient: client en compte (hôtel, restaurant, entreprise),
// facturé à échéance plutôt qu'au comptoir.
type ProfessionalClient struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	CompanyName        string    `gorm:"not null;index" json:"companyName"`
	ContactName        string    `json:"contactName"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	Address            string    `json:"address"`
	BillingAddress     string    `json:"billingAddress"`
	SIRET              string    `gorm:"index" json:"siret"`
	PaymentTermsDays   int       `gorm:"not null;default:30" json:"paymentTermsDays"` // net 30 par défaut
	DiscountRate       float64   `json:"discountRate"`                                // 0.10 = 10% de remise négociée
	OutstandingBalance float64   `json:"outstandingBalance"`                          // encours non réglé
	TotalOrders        int       `json:"totalOrders"`
	TotalSpent         float64   `json:"totalSpent"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ProfessionalOrder: commande B2B. Pas de détail par pièce, un seul type de
// service et un nombre d'articles global.
type ProfessionalOrder struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	ClientID       string     `gorm:"not null;index" json:"clientId"`
	ItemCount      int        `gorm:"not null" json:"itemCount"`
	ServiceType    string     `gorm:"not null" json:"serviceType"`
	TotalAmount    float64    `gorm:"not null" json:"totalAmount"`
	Status         string     `gorm:"not null;default:'pending'" json:"status"`
	PaymentStatus  string     `gorm:"not null;default:'unpaid'" json:"paymentStatus"`
	IsPriority     bool       `json:"isPriority"`
	DeliveryDate   *time.Time `json:"deliveryDate"`
	PaymentDueDate *time.Time `json:"paymentDueDate"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
