package models

import "time"

// Order statuses.
const (
	StatusPending   = "pending"
	StatusReady     = "ready"
	StatusDelivered = "delivered"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Order d'un client particulier (ou invité). ClientID est nullable: une
// commande invité n'est rattachée à aucune fiche client durable, le nom
// dénormalisé suffit pour le ticket.
type Order struct {
	ID                 string       `gorm:"primaryKey" json:"id"`
	ClientID           *string      `gorm:"index" json:"clientId"`
	ClientName         string       `json:"clientName"` // dénormalisé, imprimé sur le ticket
	TotalAmount        float64      `gorm:"not null" json:"totalAmount"`
	Status             string       `gorm:"not null;default:'pending'" json:"status"`
	PaymentStatus      string       `gorm:"not null;default:'unpaid'" json:"paymentStatus"`
	IsExceptionalPrice bool         `json:"isExceptionalPrice"` // total saisi par l'opérateur, décorrélé des lignes
	EstimatedReadyAt   *time.Time   `json:"estimatedReadyAt"`
	Pieces             []OrderPiece `gorm:"foreignKey:OrderID" json:"pieces"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// OrderPiece: une ligne de commande. Nom et prix sont des instantanés du
// catalogue au moment de la commande et survivent à la suppression de la
// pièce. Créée avec sa commande, jamais modifiée seule.
type OrderPiece struct {
	ID          string  `gorm:"primaryKey" json:"id"` // orderID-pieceID-position
	OrderID     string  `gorm:"not null;index" json:"orderId"`
	PieceID     string  `gorm:"index" json:"pieceId"`
	PieceName   string  `json:"pieceName"`
	ServiceType string  `gorm:"not null" json:"serviceType"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unitPrice"`
	TotalPrice  float64 `gorm:"not null" json:"totalPrice"`
}
