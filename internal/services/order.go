package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Khattouaymen/pressing-sub000/internal/models"

	"gorm.io/gorm"
)

// OrderService encapsulates the order insertion workflow: guest
// materialization, id allocation, line-item pricing and client stats, all in
// one transaction.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService { return &OrderService{DB: db} }

// OrderLineInput is one submitted line item. UnitPrice and PieceName are
// optional: when absent they are resolved from the catalog at insert time.
type OrderLineInput struct {
	PieceID     string  `json:"pieceId"`
	PieceName   string  `json:"pieceName"`
	ServiceType string  `json:"serviceType"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type OrderInput struct {
	ClientID           *string
	ClientName         string
	Status             string
	PaymentStatus      string
	IsExceptionalPrice bool
	TotalAmount        float64 // utilisé seulement si IsExceptionalPrice
	EstimatedReadyAt   *time.Time
	Lines              []OrderLineInput
}

// Create inserts an order and its line items.
//
// Dans la même transaction: matérialisation du client invité le cas échéant,
// allocation de l'id PRn, insertion de la commande et de ses lignes, puis
// mise à jour des compteurs du client enregistré. Les commandes invité ne
// touchent jamais aux statistiques.
func (s *OrderService) Create(input OrderInput) (*models.Order, error) {
	var created models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if input.ClientID != nil && models.IsGuest(*input.ClientID) {
			if err := materializeGuest(tx, *input.ClientID, input.ClientName); err != nil {
				return err
			}
		}

		id, err := NextOrderID(tx)
		if err != nil {
			return err
		}

		order := models.Order{
			ID:                 id,
			ClientID:           input.ClientID,
			ClientName:         input.ClientName,
			Status:             defaultString(input.Status, models.StatusPending),
			PaymentStatus:      defaultString(input.PaymentStatus, models.PaymentUnpaid),
			IsExceptionalPrice: input.IsExceptionalPrice,
			EstimatedReadyAt:   input.EstimatedReadyAt,
		}

		var lineSum float64
		for i, ln := range input.Lines {
			unit := ln.UnitPrice
			name := ln.PieceName
			if unit == 0 || name == "" {
				var piece models.Piece
				if err := tx.First(&piece, "id = ?", ln.PieceID).Error; err == nil {
					if unit == 0 {
						unit = piece.PriceFor(ln.ServiceType)
					}
					if name == "" {
						name = piece.Name
					}
				}
			}
			lineTotal := unit * float64(ln.Quantity)
			order.Pieces = append(order.Pieces, models.OrderPiece{
				ID:          fmt.Sprintf("%s-%s-%d", id, ln.PieceID, i),
				OrderID:     id,
				PieceID:     ln.PieceID,
				PieceName:   name,
				ServiceType: ln.ServiceType,
				Quantity:    ln.Quantity,
				UnitPrice:   unit,
				TotalPrice:  lineTotal,
			})
			lineSum += lineTotal
		}
		if input.IsExceptionalPrice {
			order.TotalAmount = input.TotalAmount
		} else {
			order.TotalAmount = lineSum
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if input.ClientID != nil && *input.ClientID != "" && !models.IsGuest(*input.ClientID) {
			if err := tx.Model(&models.Client{}).Where("id = ?", *input.ClientID).
				Updates(map[string]any{
					"total_orders": gorm.Expr("total_orders + 1"),
					"total_spent":  gorm.Expr("total_spent + ?", order.TotalAmount),
				}).Error; err != nil {
				return err
			}
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes an order and its line items (cascade-by-convention: the
// schema carries no FK cascade). Client stats are left as-is; drift is
// repaired by StatsService.Recalculate.
func (s *OrderService) Delete(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderPiece{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Order{}).Error
	})
}

// materializeGuest creates a minimal temporary client from the order's
// denormalized name when no row exists yet for the guest id.
func materializeGuest(tx *gorm.DB, id, clientName string) error {
	var count int64
	if err := tx.Model(&models.Client{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	first, last := SplitName(clientName)
	return tx.Create(&models.Client{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Temporary: true,
	}).Error
}

// SplitName splits a display name on the first space into first/last name.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
