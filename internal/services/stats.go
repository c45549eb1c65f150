package services

import (
	"github.com/Khattouaymen/pressing-sub000/internal/models"

	"gorm.io/gorm"
)

// StatsService recomputes the per-client running totals from the order
// tables. Les incréments faits à l'insertion ne sont pas garantis cohérents
// après un arrêt brutal; ce recalcul complet est lancé au démarrage pour
// résorber la dérive.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{DB: db} }

type clientAggregate struct {
	ClientID string
	Orders   int64
	Spent    float64
	Unpaid   float64
}

// Recalculate overwrites TotalOrders/TotalSpent for every Client and
// ProfessionalClient from the aggregate of their orders. Guest orders
// (client_id null or GUEST-prefixed) are excluded. The professional pass
// also rebuilds the outstanding balance from unpaid orders.
func (s *StatsService) Recalculate() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Client{}).Where("1 = 1").
			Updates(map[string]any{"total_orders": 0, "total_spent": 0}).Error; err != nil {
			return err
		}
		var rows []clientAggregate
		if err := tx.Model(&models.Order{}).
			Select("client_id AS client_id, COUNT(*) AS orders, SUM(total_amount) AS spent").
			Where("client_id IS NOT NULL AND client_id != '' AND client_id NOT LIKE ?", models.GuestIDPrefix+"%").
			Group("client_id").
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			if err := tx.Model(&models.Client{}).Where("id = ?", r.ClientID).
				Updates(map[string]any{"total_orders": r.Orders, "total_spent": r.Spent}).Error; err != nil {
				return err
			}
		}

		// Miroir pour les clients professionnels, encours compris.
		if err := tx.Model(&models.ProfessionalClient{}).Where("1 = 1").
			Updates(map[string]any{"total_orders": 0, "total_spent": 0, "outstanding_balance": 0}).Error; err != nil {
			return err
		}
		var proRows []clientAggregate
		if err := tx.Model(&models.ProfessionalOrder{}).
			Select("client_id AS client_id, COUNT(*) AS orders, SUM(total_amount) AS spent, SUM(CASE WHEN payment_status = ? THEN total_amount ELSE 0 END) AS unpaid", models.PaymentUnpaid).
			Where("client_id != ''").
			Group("client_id").
			Scan(&proRows).Error; err != nil {
			return err
		}
		for _, r := range proRows {
			if err := tx.Model(&models.ProfessionalClient{}).Where("id = ?", r.ClientID).
				Updates(map[string]any{"total_orders": r.Orders, "total_spent": r.Spent, "outstanding_balance": r.Unpaid}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
