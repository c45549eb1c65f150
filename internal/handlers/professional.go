package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Khattouaymen/pressing-sub000/internal/httpx"
	"github.com/Khattouaymen/pressing-sub000/internal/models"
	"github.com/Khattouaymen/pressing-sub000/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessionalClientHandler: CRUD sur les clients en compte.
type ProfessionalClientHandler struct {
	DB *gorm.DB
}

func NewProfessionalClientHandler(db *gorm.DB) *ProfessionalClientHandler {
	return &ProfessionalClientHandler{DB: db}
}

// List: GET /api/professional-clients
func (h *ProfessionalClientHandler) List(w http.ResponseWriter, r *http.Request) {
	var clients []models.ProfessionalClient
	if err := h.DB.Order("created_at desc").Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

// Create: POST /api/professional-clients
func (h *ProfessionalClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ProfessionalClient
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("companyName", input.CompanyName, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	if input.PaymentTermsDays == 0 {
		input.PaymentTermsDays = 30
	}
	input.TotalOrders = 0
	input.TotalSpent = 0
	input.OutstandingBalance = 0
	if err := h.DB.Create(&input).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, input)
}

// Update: PUT /api/professional-clients/{id}
func (h *ProfessionalClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var input models.ProfessionalClient
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	updates := map[string]any{
		"company_name":       input.CompanyName,
		"contact_name":       input.ContactName,
		"phone":              input.Phone,
		"email":              input.Email,
		"address":            input.Address,
		"billing_address":    input.BillingAddress,
		"siret":              input.SIRET,
		"payment_terms_days": input.PaymentTermsDays,
		"discount_rate":      input.DiscountRate,
	}
	if err := h.DB.Model(&models.ProfessionalClient{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}

// Delete: DELETE /api/professional-clients/{id}
func (h *ProfessionalClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.DB.Where("id = ?", id).Delete(&models.ProfessionalClient{}).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}

// ProfessionalOrderHandler: commandes B2B. L'insertion met à jour les
// compteurs du client et son encours (commandes non réglées) dans la même
// transaction.
type ProfessionalOrderHandler struct {
	DB *gorm.DB
}

func NewProfessionalOrderHandler(db *gorm.DB) *ProfessionalOrderHandler {
	return &ProfessionalOrderHandler{DB: db}
}

// List: GET /api/professional-orders
func (h *ProfessionalOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var orders []models.ProfessionalOrder
	if err := h.DB.Order("created_at desc").Find(&orders).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

// Create: POST /api/professional-orders
func (h *ProfessionalOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ProfessionalOrder
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("clientId", input.ClientID, v)
	validation.PositiveInt("itemCount", input.ItemCount, v)
	validation.NonNegativeFloat("totalAmount", input.TotalAmount, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	if input.Status == "" {
		input.Status = models.StatusPending
	}
	if input.PaymentStatus == "" {
		input.PaymentStatus = models.PaymentUnpaid
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&input).Error; err != nil {
			return err
		}
		updates := map[string]any{
			"total_orders": gorm.Expr("total_orders + 1"),
			"total_spent":  gorm.Expr("total_spent + ?", input.TotalAmount),
		}
		if input.PaymentStatus == models.PaymentUnpaid {
			updates["outstanding_balance"] = gorm.Expr("outstanding_balance + ?", input.TotalAmount)
		}
		return tx.Model(&models.ProfessionalClient{}).Where("id = ?", input.ClientID).
			Updates(updates).Error
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, input)
}

// Update: PUT /api/professional-orders/{id} – le passage en "paid" sort le
// montant de l'encours du client.
func (h *ProfessionalOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var input models.ProfessionalOrder
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.ProfessionalOrder
		found := tx.Where("id = ?", id).First(&existing).Error == nil
		updates := map[string]any{
			"item_count":       input.ItemCount,
			"service_type":     input.ServiceType,
			"total_amount":     input.TotalAmount,
			"status":           input.Status,
			"payment_status":   input.PaymentStatus,
			"is_priority":      input.IsPriority,
			"delivery_date":    input.DeliveryDate,
			"payment_due_date": input.PaymentDueDate,
		}
		if err := tx.Model(&models.ProfessionalOrder{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if found && existing.PaymentStatus == models.PaymentUnpaid && input.PaymentStatus == models.PaymentPaid {
			return tx.Model(&models.ProfessionalClient{}).Where("id = ?", existing.ClientID).
				Update("outstanding_balance", gorm.Expr("outstanding_balance - ?", existing.TotalAmount)).Error
		}
		return nil
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}

// Delete: DELETE /api/professional-orders/{id} – idempotent; les compteurs
// sont resynchronisés par le recalcul au démarrage.
func (h *ProfessionalOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.DB.Where("id = ?", id).Delete(&models.ProfessionalOrder{}).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}
