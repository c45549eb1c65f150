package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Khattouaymen/pressing-sub000/internal/httpx"
	"github.com/Khattouaymen/pressing-sub000/internal/models"
	"github.com/Khattouaymen/pressing-sub000/internal/services"
	"github.com/Khattouaymen/pressing-sub000/internal/validation"

	"gorm.io/gorm"
)

type OrderHandler struct {
	DB  *gorm.DB
	Svc *services.OrderService
}

func NewOrderHandler(db *gorm.DB, svc *services.OrderService) *OrderHandler {
	return &OrderHandler{DB: db, Svc: svc}
}

// List: GET /api/orders – commandes avec leurs lignes, plus récentes en tête.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var orders []models.Order
	if err := h.DB.Preload("Pieces").Order("created_at desc").Find(&orders).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

// Create: POST /api/orders – body: Order + pieces[].
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID           *string                   `json:"clientId"`
		ClientName         string                    `json:"clientName"`
		Status             string                    `json:"status"`
		PaymentStatus      string                    `json:"paymentStatus"`
		IsExceptionalPrice bool                      `json:"isExceptionalPrice"`
		TotalAmount        float64                   `json:"totalAmount"`
		EstimatedReadyAt   *time.Time                `json:"estimatedReadyAt"`
		Pieces             []services.OrderLineInput `json:"pieces"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	if len(req.Pieces) == 0 {
		v["pieces"] = "required"
	}
	for _, ln := range req.Pieces {
		validation.Required("pieces.pieceId", ln.PieceID, v)
		validation.PositiveInt("pieces.quantity", ln.Quantity, v)
		validation.OneOf("pieces.serviceType", ln.ServiceType,
			[]string{models.ServicePressing, models.ServiceCleaningPressing}, v)
	}
	if req.IsExceptionalPrice {
		validation.NonNegativeFloat("totalAmount", req.TotalAmount, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	order, err := h.Svc.Create(services.OrderInput{
		ClientID:           req.ClientID,
		ClientName:         req.ClientName,
		Status:             req.Status,
		PaymentStatus:      req.PaymentStatus,
		IsExceptionalPrice: req.IsExceptionalPrice,
		TotalAmount:        req.TotalAmount,
		EstimatedReadyAt:   req.EstimatedReadyAt,
		Lines:              req.Pieces,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

// Update: PUT /api/orders/{id} – statut, règlement, date de retrait et
// montant seulement; les lignes ne sont jamais modifiées après coup.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var input models.Order
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	updates := map[string]any{
		"client_name":          input.ClientName,
		"status":               input.Status,
		"payment_status":       input.PaymentStatus,
		"total_amount":         input.TotalAmount,
		"is_exceptional_price": input.IsExceptionalPrice,
		"estimated_ready_at":   input.EstimatedReadyAt,
	}
	if err := h.DB.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}

// Delete: DELETE /api/orders/{id} – supprime la commande et ses lignes.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Svc.Delete(id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}
