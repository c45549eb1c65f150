package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Khattouaymen/pressing-sub000/internal/httpx"
	"github.com/Khattouaymen/pressing-sub000/internal/models"
	"github.com/Khattouaymen/pressing-sub000/internal/services"
	"github.com/Khattouaymen/pressing-sub000/internal/validation"

	"gorm.io/gorm"
)

type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler { return &ClientHandler{DB: db} }

// List: GET /api/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	var clients []models.Client
	if err := h.DB.Order("created_at desc").Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

// Create: POST /api/clients – l'id CLIn est alloué côté serveur, les
// compteurs démarrent à zéro quoi qu'envoie le navigateur.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Client
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("firstName", input.FirstName, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		id, err := services.NextClientID(tx)
		if err != nil {
			return err
		}
		input.ID = id
		input.Temporary = false
		input.TotalOrders = 0
		input.TotalSpent = 0
		return tx.Create(&input).Error
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, input)
}

// Update: PUT /api/clients/{id} – full overwrite of the mutable fields.
// Zéro ligne affectée sur un id absent reste un succès (idempotent, comme
// le client web l'attend).
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var input models.Client
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	updates := map[string]any{
		"first_name":   input.FirstName,
		"last_name":    input.LastName,
		"phone":        input.Phone,
		"email":        input.Email,
		"address":      input.Address,
		"company_name": input.CompanyName,
		"siret":        input.SIRET,
	}
	if err := h.DB.Model(&models.Client{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}

// Delete: DELETE /api/clients/{id} – idempotent; les commandes qui
// référencent l'id restent en base (pas de cascade).
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.DB.Where("id = ?", id).Delete(&models.Client{}).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}
