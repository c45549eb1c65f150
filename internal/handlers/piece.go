package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Khattouaymen/pressing-sub000/internal/httpx"
	"github.com/Khattouaymen/pressing-sub000/internal/models"
	"github.com/Khattouaymen/pressing-sub000/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PieceHandler struct {
	DB *gorm.DB
}

func NewPieceHandler(db *gorm.DB) *PieceHandler { return &PieceHandler{DB: db} }

// List: GET /api/pieces[?professional=true|false] – le paramètre partitionne
// le catalogue entre les parcours particulier et professionnel.
func (h *PieceHandler) List(w http.ResponseWriter, r *http.Request) {
	dbq := h.DB.Order("created_at desc")
	if v := r.URL.Query().Get("professional"); v != "" {
		pro, err := strconv.ParseBool(v)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_professional_filter", nil)
			return
		}
		dbq = dbq.Where("is_professional = ?", pro)
	}
	var pieces []models.Piece
	if err := dbq.Find(&pieces).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, pieces)
}

// Create: POST /api/pieces
func (h *PieceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Piece
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", input.Name, v)
	validation.PositiveFloat("pressingPrice", input.PressingPrice, v)
	validation.PositiveFloat("cleaningPressingPrice", input.CleaningPressingPrice, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	if err := h.DB.Create(&input).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, input)
}

// Update: PUT /api/pieces/{id}
func (h *PieceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var input models.Piece
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	updates := map[string]any{
		"name":                    input.Name,
		"category":                input.Category,
		"pressing_price":          input.PressingPrice,
		"cleaning_pressing_price": input.CleaningPressingPrice,
		"is_professional":         input.IsProfessional,
	}
	if err := h.DB.Model(&models.Piece{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}

// Delete: DELETE /api/pieces/{id} – les lignes de commande qui référencent
// la pièce gardent leur instantané nom/prix et ne sont pas touchées.
func (h *PieceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.DB.Where("id = ?", id).Delete(&models.Piece{}).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.Success(w)
}
