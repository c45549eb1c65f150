package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Khattouaymen/pressing-sub000/internal/models"
)

func seedCatalog(t *testing.T, h *PieceHandler) {
	t.Helper()
	pieces := []models.Piece{
		{ID: "P1", Name: "Chemise", PressingPrice: 3.5, CleaningPressingPrice: 8.0},
		{ID: "P2", Name: "Pantalon", PressingPrice: 4.0, CleaningPressingPrice: 9.0},
		{ID: "P3", Name: "Tenue de travail", PressingPrice: 5.0, CleaningPressingPrice: 10.5, IsProfessional: true},
	}
	for _, p := range pieces {
		if err := h.DB.Create(&p).Error; err != nil {
			t.Fatalf("seed %s: %v", p.ID, err)
		}
	}
}

func TestPieceListProfessionalFilter(t *testing.T) {
	db := setupTestDB(t)
	h := NewPieceHandler(db)
	seedCatalog(t, h)

	cases := []struct {
		url  string
		want int
	}{
		{"/api/pieces", 3},
		{"/api/pieces?professional=false", 2},
		{"/api/pieces?professional=true", 1},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, c.url, nil)
		w := httptest.NewRecorder()
		h.List(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", c.url, w.Code)
		}
		var pieces []models.Piece
		if err := json.Unmarshal(w.Body.Bytes(), &pieces); err != nil {
			t.Fatalf("%s: decode: %v", c.url, err)
		}
		if len(pieces) != c.want {
			t.Fatalf("%s: expected %d pieces got %d", c.url, c.want, len(pieces))
		}
	}
}

func TestPieceCreateKeepsSuppliedID(t *testing.T) {
	db := setupTestDB(t)
	h := NewPieceHandler(db)
	req := httptest.NewRequest(http.MethodPost, "/api/pieces", strings.NewReader(`{"id":"P1","name":"Chemise","pressingPrice":3.5,"cleaningPressingPrice":8.0}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created models.Piece
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "P1" {
		t.Fatalf("expected supplied id kept, got %s", created.ID)
	}
}

func TestPieceCreateGeneratesIDWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	h := NewPieceHandler(db)
	req := httptest.NewRequest(http.MethodPost, "/api/pieces", strings.NewReader(`{"name":"Robe","pressingPrice":6,"cleaningPressingPrice":13}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", w.Code)
	}
	var created models.Piece
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestPieceCreateValidatesPrices(t *testing.T) {
	db := setupTestDB(t)
	h := NewPieceHandler(db)
	req := httptest.NewRequest(http.MethodPost, "/api/pieces", strings.NewReader(`{"name":"Chemise","pressingPrice":0,"cleaningPressingPrice":8}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestPieceUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	h := NewPieceHandler(db)
	seedCatalog(t, h)

	req := httptest.NewRequest(http.MethodPut, "/api/pieces/P1", strings.NewReader(`{"name":"Chemise soie","pressingPrice":4.5,"cleaningPressingPrice":9.5}`))
	req.SetPathValue("id", "P1")
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d", w.Code)
	}
	var p models.Piece
	db.First(&p, "id = ?", "P1")
	if p.Name != "Chemise soie" || p.PressingPrice != 4.5 {
		t.Fatalf("update not applied: %+v", p)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/pieces/P1", nil)
	req.SetPathValue("id", "P1")
	w = httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}
	var count int64
	db.Model(&models.Piece{}).Where("id = ?", "P1").Count(&count)
	if count != 0 {
		t.Fatalf("piece should be gone")
	}
}
