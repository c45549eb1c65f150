package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Khattouaymen/pressing-sub000/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}, &models.ProfessionalClient{}, &models.Piece{},
		&models.Order{}, &models.OrderPiece{}, &models.ProfessionalOrder{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestClientCreateAssignsSequentialID(t *testing.T) {
	db := setupTestDB(t)
	h := NewClientHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"firstName":"Marie","lastName":"Dupont","phone":"0612345678","totalOrders":42,"totalSpent":99}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created models.Client
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "CLI1" {
		t.Fatalf("expected server-assigned CLI1 got %s", created.ID)
	}
	// Les compteurs envoyés par le navigateur sont ignorés.
	if created.TotalOrders != 0 || created.TotalSpent != 0 {
		t.Fatalf("stats must start at zero, got %d/%v", created.TotalOrders, created.TotalSpent)
	}
}

func TestClientCreateValidatesFirstName(t *testing.T) {
	db := setupTestDB(t)
	h := NewClientHandler(db)
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"lastName":"Dupont"}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestClientList(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Client{ID: "CLI1", FirstName: "Marie"})
	db.Create(&models.Client{ID: "CLI2", FirstName: "Karim"})
	h := NewClientHandler(db)
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var clients []models.Client
	if err := json.Unmarshal(w.Body.Bytes(), &clients); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients got %d", len(clients))
	}
}

func TestClientUpdateMissingIDIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	h := NewClientHandler(db)
	req := httptest.NewRequest(http.MethodPut, "/api/clients/CLI999", strings.NewReader(`{"firstName":"X"}`))
	req.SetPathValue("id", "CLI999")
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("expected success ack, got %s", w.Body.String())
	}
}

func TestClientDeleteLeavesOrdersDangling(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Client{ID: "CLI1", FirstName: "Marie"})
	cli := "CLI1"
	db.Create(&models.Order{ID: "PR1", ClientID: &cli, TotalAmount: 10})
	h := NewClientHandler(db)
	req := httptest.NewRequest(http.MethodDelete, "/api/clients/CLI1", nil)
	req.SetPathValue("id", "CLI1")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	// Pas de cascade: la commande orpheline reste en base.
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 1 {
		t.Fatalf("expected orphan order to remain, got %d rows", orders)
	}
}
