package services

import (
	"fmt"
	"testing"

	"github.com/Khattouaymen/pressing-sub000/internal/models"
)

func TestNextClientIDEmptyTable(t *testing.T) {
	db := setupTestDB(t)
	id, err := NextClientID(db)
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != "CLI1" {
		t.Fatalf("expected CLI1 got %s", id)
	}
}

func TestNextClientIDSequence(t *testing.T) {
	db := setupTestDB(t)
	for i := 1; i <= 5; i++ {
		if err := db.Create(&models.Client{ID: fmt.Sprintf("CLI%d", i), FirstName: "C"}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	id, err := NextClientID(db)
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != "CLI6" {
		t.Fatalf("expected CLI6 got %s", id)
	}
}

func TestNextClientIDIgnoresGuestRows(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Client{ID: "CLI1", FirstName: "C"})
	db.Create(&models.Client{ID: "GUEST9", FirstName: "G", Temporary: true})
	id, err := NextClientID(db)
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != "CLI2" {
		t.Fatalf("guest rows must not count, expected CLI2 got %s", id)
	}
}

func TestNextOrderID(t *testing.T) {
	db := setupTestDB(t)
	id, err := NextOrderID(db)
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != "PR1" {
		t.Fatalf("expected PR1 got %s", id)
	}
	if err := db.Create(&models.Order{ID: id, TotalAmount: 1}).Error; err != nil {
		t.Fatalf("order: %v", err)
	}
	id, err = NextOrderID(db)
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != "PR2" {
		t.Fatalf("expected PR2 got %s", id)
	}
}
