package db

import (
	"github.com/Khattouaymen/pressing-sub000/internal/models"

	"gorm.io/gorm"
)

// Seed inserts the demonstration rows on an empty base. Each table is
// checked independently so partial seeds are completed rather than
// duplicated.
func Seed(db *gorm.DB) {
	var pieceCount int64
	db.Model(&models.Piece{}).Count(&pieceCount)
	if pieceCount == 0 {
		basePieces := []models.Piece{
			{ID: "P1", Name: "Chemise", Category: "vetement", PressingPrice: 3.5, CleaningPressingPrice: 8.0},
			{ID: "P2", Name: "Pantalon", Category: "vetement", PressingPrice: 4.0, CleaningPressingPrice: 9.0},
			{ID: "P3", Name: "Veste", Category: "vetement", PressingPrice: 5.5, CleaningPressingPrice: 12.0},
			{ID: "P4", Name: "Robe", Category: "vetement", PressingPrice: 6.0, CleaningPressingPrice: 13.0},
			{ID: "P5", Name: "Manteau", Category: "vetement", PressingPrice: 8.0, CleaningPressingPrice: 16.0},
			{ID: "P6", Name: "Costume 2 pièces", Category: "vetement", PressingPrice: 9.5, CleaningPressingPrice: 19.0},
			{ID: "P7", Name: "Drap housse", Category: "linge", PressingPrice: 4.5, CleaningPressingPrice: 10.0},
			{ID: "P8", Name: "Housse de couette", Category: "linge", PressingPrice: 6.5, CleaningPressingPrice: 14.0},
			{ID: "P9", Name: "Nappe", Category: "linge", PressingPrice: 5.0, CleaningPressingPrice: 11.0},
			{ID: "P10", Name: "Tenue de travail", Category: "vetement", PressingPrice: 5.0, CleaningPressingPrice: 10.5, IsProfessional: true},
			{ID: "P11", Name: "Linge de restaurant (lot de 10)", Category: "linge", PressingPrice: 18.0, CleaningPressingPrice: 35.0, IsProfessional: true},
		}
		for _, p := range basePieces {
			db.Create(&p)
		}
	}

	var clientCount int64
	db.Model(&models.Client{}).Count(&clientCount)
	if clientCount == 0 {
		baseClients := []models.Client{
			{ID: "CLI1", FirstName: "Marie", LastName: "Dupont", Phone: "0612345678", Email: "marie.dupont@example.com", Address: "12 rue des Lilas, 75011 Paris"},
			{ID: "CLI2", FirstName: "Karim", LastName: "Benali", Phone: "0698765432", Email: "k.benali@example.com", Address: "4 avenue Jean Jaurès, 69007 Lyon"},
		}
		for _, c := range baseClients {
			db.Create(&c)
		}
	}

	var proCount int64
	db.Model(&models.ProfessionalClient{}).Count(&proCount)
	if proCount == 0 {
		db.Create(&models.ProfessionalClient{
			ID:               "PRO1",
			CompanyName:      "Hôtel du Parc",
			ContactName:      "Sophie Marchand",
			Phone:            "0145872233",
			Email:            "intendance@hotelduparc.example.com",
			Address:          "8 place de la Gare, 75010 Paris",
			BillingAddress:   "8 place de la Gare, 75010 Paris",
			SIRET:            "84234519600017",
			PaymentTermsDays: 30,
			DiscountRate:     0.10,
		})
	}
}
