package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"a2z-ipm-api-server/internal/models"
)

func TestInventoryStatusRows(t *testing.T) {
	id := primitive.NewObjectID()
	products := []models.Product{{
		ID:           id,
		Name:         "Cypermethrin 10 EC",
		SKU:          "INS-CYP-10",
		Brand:        "AgriShield",
		Category:     "Insecticide",
		Unit:         "L",
		OpeningStock: 20,
		MinStock:     10,
		Supplier:     "ChemTrade",
		Active:       true,
	}}
	logs := map[string][]models.StockLog{
		id.Hex(): {{Type: models.StockTypeUsage, Qty: 15, Date: "2026-08-10"}},
	}

	rows := inventoryStatusRows(products, logs)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row[1] != "INS-CYP-10" {
		t.Fatalf("sku column wrong: %q", row[1])
	}
	if row[5] != "5.00" {
		t.Fatalf("current stock must be folded from the ledger, got %q", row[5])
	}
	if row[7] != "Yes" {
		t.Fatalf("5 of min 10 must flag low stock, got %q", row[7])
	}
}

func TestStockLogRowsResolvesNamesWithDashFallback(t *testing.T) {
	logs := []models.StockLog{
		{
			Date:       "2026-08-03",
			ProductKey: "p1",
			Type:       models.StockTypeUsage,
			Qty:        2.5,
			EntryType:  models.EntryStaffUsage,
			ProjectKey: "pr1",
			UserKey:    "u1",
			BatchNo:    "B-2203",
		},
		{
			Date:       "2026-08-04",
			ProductKey: "gone",
			Type:       models.StockTypeAdd,
			Qty:        10,
			EntryType:  models.EntryAdminAdjustment,
			Supplier:   "ChemTrade",
		},
	}
	rows := stockLogRows(logs,
		map[string]string{"p1": "Cypermethrin 10 EC"},
		map[string]string{"pr1": "Mill Site"},
		map[string]string{"u1": "Bilal"},
	)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first[1] != "Cypermethrin 10 EC" || first[5] != "Mill Site" || first[6] != "Bilal" {
		t.Fatalf("references not resolved: %v", first)
	}
	if first[7] != "B-2203" {
		t.Fatalf("batch number missing from export: %v", first)
	}
	second := rows[1]
	if second[1] != "-" || second[5] != "-" || second[6] != "-" {
		t.Fatalf("dangling references must render as a dash: %v", second)
	}
	if second[8] != "ChemTrade" {
		t.Fatalf("supplier missing from export: %v", second)
	}
}
