package inventory

import (
	"testing"

	"a2z-ipm-api-server/internal/models"
)

func log(t, date string, qty float64) models.StockLog {
	return models.StockLog{Type: t, Date: date, Qty: qty}
}

func TestFoldReplaysLedger(t *testing.T) {
	logs := []models.StockLog{
		log(models.StockTypeAdd, "2026-03-02", 100),
		log(models.StockTypeUsage, "2026-03-05", 30),
		log(models.StockTypeAdjust, "2026-03-10", 40),
		log(models.StockTypeAdd, "2026-03-15", 10),
	}
	if got := Fold(0, logs); got != 50 {
		t.Fatalf("expected balance 50, got %f", got)
	}
}

func TestFoldAdjustDiscardsHistory(t *testing.T) {
	logs := []models.StockLog{
		log(models.StockTypeAdd, "2026-03-01", 500),
		log(models.StockTypeAdjust, "2026-03-02", 7),
	}
	if got := Fold(1000, logs); got != 7 {
		t.Fatalf("adjust must replace the balance, got %f", got)
	}
}

func TestCurrentStockClampsNegative(t *testing.T) {
	p := models.Product{OpeningStock: 10}
	logs := []models.StockLog{log(models.StockTypeUsage, "2026-03-01", 25)}
	if got := CurrentStock(p, logs); got != 0 {
		t.Fatalf("displayed stock must floor at zero, got %f", got)
	}
	if got := Fold(10, logs); got != -15 {
		t.Fatalf("raw fold must keep the deficit, got %f", got)
	}
}

func TestIsLowStock(t *testing.T) {
	p := models.Product{Active: true, MinStock: 500}
	if !IsLowStock(p, 499) {
		t.Fatal("below minimum must alert")
	}
	if IsLowStock(p, 500) {
		t.Fatal("at minimum must not alert")
	}
	p.Active = false
	if IsLowStock(p, 0) {
		t.Fatal("inactive products never alert")
	}
}

// Usage may only lower the balance, so the alert cannot clear without a
// receipt or an upward adjustment.
func TestLowStockMonotonicUnderUsage(t *testing.T) {
	p := models.Product{Active: true, OpeningStock: 600, MinStock: 500}
	logs := []models.StockLog{log(models.StockTypeUsage, "2026-03-01", 150)}
	if !IsLowStock(p, CurrentStock(p, logs)) {
		t.Fatal("expected low stock after usage")
	}
	logs = append(logs, log(models.StockTypeUsage, "2026-03-02", 50))
	if !IsLowStock(p, CurrentStock(p, logs)) {
		t.Fatal("further usage must keep the alert raised")
	}
}

func TestMonthTotalsExcludesAdjust(t *testing.T) {
	logs := []models.StockLog{
		log(models.StockTypeUsage, "2026-03-04", 20),
		log(models.StockTypeAdd, "2026-03-06", 80),
		log(models.StockTypeAdjust, "2026-03-07", 999),
		log(models.StockTypeUsage, "2026-02-28", 40), // previous month
	}
	usage, received := MonthTotals(logs, "2026-03")
	if usage != 20 {
		t.Fatalf("expected usage 20, got %f", usage)
	}
	if received != 80 {
		t.Fatalf("expected received 80, got %f", received)
	}
}

func TestTrendBaselineAndMovementDays(t *testing.T) {
	p := models.Product{OpeningStock: 100}
	logs := []models.StockLog{
		log(models.StockTypeUsage, "2026-02-20", 30), // carried in
		log(models.StockTypeAdd, "2026-03-05", 50),
		log(models.StockTypeUsage, "2026-03-05", 10),
		log(models.StockTypeUsage, "2026-03-20", 60),
	}
	points, err := Trend(p, logs, "2026-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points (day 1 baseline + 2 movement days), got %d", len(points))
	}
	if points[0].Day != 1 || points[0].Stock != 70 {
		t.Fatalf("baseline should carry prior movements: %+v", points[0])
	}
	if points[1].Day != 5 || points[1].Stock != 110 || points[1].Used != 10 || points[1].Received != 50 {
		t.Fatalf("unexpected day 5 point: %+v", points[1])
	}
	if points[2].Day != 20 || points[2].Stock != 50 || points[2].Used != 60 {
		t.Fatalf("unexpected day 20 point: %+v", points[2])
	}
}

func TestTrendClampsDisplayedStock(t *testing.T) {
	p := models.Product{OpeningStock: 10}
	logs := []models.StockLog{log(models.StockTypeUsage, "2026-03-08", 40)}
	points, err := Trend(p, logs, "2026-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points[1].Stock != 0 {
		t.Fatalf("plotted stock must floor at zero, got %f", points[1].Stock)
	}
}

func TestTrendRejectsBadMonth(t *testing.T) {
	if _, err := Trend(models.Product{}, nil, "March 2026"); err == nil {
		t.Fatal("expected error for malformed month")
	}
}

func TestTrendLeapFebruary(t *testing.T) {
	p := models.Product{OpeningStock: 5}
	logs := []models.StockLog{log(models.StockTypeAdd, "2028-02-29", 5)}
	points, err := Trend(p, logs, "2028-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := points[len(points)-1]
	if last.Day != 29 || last.Stock != 10 {
		t.Fatalf("expected a day 29 point in a leap February, got %+v", last)
	}
}
