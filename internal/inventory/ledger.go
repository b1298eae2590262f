// server/internal/inventory/ledger.go
package inventory

import (
	"fmt"
	"strings"
	"time"

	"a2z-ipm-api-server/internal/models"
)

// Fold replays a product's stock movements over its opening balance. Logs
// must be in chronological order: an adjust entry replaces the running
// balance, so reordering changes the result. The returned balance may be
// negative; callers display it through Clamp.
func Fold(opening float64, logs []models.StockLog) float64 {
	balance := opening
	for _, l := range logs {
		switch l.Type {
		case models.StockTypeAdd:
			balance += l.Qty
		case models.StockTypeUsage:
			balance -= l.Qty
		case models.StockTypeAdjust:
			balance = l.Qty
		}
	}
	return balance
}

// Clamp floors a balance at zero for display.
func Clamp(balance float64) float64 {
	if balance < 0 {
		return 0
	}
	return balance
}

// CurrentStock is the displayed stock level: the full ledger folded over the
// opening balance, floored at zero.
func CurrentStock(p models.Product, logs []models.StockLog) float64 {
	return Clamp(Fold(p.OpeningStock, logs))
}

// IsLowStock reports whether an active product has fallen under its minimum.
// Inactive products never alert.
func IsLowStock(p models.Product, current float64) bool {
	return p.Active && current < p.MinStock
}

// MonthTotals sums a month's consumption and receipts. Adjust entries set the
// balance rather than move it, so they count toward neither total.
func MonthTotals(logs []models.StockLog, month string) (usage, received float64) {
	for _, l := range logs {
		if !strings.HasPrefix(l.Date, month) {
			continue
		}
		switch l.Type {
		case models.StockTypeUsage:
			usage += l.Qty
		case models.StockTypeAdd:
			received += l.Qty
		}
	}
	return usage, received
}

// TrendPoint is one plotted day of a product's stock trend.
type TrendPoint struct {
	Day      int     `json:"day"`
	Stock    float64 `json:"stock"`
	Used     float64 `json:"used"`
	Received float64 `json:"received"`
}

// Trend walks one product's ledger through a month ("YYYY-MM") and emits a
// point for every day with movement, plus day 1 as the baseline. Movements
// dated before the month are pre-applied so the baseline reflects the balance
// carried in. Logs must be the product's full ledger in chronological order.
func Trend(p models.Product, logs []models.StockLog, month string) ([]TrendPoint, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	days := start.AddDate(0, 1, -1).Day()

	running := p.OpeningStock
	byDay := make(map[string][]models.StockLog)
	for _, l := range logs {
		if l.Date < month+"-01" {
			running = Fold(running, []models.StockLog{l})
			continue
		}
		if strings.HasPrefix(l.Date, month) {
			byDay[l.Date] = append(byDay[l.Date], l)
		}
	}

	var points []TrendPoint
	for d := 1; d <= days; d++ {
		ds := fmt.Sprintf("%s-%02d", month, d)
		var used, received float64
		dayLogs := byDay[ds]
		for _, l := range dayLogs {
			switch l.Type {
			case models.StockTypeAdd:
				running += l.Qty
				received += l.Qty
			case models.StockTypeUsage:
				running -= l.Qty
				used += l.Qty
			case models.StockTypeAdjust:
				running = l.Qty
			}
		}
		if len(dayLogs) > 0 || d == 1 {
			points = append(points, TrendPoint{Day: d, Stock: Clamp(running), Used: used, Received: received})
		}
	}
	return points, nil
}

// ProductUsage is one product's monthly movement summary.
type ProductUsage struct {
	Name     string  `json:"name"`
	Usage    float64 `json:"usage"`
	Received float64 `json:"received"`
}

// UsageByProduct summarises a month's movement per product, skipping products
// with no activity. logsByProduct is keyed by product key.
func UsageByProduct(products []models.Product, logsByProduct map[string][]models.StockLog, month string) []ProductUsage {
	var out []ProductUsage
	for _, p := range products {
		usage, received := MonthTotals(logsByProduct[p.ID.Hex()], month)
		if usage > 0 || received > 0 {
			out = append(out, ProductUsage{Name: p.Name, Usage: usage, Received: received})
		}
	}
	return out
}
