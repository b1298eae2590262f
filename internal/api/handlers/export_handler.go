// server/internal/api/handlers/export_handler.go
package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/config"
	"a2z-ipm-api-server/internal/forms"
	"a2z-ipm-api-server/internal/inventory"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type ExportHandler struct {
	Store *store.Store
	Cfg   config.Config
}

// exportSheet is one tab of an exported workbook.
type exportSheet struct {
	Name    string
	Title   string
	Headers []string
	Rows    [][]string
}

var inventoryStatusHeaders = []string{
	"Name", "SKU", "Brand", "Category", "Unit",
	"Current Stock", "Min Stock", "Low Stock", "Supplier", "Active",
}

var stockLogHeaders = []string{
	"Date", "Product", "Type", "Qty", "Entry", "Project", "User", "Batch No", "Supplier", "Note",
}

// inventoryStatusRows renders the product register with derived stock levels.
func inventoryStatusRows(products []models.Product, logsByProduct map[string][]models.StockLog) [][]string {
	var rows [][]string
	for _, p := range products {
		current := inventory.CurrentStock(p, logsByProduct[p.ID.Hex()])
		low := "No"
		if inventory.IsLowStock(p, current) {
			low = "Yes"
		}
		active := "No"
		if p.Active {
			active = "Yes"
		}
		rows = append(rows, []string{
			p.Name, p.SKU, p.Brand, p.Category, p.Unit,
			fmt.Sprintf("%.2f", current), fmt.Sprintf("%.2f", p.MinStock),
			low, p.Supplier, active,
		})
	}
	return rows
}

// stockLogRows renders ledger movements for the transaction sheet. References
// to deleted products, projects or users render as a dash.
func stockLogRows(logs []models.StockLog, productNames, projectNames, userNames map[string]string) [][]string {
	var rows [][]string
	for _, l := range logs {
		rows = append(rows, []string{
			l.Date,
			orDash(productNames[l.ProductKey]),
			l.Type,
			fmt.Sprintf("%.2f", l.Qty),
			l.EntryType,
			orDash(projectNames[l.ProjectKey]),
			orDash(userNames[l.UserKey]),
			orDash(l.BatchNo),
			orDash(l.Supplier),
			l.Note,
		})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ExportInventory downloads the product register with derived stock levels as
// xlsx or csv. The workbook carries a second sheet with the month's stock
// movements; csv output is the status table only.
func (h *ExportHandler) ExportInventory(c *gin.Context) {
	format := c.Query("format")
	if format == "" {
		format = "xlsx"
	}
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	products, err := h.Store.ListProducts(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query products"})
		return
	}
	logsByProduct, err := h.Store.StockLogsByProduct(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stock logs"})
		return
	}

	statusRows := inventoryStatusRows(products, logsByProduct)
	if format == "csv" {
		exportCSV(c.Writer, "inventory.csv", inventoryStatusHeaders, statusRows)
		return
	}

	monthLogs, err := h.Store.ListStockLogs(c.Request.Context(), bson.M{
		"date": bson.M{"$regex": "^" + month},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stock logs"})
		return
	}

	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID.Hex()] = p.Name
	}
	projectNames := map[string]string{}
	if projects, err := h.Store.ListProjects(c.Request.Context(), nil); err == nil {
		for _, p := range projects {
			projectNames[p.ID.Hex()] = p.Name
		}
	}
	userNames := map[string]string{}
	if users, err := h.Store.ListUsers(c.Request.Context()); err == nil {
		for _, u := range users {
			userNames[u.ID.Hex()] = u.Name
		}
	}

	exportExcel(c.Writer, "inventory.xlsx", h.Cfg.Company.Name, []exportSheet{
		{
			Name:    "Stock Status",
			Title:   "Inventory Stock Status",
			Headers: inventoryStatusHeaders,
			Rows:    statusRows,
		},
		{
			Name:    "Transactions",
			Title:   "Stock Transactions " + month,
			Headers: stockLogHeaders,
			Rows:    stockLogRows(monthLogs, productNames, projectNames, userNames),
		},
	})
}

// ExportRecords downloads a month of one project's submissions.
func (h *ExportHandler) ExportRecords(c *gin.Context) {
	projectKey := c.Query("project")
	if projectKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project query parameter is required"})
		return
	}
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	format := c.Query("format")
	if format == "" {
		format = "xlsx"
	}

	records, err := h.Store.ListRecords(c.Request.Context(), bson.M{
		"projectKey": projectKey,
		"date":       bson.M{"$regex": "^" + month},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query records"})
		return
	}

	userNames := map[string]string{}
	if users, err := h.Store.ListUsers(c.Request.Context()); err == nil {
		for _, u := range users {
			userNames[u.ID.Hex()] = u.Name
		}
	}
	formNames := map[string]string{}
	if list, err := h.Store.ListCustomForms(c.Request.Context()); err == nil {
		for _, f := range list {
			formNames[f.ID.Hex()] = f.Name
		}
	}

	headers := []string{"Date", "Time", "Form", "Technician", "Remarks"}
	var data [][]string
	for _, r := range records {
		formName := r.FormType
		if name, ok := forms.BuiltinForms[r.FormType]; ok {
			formName = name
		} else if name, ok := formNames[r.FormType]; ok {
			formName = name
		}
		data = append(data, []string{r.Date, r.Time, formName, orDash(userNames[r.UserKey]), r.Remarks})
	}

	if format == "csv" {
		exportCSV(c.Writer, "records.csv", headers, data)
		return
	}
	exportExcel(c.Writer, "records.xlsx", h.Cfg.Company.Name, []exportSheet{
		{
			Name:    "Records",
			Title:   "Service Records " + month,
			Headers: headers,
			Rows:    data,
		},
	})
}

// exportCSV writes data to CSV format.
func exportCSV(w http.ResponseWriter, filename string, headers []string, data [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		http.Error(w, "Failed to write CSV headers", 500)
		return
	}
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			http.Error(w, "Failed to write CSV row", 500)
			return
		}
	}
}

// exportExcel writes a workbook with a company header on every sheet. Column
// headers sit on row 4; data starts on row 5.
func exportExcel(w http.ResponseWriter, filename, company string, sheets []exportSheet) {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		http.Error(w, "Failed to create title style", 500)
		return
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		http.Error(w, "Failed to create header style", 500)
		return
	}

	for si, sheet := range sheets {
		index, err := f.NewSheet(sheet.Name)
		if err != nil {
			http.Error(w, "Failed to create Excel sheet", 500)
			return
		}
		if si == 0 {
			f.SetActiveSheet(index)
		}

		f.SetCellValue(sheet.Name, "A1", company)
		f.SetCellStyle(sheet.Name, "A1", "A1", titleStyle)
		f.SetCellValue(sheet.Name, "A2", sheet.Title)

		for i, header := range sheet.Headers {
			cell := fmt.Sprintf("%s4", string(rune('A'+i)))
			f.SetCellValue(sheet.Name, cell, header)
			f.SetCellStyle(sheet.Name, cell, cell, headerStyle)
		}
		for rowIdx, row := range sheet.Rows {
			for colIdx, value := range row {
				cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+5)
				f.SetCellValue(sheet.Name, cell, value)
			}
		}
		for i := range sheet.Headers {
			col := string(rune('A' + i))
			f.SetColWidth(sheet.Name, col, col, 15)
		}
	}
	f.DeleteSheet("Sheet1")

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write Excel file", 500)
		return
	}
}
