// server/internal/api/handlers/stock_log_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/inventory"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type StockLogHandler struct {
	Store *store.Store
}

type CreateStockLogRequest struct {
	ProductKey string  `json:"productKey" binding:"required"`
	Type       string  `json:"type" binding:"required,oneof=add usage adjust"`
	Qty        float64 `json:"qty" binding:"min=0"`
	Date       string  `json:"date" binding:"required"`
	Note       string  `json:"note"`
	ProjectKey string  `json:"projectKey"`
	BatchNo    string  `json:"batchNo"`
	Supplier   string  `json:"supplier"`
}

// CreateStockLog appends a stock movement. Staff may only record usage;
// receipts and adjustments are admin entries.
func (h *StockLogHandler) CreateStockLog(c *gin.Context) {
	claims := middleware.Claims(c)
	var req CreateStockLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if claims.Role != models.RoleAdmin && req.Type != models.StockTypeUsage {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only administrators can add or adjust stock"})
		return
	}
	if req.ProjectKey != "" && !claimsAssignedTo(claims, req.ProjectKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not assigned to this project"})
		return
	}

	if _, err := h.Store.GetProduct(c.Request.Context(), req.ProductKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up product"})
		return
	}

	entryType := models.EntryStaffUsage
	if claims.Role == models.RoleAdmin {
		entryType = models.EntryAdminAdjustment
	}

	log := models.StockLog{
		ProductKey: req.ProductKey,
		Type:       req.Type,
		Qty:        req.Qty,
		Date:       req.Date,
		Note:       req.Note,
		EntryType:  entryType,
		UserKey:    claims.UserKey,
		ProjectKey: req.ProjectKey,
		BatchNo:    req.BatchNo,
		Supplier:   req.Supplier,
	}
	if err := h.Store.InsertStockLog(c.Request.Context(), &log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save stock log"})
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetStockLogs lists movements, optionally filtered by product, month or
// type, in ledger order.
func (h *StockLogHandler) GetStockLogs(c *gin.Context) {
	filter := bson.M{}
	if product := c.Query("product"); product != "" {
		filter["productKey"] = product
	}
	if month := c.Query("month"); month != "" {
		filter["date"] = bson.M{"$regex": "^" + month}
	}
	if logType := c.Query("type"); logType != "" {
		filter["type"] = logType
	}

	logs, err := h.Store.ListStockLogs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stock logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *StockLogHandler) DeleteStockLog(c *gin.Context) {
	if err := h.Store.DeleteStockLog(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetTrend plots one product's daily stock through a month.
func (h *StockLogHandler) GetTrend(c *gin.Context) {
	productKey := c.Query("product")
	if productKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product query parameter is required"})
		return
	}
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	product, err := h.Store.GetProduct(c.Request.Context(), productKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up product"})
		return
	}

	logs, err := h.Store.ListStockLogs(c.Request.Context(), bson.M{"productKey": productKey})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stock logs"})
		return
	}

	points, err := inventory.Trend(*product, logs, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usage, received := inventory.MonthTotals(logs, month)

	c.JSON(http.StatusOK, gin.H{
		"product":       product,
		"month":         month,
		"points":        points,
		"totalUsage":    usage,
		"totalReceived": received,
	})
}

// GetUsageSummary reports each product's usage and receipts for a month.
func (h *StockLogHandler) GetUsageSummary(c *gin.Context) {
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

	summary := inventory.UsageByProduct(products, logsByProduct, month)
	if summary == nil {
		summary = []inventory.ProductUsage{}
	}
	c.JSON(http.StatusOK, gin.H{"month": month, "products": summary})
}
