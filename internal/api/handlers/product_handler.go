// server/internal/api/handlers/product_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/inventory"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type ProductHandler struct {
	Store *store.Store
}

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category" binding:"required"`
	Unit         string  `json:"unit" binding:"required"`
	OpeningStock float64 `json:"openingStock"`
	MinStock     float64 `json:"minStock"`
	Supplier     string  `json:"supplier"`
	Notes        string  `json:"notes"`
	Active       *bool   `json:"active"`
}

type UpdateProductRequest struct {
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Unit     string   `json:"unit"`
	MinStock *float64 `json:"minStock"`
	Supplier string   `json:"supplier"`
	Notes    string   `json:"notes"`
	Active   *bool    `json:"active"`
}

// ProductWithStock is a product with its derived stock level. The balance is
// folded from the ledger on every read, never cached.
type ProductWithStock struct {
	models.Product
	CurrentStock float64 `json:"currentStock"`
	LowStock     bool    `json:"lowStock"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidProductCategory(req.Category) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown product category"})
		return
	}
	if !models.ValidProductUnit(req.Unit) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown product unit"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	product := models.Product{
		Name:         req.Name,
		SKU:          req.SKU,
		Brand:        req.Brand,
		Category:     req.Category,
		Unit:         req.Unit,
		OpeningStock: req.OpeningStock,
		MinStock:     req.MinStock,
		Supplier:     req.Supplier,
		Notes:        req.Notes,
		Active:       active,
	}
	if err := h.Store.CreateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetAllProducts lists products with their derived stock levels.
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
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

	out := make([]ProductWithStock, 0, len(products))
	for _, p := range products {
		current := inventory.CurrentStock(p, logsByProduct[p.ID.Hex()])
		out = append(out, ProductWithStock{
			Product:      p,
			CurrentStock: current,
			LowStock:     inventory.IsLowStock(p, current),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	key := c.Param("id")
	product, err := h.Store.GetProduct(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	logs, err := h.Store.ListStockLogs(c.Request.Context(), bson.M{"productKey": key})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stock logs"})
		return
	}
	current := inventory.CurrentStock(*product, logs)
	c.JSON(http.StatusOK, ProductWithStock{
		Product:      *product,
		CurrentStock: current,
		LowStock:     inventory.IsLowStock(*product, current),
	})
}

// GetLowStockProducts lists active products under their minimum level.
func (h *ProductHandler) GetLowStockProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context(), bson.M{"active": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query products"})
		return
	}
	logsByProduct, err := h.Store.StockLogsByProduct(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stock logs"})
		return
	}

	low := []ProductWithStock{}
	for _, p := range products {
		current := inventory.CurrentStock(p, logsByProduct[p.ID.Hex()])
		if inventory.IsLowStock(p, current) {
			low = append(low, ProductWithStock{Product: p, CurrentStock: current, LowStock: true})
		}
	}
	c.JSON(http.StatusOK, low)
}

// UpdateProduct edits product metadata. The opening stock cannot change
// after creation; stock corrections go through an adjust log entry.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.SKU != "" {
		update["sku"] = req.SKU
	}
	if req.Brand != "" {
		update["brand"] = req.Brand
	}
	if req.Category != "" {
		if !models.ValidProductCategory(req.Category) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown product category"})
			return
		}
		update["category"] = req.Category
	}
	if req.Unit != "" {
		if !models.ValidProductUnit(req.Unit) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown product unit"})
			return
		}
		update["unit"] = req.Unit
	}
	if req.MinStock != nil {
		update["minStock"] = *req.MinStock
	}
	if req.Supplier != "" {
		update["supplier"] = req.Supplier
	}
	if req.Notes != "" {
		update["notes"] = req.Notes
	}
	if req.Active != nil {
		update["active"] = *req.Active
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := h.Store.UpdateProduct(c.Request.Context(), c.Param("id"), update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteProduct removes a product together with its stock ledger.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.Store.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
