// server/internal/api/handlers/backup_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"a2z-ipm-api-server/config"
	"a2z-ipm-api-server/internal/store"
)

type BackupHandler struct {
	Store *store.Store
	Cfg   config.Config
}

// ExportBackup dumps every collection as one JSON document. Password hashes
// are stripped by the user model's JSON mapping.
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export users"})
		return
	}
	projects, err := h.Store.ListProjects(ctx, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export projects"})
		return
	}
	records, err := h.Store.ListRecords(ctx, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export records"})
		return
	}
	remarks, err := h.Store.ListRemarks(ctx, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export remarks"})
		return
	}
	customForms, err := h.Store.ListCustomForms(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export forms"})
		return
	}
	products, err := h.Store.ListProducts(ctx, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export products"})
		return
	}
	stockLogs, err := h.Store.ListStockLogs(ctx, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export stock logs"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=backup.json")
	c.JSON(http.StatusOK, gin.H{
		"company":     h.Cfg.Company.Name,
		"users":       users,
		"projects":    projects,
		"records":     records,
		"remarks":     remarks,
		"customForms": customForms,
		"products":    products,
		"stockLogs":   stockLogs,
		"exportedAt":  time.Now().UTC().Format(time.RFC3339),
	})
}
