// server/internal/api/handlers/report_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/reports"
	"a2z-ipm-api-server/internal/store"
)

type ReportHandler struct {
	Store *store.Store
}

// GetMonthlyReport aggregates one project's submissions for a month into
// daily, weekly and per-form breakdowns.
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	claims := middleware.Claims(c)
	projectKey := c.Query("project")
	if projectKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project query parameter is required"})
		return
	}
	if !claimsAssignedTo(claims, projectKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this project"})
		return
	}
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	if _, err := h.Store.GetProject(c.Request.Context(), projectKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up project"})
		return
	}

	records, err := h.Store.ListRecords(c.Request.Context(), bson.M{"projectKey": projectKey})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query records"})
		return
	}

	customNames := map[string]string{}
	if list, err := h.Store.ListCustomForms(c.Request.Context()); err == nil {
		for _, f := range list {
			customNames[f.ID.Hex()] = f.Name
		}
	}

	report, err := reports.BuildMonthly(projectKey, month, records, customNames)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
