// server/internal/api/handlers/remark_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type RemarkHandler struct {
	Store *store.Store
}

type CreateRemarkRequest struct {
	ProjectKey string `json:"projectKey" binding:"required"`
	Text       string `json:"text" binding:"required"`
	Date       string `json:"date"`
}

func (h *RemarkHandler) CreateRemark(c *gin.Context) {
	claims := middleware.Claims(c)
	var req CreateRemarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !claimsAssignedTo(claims, req.ProjectKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not assigned to this project"})
		return
	}

	remark := models.Remark{
		ProjectKey: req.ProjectKey,
		UserKey:    claims.UserKey,
		Text:       req.Text,
		Date:       req.Date,
	}
	if err := h.Store.InsertRemark(c.Request.Context(), &remark); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save remark"})
		return
	}

	c.JSON(http.StatusCreated, remark)
}

func (h *RemarkHandler) GetRemarks(c *gin.Context) {
	claims := middleware.Claims(c)

	filter := bson.M{}
	if project := c.Query("project"); project != "" {
		if !claimsAssignedTo(claims, project) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this project"})
			return
		}
		filter["projectKey"] = project
	} else if claims.Role != models.RoleAdmin {
		keys := claims.Projects
		if keys == nil {
			keys = []string{}
		}
		filter["projectKey"] = bson.M{"$in": keys}
	}

	remarks, err := h.Store.ListRemarks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query remarks"})
		return
	}
	c.JSON(http.StatusOK, remarks)
}

func (h *RemarkHandler) DeleteRemark(c *gin.Context) {
	if err := h.Store.DeleteRemark(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remark not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete remark"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
