// server/internal/api/handlers/custom_form_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/forms"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type CustomFormHandler struct {
	Store *store.Store
}

type SaveCustomFormRequest struct {
	Name        string             `json:"name" binding:"required"`
	Icon        string             `json:"icon"`
	Description string             `json:"description"`
	Active      *bool              `json:"active"`
	Fields      []models.FormField `json:"fields"`
}

func (h *CustomFormHandler) CreateCustomForm(c *gin.Context) {
	var req SaveCustomFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	form := models.CustomForm{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		Active:      active,
		Fields:      req.Fields,
	}
	if err := forms.Normalize(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.CreateCustomForm(c.Request.Context(), &form); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create form"})
		return
	}

	c.JSON(http.StatusCreated, form)
}

func (h *CustomFormHandler) GetAllCustomForms(c *gin.Context) {
	list, err := h.Store.ListCustomForms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query forms"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CustomFormHandler) GetCustomFormByID(c *gin.Context) {
	form, err := h.Store.GetCustomForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve form"})
		return
	}
	c.JSON(http.StatusOK, form)
}

// UpdateCustomForm replaces the form definition. Edits re-run the same
// normalization as creation, so field IDs stay stable and seeds apply.
func (h *CustomFormHandler) UpdateCustomForm(c *gin.Context) {
	var req SaveCustomFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	form := models.CustomForm{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		Active:      active,
		Fields:      req.Fields,
	}
	if err := forms.Normalize(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{
		"name":        form.Name,
		"icon":        form.Icon,
		"description": form.Description,
		"active":      form.Active,
		"fields":      form.Fields,
	}
	if err := h.Store.UpdateCustomForm(c.Request.Context(), c.Param("id"), update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update form"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *CustomFormHandler) DeleteCustomForm(c *gin.Context) {
	if err := h.Store.DeleteCustomForm(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
