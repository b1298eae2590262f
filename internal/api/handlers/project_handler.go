// server/internal/api/handlers/project_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/geo"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type ProjectHandler struct {
	Store *store.Store
}

type CreateProjectRequest struct {
	Code       string  `json:"code" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Client     string  `json:"client"`
	Contact    string  `json:"contact"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Radius     float64 `json:"radius"`
	GPSEnabled bool    `json:"gpsEnabled"`
	Active     *bool   `json:"active"`
}

type UpdateProjectRequest struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Client     string   `json:"client"`
	Contact    string   `json:"contact"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Radius     *float64 `json:"radius"`
	GPSEnabled *bool    `json:"gpsEnabled"`
	Active     *bool    `json:"active"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	radius := req.Radius
	if radius <= 0 {
		radius = geo.DefaultRadius
	}

	project := models.Project{
		Code:       req.Code,
		Name:       req.Name,
		Client:     req.Client,
		Contact:    req.Contact,
		Address:    req.Address,
		Lat:        req.Lat,
		Lng:        req.Lng,
		Radius:     radius,
		GPSEnabled: req.GPSEnabled,
		Active:     active,
	}
	if err := h.Store.CreateProject(c.Request.Context(), &project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetAllProjects lists projects scoped to the caller: admins see everything,
// staff see their assignments, clients see their own site.
func (h *ProjectHandler) GetAllProjects(c *gin.Context) {
	claims := middleware.Claims(c)

	filter := bson.M{}
	if claims.Role != models.RoleAdmin {
		ids := make([]interface{}, 0, len(claims.Projects))
		for _, key := range claims.Projects {
			if id, err := oidFromKey(key); err == nil {
				ids = append(ids, id)
			}
		}
		filter["_id"] = bson.M{"$in": ids}
	}

	projects, err := h.Store.ListProjects(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	claims := middleware.Claims(c)
	key := c.Param("id")
	if !claimsAssignedTo(claims, key) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this project"})
		return
	}

	project, err := h.Store.GetProject(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if req.Code != "" {
		update["code"] = req.Code
	}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Client != "" {
		update["client"] = req.Client
	}
	if req.Contact != "" {
		update["contact"] = req.Contact
	}
	if req.Address != "" {
		update["address"] = req.Address
	}
	if req.Lat != nil {
		update["lat"] = *req.Lat
	}
	if req.Lng != nil {
		update["lng"] = *req.Lng
	}
	if req.Radius != nil {
		update["radius"] = *req.Radius
	}
	if req.GPSEnabled != nil {
		update["gpsEnabled"] = *req.GPSEnabled
	}
	if req.Active != nil {
		update["active"] = *req.Active
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := h.Store.UpdateProject(c.Request.Context(), c.Param("id"), update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.Store.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
