// server/internal/api/handlers/user_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/auth"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type UserHandler struct {
	Store *store.Store
}

type CreateStaffRequest struct {
	EmpID    string   `json:"empId" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Projects []string `json:"projects"`
	Active   *bool    `json:"active"`
}

type CreateClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	ProjectKey string `json:"projectKey" binding:"required"`
	Active     *bool  `json:"active"`
}

type UpdateUserRequest struct {
	EmpID    string   `json:"empId"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Projects []string `json:"projects"`
	Active   *bool    `json:"active"`
}

type UpdateMeRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateStaff registers a field staff account with its project assignments.
func (h *UserHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taken, err := h.Store.UsernameTaken(c.Request.Context(), req.Username, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := models.User{
		EmpID:    req.EmpID,
		Name:     req.Name,
		Username: req.Username,
		Password: hashed,
		Role:     models.RoleStaff,
		Projects: req.Projects,
		Active:   active,
	}
	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// CreateClient registers a client portal account bound to one project.
func (h *UserHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Store.GetProject(c.Request.Context(), req.ProjectKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up project"})
		return
	}

	taken, err := h.Store.UsernameTaken(c.Request.Context(), req.Username, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := models.User{
		Name:     req.Name,
		Username: req.Username,
		Password: hashed,
		Role:     models.RoleClient,
		Projects: []string{req.ProjectKey},
		Active:   active,
	}
	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.Store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update to any account. Changing a username
// re-runs the duplicate check against everyone else.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key := c.Param("id")

	update := bson.M{}
	if req.EmpID != "" {
		update["empId"] = req.EmpID
	}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Username != "" {
		taken, err := h.Store.UsernameTaken(c.Request.Context(), req.Username, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
			return
		}
		if taken {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		update["username"] = req.Username
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		update["password"] = hashed
	}
	if req.Projects != nil {
		update["projects"] = req.Projects
	}
	if req.Active != nil {
		update["active"] = *req.Active
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := h.Store.UpdateUser(c.Request.Context(), key, update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// UpdateMe lets the signed-in user change their own name or password.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	claims := middleware.Claims(c)
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		update["password"] = hashed
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := h.Store.UpdateUser(c.Request.Context(), claims.UserKey, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetMe returns the signed-in user's account.
func (h *UserHandler) GetMe(c *gin.Context) {
	claims := middleware.Claims(c)
	user, err := h.Store.GetUser(c.Request.Context(), claims.UserKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	claims := middleware.Claims(c)
	key := c.Param("id")
	if key == claims.UserKey {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	if err := h.Store.DeleteUser(c.Request.Context(), key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
