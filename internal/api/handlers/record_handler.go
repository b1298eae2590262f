// server/internal/api/handlers/record_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/forms"
	"a2z-ipm-api-server/internal/geo"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/store"
)

type RecordHandler struct {
	Store *store.Store
}

type CreateRecordRequest struct {
	FormType        string `json:"formType" binding:"required"`
	ProjectKey      string `json:"projectKey" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Remarks         string `json:"remarks"`
	TechSignature   string `json:"techSignature"`
	ClientSignature string `json:"clientSignature"`

	// attendance: work summary plus the device position, verified server-side
	Work string  `json:"work"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`

	Chemical     string `json:"chemical"`
	Qty          string `json:"qty"`
	Water        string `json:"water"`
	BatchNumber  string `json:"batchNumber"`
	RemainingQty string `json:"remainingQty"`
	Areas        string `json:"areas"`

	TimeIn     string                     `json:"timeIn"`
	TimeOut    string                     `json:"timeOut"`
	Activities []models.ChecklistActivity `json:"activities"`

	BaitBrand      string `json:"baitBrand"`
	TotalStations  int    `json:"totalStations"`
	ActiveStations int    `json:"activeStations"`
	BaitUsed       string `json:"baitUsed"`

	Entries    []models.StationEntry `json:"entries"`
	CustomData map[string]any        `json:"customData"`
}

// RecordDetail is a record with its references resolved for display. Deleted
// projects and users render as a dash rather than failing the lookup.
type RecordDetail struct {
	models.Record
	ProjectName string `json:"projectName"`
	UserName    string `json:"userName"`
	FormName    string `json:"formName"`
}

// CreateRecord accepts a form submission. The submitting user always comes
// from the token, never from the payload. Attendance check-ins are verified
// against the project geofence before anything is stored.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	claims := middleware.Claims(c)
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !claimsAssignedTo(claims, req.ProjectKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not assigned to this project"})
		return
	}

	project, err := h.Store.GetProject(c.Request.Context(), req.ProjectKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up project"})
		return
	}

	rec := models.Record{
		FormType:        req.FormType,
		ProjectKey:      req.ProjectKey,
		UserKey:         claims.UserKey,
		Date:            req.Date,
		Time:            req.Time,
		Remarks:         req.Remarks,
		TechSignature:   req.TechSignature,
		ClientSignature: req.ClientSignature,
		Work:            req.Work,
		Chemical:        req.Chemical,
		Qty:             req.Qty,
		Water:           req.Water,
		BatchNumber:     req.BatchNumber,
		RemainingQty:    req.RemainingQty,
		Areas:           req.Areas,
		TimeIn:          req.TimeIn,
		TimeOut:         req.TimeOut,
		Activities:      req.Activities,
		BaitBrand:       req.BaitBrand,
		TotalStations:   req.TotalStations,
		ActiveStations:  req.ActiveStations,
		BaitUsed:        req.BaitUsed,
		Entries:         req.Entries,
		CustomData:      bson.M(req.CustomData),
	}

	if rec.FormType == "attendance" {
		if project.GPSEnabled && project.Lat != 0 && project.Lng != 0 && (req.Lat == 0 || req.Lng == 0) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Location is required for attendance at this project"})
			return
		}
		status, distance := geo.VerifyCheckIn(project.GPSEnabled, project.Lat, project.Lng, project.Radius, req.Lat, req.Lng)
		if status == geo.StatusFailed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":    "You are too far from the project site to check in",
				"distance": distance,
			})
			return
		}
		rec.Location = &models.RecordLocation{
			Lat:      req.Lat,
			Lng:      req.Lng,
			Distance: distance,
			Verified: status == geo.StatusVerified,
			Skipped:  status == geo.StatusSkipped,
		}
	}

	if !forms.IsBuiltin(rec.FormType) {
		form, err := h.Store.GetCustomForm(c.Request.Context(), rec.FormType)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up form"})
			return
		}
		if !form.Active {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This form is no longer active"})
			return
		}
		if rec.CustomData == nil {
			rec.CustomData = bson.M{}
		}
		if err := forms.ValidateSubmission(form, rec.CustomData); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	if err := forms.Sanitize(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.InsertRecord(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// dateFilter builds the date clause for a list query. A month filter wins
// over a from/to range; dates are YYYY-MM-DD so string comparison orders them.
func dateFilter(month, from, to string) bson.M {
	if month != "" {
		return bson.M{"$regex": "^" + month}
	}
	dates := bson.M{}
	if from != "" {
		dates["$gte"] = from
	}
	if to != "" {
		dates["$lte"] = to
	}
	if len(dates) == 0 {
		return nil
	}
	return dates
}

// GetRecords lists records visible to the caller, with optional project,
// month or from/to range, formType and user filters.
func (h *RecordHandler) GetRecords(c *gin.Context) {
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
	if dates := dateFilter(c.Query("month"), c.Query("from"), c.Query("to")); dates != nil {
		filter["date"] = dates
	}
	if formType := c.Query("formType"); formType != "" {
		filter["formType"] = formType
	}
	if user := c.Query("user"); user != "" {
		filter["userKey"] = user
	}

	records, err := h.Store.ListRecords(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetRecordByID returns one record with project, user and form names
// resolved for the report view.
func (h *RecordHandler) GetRecordByID(c *gin.Context) {
	claims := middleware.Claims(c)
	rec, err := h.Store.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
		return
	}
	if !claimsAssignedTo(claims, rec.ProjectKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this record"})
		return
	}

	detail := RecordDetail{Record: *rec, ProjectName: "-", UserName: "-"}
	if project, err := h.Store.GetProject(c.Request.Context(), rec.ProjectKey); err == nil {
		detail.ProjectName = project.Name
	}
	if user, err := h.Store.GetUser(c.Request.Context(), rec.UserKey); err == nil {
		detail.UserName = user.Name
	}
	detail.FormName = rec.FormType
	if name, ok := forms.BuiltinForms[rec.FormType]; ok {
		detail.FormName = name
	} else if form, err := h.Store.GetCustomForm(c.Request.Context(), rec.FormType); err == nil {
		detail.FormName = form.Name
	}

	c.JSON(http.StatusOK, detail)
}

func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	if err := h.Store.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
