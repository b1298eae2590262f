// server/internal/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleClient = "client"
)

// User is an operator account. Staff carry a list of project keys they are
// assigned to; clients are bound to exactly one project.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmpID     string             `bson:"empId" json:"empId"` // e.g. "EMP012"
	Name      string             `bson:"name" json:"name"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"` // admin, staff, client
	Projects  []string           `bson:"projects" json:"projects"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"` // epoch millis
	UpdatedAt int64              `bson:"updatedAt" json:"updatedAt"`
}

// AssignedTo reports whether the user may see data for the given project key.
// Admins see everything.
func (u *User) AssignedTo(projectKey string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, key := range u.Projects {
		if key == projectKey {
			return true
		}
	}
	return false
}
