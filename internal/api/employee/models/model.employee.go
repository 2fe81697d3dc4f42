package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/batkt/sudalgaaQRBackend/internal/hierarchy"
)

// Employee is one imported or manually created staff member. Register is the
// national id; its unique index is sparse so rows without one still insert
// (empty strings are stripped before insert).
type Employee struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Surname  string `json:"surname,omitempty" bson:"surname,omitempty"`
	Name     string `json:"name" bson:"name" validate:"required" index:"single:1"`
	Register string `json:"register,omitempty" bson:"register,omitempty" validate:"omitempty,register_number" index:"unique,sparse"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Nickname string `json:"nickname,omitempty" bson:"nickname,omitempty"`
	PhotoID  string `json:"photoId,omitempty" bson:"photoId,omitempty"`

	LoginName   string `json:"loginName,omitempty" bson:"loginName,omitempty" index:"unique,sparse"`
	Password    string `json:"-" bson:"password,omitempty"`
	AccessLevel string `json:"accessLevel,omitempty" bson:"accessLevel,omitempty"`

	// Root-to-deepest resolved department path; empty when resolution failed
	// at import time.
	DepartmentAssignments []hierarchy.Assignment `json:"departmentAssignments" bson:"departmentAssignments"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DepartmentPath joins the assignment names for display.
func (e *Employee) DepartmentPath() string {
	if len(e.DepartmentAssignments) == 0 {
		return ""
	}
	path := e.DepartmentAssignments[0].DepartmentName
	for _, a := range e.DepartmentAssignments[1:] {
		path += " / " + a.DepartmentName
	}
	return path
}
