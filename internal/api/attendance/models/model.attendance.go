package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance is one daily check-in. DayKey is "<employeeId>:<day>"; its
// unique index enforces one check-in per employee per day at storage level.
type Attendance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId" validate:"required" index:"single:1"`
	Day        string             `json:"day" bson:"day" index:"single:1"` // "2006-01-02", server local time
	DayKey     string             `json:"-" bson:"dayKey,omitempty" index:"unique,sparse"`

	CheckedInAt int64 `json:"checkedInAt" bson:"checkedInAt"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
