package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/batkt/sudalgaaQRBackend/internal/hierarchy"
)

// Response kinds.
const (
	ResponseKindFeedback = "feedback"
	ResponseKindRating   = "rating"
)

// Answer is one answered question, positionally tied to the question set.
type Answer struct {
	QuestionIndex int     `json:"questionIndex" bson:"questionIndex"`
	Score         float64 `json:"score,omitempty" bson:"score,omitempty"`
	Choice        string  `json:"choice,omitempty" bson:"choice,omitempty"`
	Text          string  `json:"text,omitempty" bson:"text,omitempty"`
}

// EmployeeSnapshot pins the rated employee's identity and department path at
// submission time, so reports stay stable across re-imports.
type EmployeeSnapshot struct {
	EmployeeID            primitive.ObjectID     `json:"employeeId" bson:"employeeId"`
	Name                  string                 `json:"name" bson:"name"`
	DepartmentAssignments []hierarchy.Assignment `json:"departmentAssignments,omitempty" bson:"departmentAssignments,omitempty"`
}

// Response is one submitted feedback or rating.
type Response struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Kind          string             `json:"kind" bson:"kind" index:"single:1"`
	QuestionSetID primitive.ObjectID `json:"questionSetId" bson:"questionSetId" index:"single:1"`
	Employee      EmployeeSnapshot   `json:"employee" bson:"employee"`

	Answers []Answer `json:"answers" bson:"answers"`
	Comment string   `json:"comment,omitempty" bson:"comment,omitempty"`

	Score          float64 `json:"score" bson:"score"`
	Negative       bool    `json:"negative" bson:"negative"`
	SubmitterPhone string  `json:"submitterPhone,omitempty" bson:"submitterPhone,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
