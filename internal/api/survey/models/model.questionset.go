package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question kinds.
const (
	QuestionKindRating = "rating"
	QuestionKindChoice = "choice"
	QuestionKindText   = "text"
)

// Question is one embedded survey question.
type Question struct {
	Text    string   `json:"text" bson:"text" validate:"required"`
	Kind    string   `json:"kind" bson:"kind" validate:"required,oneof=rating choice text"`
	Choices []string `json:"choices,omitempty" bson:"choices,omitempty"`
}

// QuestionSet is one named survey. At most one set is active at a time; the
// activate operation deactivates the rest.
type QuestionSet struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name      string     `json:"name" bson:"name" validate:"required" index:"single:1"`
	Active    bool       `json:"active" bson:"active"`
	Questions []Question `json:"questions" bson:"questions" validate:"required,min=1,dive"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
