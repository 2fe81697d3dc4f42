package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Keyword tones.
const (
	KeywordTonePositive = "positive"
	KeywordToneNegative = "negative"
)

// Keyword is one comment-classification phrase.
type Keyword struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Phrase string `json:"phrase" bson:"phrase" validate:"required" index:"single:1"`
	Tone   string `json:"tone" bson:"tone" validate:"required,oneof=positive negative"`
	Note   string `json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
