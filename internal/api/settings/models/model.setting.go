package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is the single operational configuration document: alert routing
// and the scoring/classification knobs admins tune at runtime.
type Setting struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SMSKey      string   `json:"smsKey,omitempty" bson:"smsKey,omitempty"`
	SMSSender   string   `json:"smsSender,omitempty" bson:"smsSender,omitempty"`
	AlertPhones []string `json:"alertPhones,omitempty" bson:"alertPhones,omitempty"`
	AlertEmails []string `json:"alertEmails,omitempty" bson:"alertEmails,omitempty"`

	// Score at or below which a response counts as negative, and at or
	// above which it counts as positive.
	NegativeThreshold float64 `json:"negativeThreshold" bson:"negativeThreshold"`
	PositiveThreshold float64 `json:"positiveThreshold" bson:"positiveThreshold"`

	// Broad fallback for department-column detection during import.
	BroadColumnFallback bool `json:"broadColumnFallback" bson:"broadColumnFallback"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
