package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department is one node of the organizational hierarchy. Children are
// embedded recursively, so a root document carries its whole subtree.
type Department struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string `json:"name" bson:"name" validate:"required" index:"single:1"` // display label, free text ("1.1", Cyrillic names, codes)
	SequenceNumber string `json:"sequenceNumber,omitempty" bson:"sequenceNumber,omitempty"`

	// Ordered child departments, arbitrary depth. A node belongs to exactly
	// one parent; in-memory trees are read-only snapshots per request.
	Children []Department `json:"children,omitempty" bson:"children,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
