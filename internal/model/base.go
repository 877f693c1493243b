package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// swagger:model
type BaseDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"CreatedAt" json:"CreatedAt"`
	UpdatedAt time.Time          `bson:"UpdatedAt" json:"UpdatedAt"`
}

// Touch stamps UpdatedAt, and CreatedAt on first save.
func (b *BaseDocument) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// CEFR levels shared by content and both points schemes.
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
	LevelC1 = "C1"
	LevelC2 = "C2"
)

func (b *BaseDocument) DocumentID() primitive.ObjectID {
	return b.ID
}

func (b *BaseDocument) SetDocumentID(id primitive.ObjectID) {
	b.ID = id
}

func (b *BaseDocument) Created() time.Time {
	return b.CreatedAt
}

func (b *BaseDocument) SetCreated(t time.Time) {
	b.CreatedAt = t
}
