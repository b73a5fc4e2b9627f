package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand representa una marca de vehículos a escala. Los productos,
// accesorios y repuestos la referencian por Name (no por ID), validando
// la existencia solo al momento de escribir.
type Brand struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"` // único (índice), sin espacios alrededor
	Logo      string             `bson:"logo" json:"logo"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
