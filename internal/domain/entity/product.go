package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un vehículo a escala del catálogo. Brand es una
// referencia por nombre a Brand.Name; Slug es único y se deriva del
// nombre cuando no se especifica. Price se persiste como Decimal128
// (codec registrado en el cliente de Mongo).
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Brand          string             `bson:"brand" json:"brand"`
	Color          string             `bson:"color" json:"color"`
	ModelCode      string             `bson:"modelCode" json:"modelCode"`
	Scale          string             `bson:"scale" json:"scale"` // ej. "1:18"
	OutOfStock     bool               `bson:"outOfStock" json:"outOfStock"`
	Price          decimal.Decimal    `bson:"price" json:"price"`
	Slug           string             `bson:"slug" json:"slug"` // único (índice)
	Media          []Media            `bson:"media,omitempty" json:"media,omitempty"`
	SocialLinks    *SocialLinks       `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	TechnicalSpecs []string           `bson:"technicalSpecs,omitempty" json:"technicalSpecs,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
