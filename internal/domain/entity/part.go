package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Part representa un accesorio o un repuesto: ambos comparten estructura
// y reglas, solo cambia la colección donde se persisten. Slug y SKU son
// únicos por colección; OutOfStock es derivado (stock <= 0) y se
// recalcula en cada escritura que toque Stock. CompatibleProductIds
// referencia productos existentes, validados al momento de escribir.
type Part struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name                 string               `bson:"name" json:"name"`
	Slug                 string               `bson:"slug" json:"slug"` // único (índice)
	SKU                  string               `bson:"sku" json:"sku"`   // único (índice)
	Price                decimal.Decimal      `bson:"price" json:"price"`
	Stock                int                  `bson:"stock" json:"stock"`
	OutOfStock           bool                 `bson:"outOfStock" json:"outOfStock"`
	Categories           []string             `bson:"categories" json:"categories"`
	CompatibleProductIds []primitive.ObjectID `bson:"compatibleProductIds" json:"compatibleProductIds"`
	Brand                string               `bson:"brand" json:"brand"`
	Description          string               `bson:"description" json:"description"`
	Media                []Media              `bson:"media,omitempty" json:"media,omitempty"`
	Weight               float64              `bson:"weight" json:"weight"`
	Dimensions           *Dimensions          `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// RecomputeOutOfStock recalcula el flag derivado a partir del stock actual.
func (p *Part) RecomputeOutOfStock() {
	p.OutOfStock = p.Stock <= 0
}
