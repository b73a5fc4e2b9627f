package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación del puerto PartRepository sobre MongoDB. El
// mismo adaptador sirve a accesorios y repuestos: solo cambia la
// colección con la que se construye.
type PartRepo struct {
	coll  *mongo.Collection
	label string
}

// NewAccessoryRepository construye el adaptador sobre la colección de accesorios.
func NewAccessoryRepository(db *mongo.Database) *PartRepo {
	return &PartRepo{coll: db.Collection(accessoriesCollection), label: "accesorio"}
}

// NewSparePartRepository construye el adaptador sobre la colección de repuestos.
func NewSparePartRepository(db *mongo.Database) *PartRepo {
	return &PartRepo{coll: db.Collection(sparePartsCollection), label: "repuesto"}
}

// Create persiste un nuevo accesorio/repuesto.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	_, err := r.coll.InsertOne(ctx, part)
	if err != nil {
		return wrapWriteErr(err, fmt.Sprintf("ya existe un %s con ese slug o sku", r.label))
	}
	return nil
}

// GetByID obtiene por ID; (nil, nil) si no existe.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetBySlug obtiene por slug; (nil, nil) si no existe.
func (r *PartRepo) GetBySlug(ctx context.Context, slug string) (*entity.Part, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// GetBySKU obtiene por sku; (nil, nil) si no existe.
func (r *PartRepo) GetBySKU(ctx context.Context, sku string) (*entity.Part, error) {
	return r.findOne(ctx, bson.M{"sku": sku})
}

// List devuelve los documentos que pasan el filtro, más recientes primero.
func (r *PartRepo) List(ctx context.Context, filter repository.PartFilter) ([]*entity.Part, error) {
	query := bson.M{}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.Category != "" {
		query["categories"] = bson.M{"$in": []string{filter.Category}}
	}
	if filter.CompatibleWith != "" {
		oid, err := parseID(filter.CompatibleWith)
		if err != nil {
			return nil, err
		}
		query["compatibleProductIds"] = oid
	}
	if filter.InStock != nil {
		query["outOfStock"] = !*filter.InStock
	}
	if priceRange := priceQuery(filter.MinPrice, filter.MaxPrice); priceRange != nil {
		query["price"] = priceRange
	}
	return r.find(ctx, query)
}

// ListByCompatibleProduct devuelve los documentos cuya lista de
// compatibilidad contiene el producto.
func (r *PartRepo) ListByCompatibleProduct(ctx context.Context, productID string) ([]*entity.Part, error) {
	oid, err := parseID(productID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"compatibleProductIds": oid})
}

// Update reemplaza el documento completo (el merge ocurre en el caso de uso).
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": part.ID}, part)
	if err != nil {
		return wrapWriteErr(err, fmt.Sprintf("ya existe un %s con ese slug o sku", r.label))
	}
	return nil
}

// Delete elimina por ID.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("eliminar %s: %w", r.label, err)
	}
	return nil
}

// PullCompatibleProduct retira el id del producto de todos los
// documentos que lo referencien ($pull masivo, un UpdateMany atómico
// por colección).
func (r *PartRepo) PullCompatibleProduct(ctx context.Context, productID string) error {
	oid, err := parseID(productID)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateMany(ctx,
		bson.M{"compatibleProductIds": oid},
		bson.M{"$pull": bson.M{"compatibleProductIds": oid}},
	)
	if err != nil {
		return fmt.Errorf("retirar producto de %ss compatibles: %w", r.label, err)
	}
	return nil
}

func (r *PartRepo) findOne(ctx context.Context, query bson.M) (*entity.Part, error) {
	var p entity.Part
	if err := r.coll.FindOne(ctx, query).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar %s: %w", r.label, err)
	}
	return &p, nil
}

func (r *PartRepo) find(ctx context.Context, query bson.M) ([]*entity.Part, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("listar %ss: %w", r.label, err)
	}
	defer cursor.Close(ctx)

	parts := []*entity.Part{}
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, fmt.Errorf("decodificar %ss: %w", r.label, err)
	}
	return parts, nil
}
