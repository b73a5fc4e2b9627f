package mongodb

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/modelcar-catalog/internal/domain"
)

// wrapWriteErr traduce un duplicate key del índice único (carrera que
// pasó el pre-chequeo del caso de uso) a Conflict; el resto de errores
// del driver se propaga sin etiqueta (el traductor HTTP los vuelve 500).
func wrapWriteErr(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.Conflict("%s", conflictMsg)
	}
	return err
}

// parseID valida el formato hex de 24 caracteres de un ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.BadRequest("id inválido: %s", id)
	}
	return oid, nil
}

// priceQuery arma el rango $gte/$lte de precio; nil cuando no hay cotas.
// Los decimales pasan por el codec registrado y comparan como Decimal128.
func priceQuery(min, max *decimal.Decimal) bson.M {
	if min == nil && max == nil {
		return nil
	}
	q := bson.M{}
	if min != nil {
		q["$gte"] = *min
	}
	if max != nil {
		q["$lte"] = *max
	}
	return q
}
