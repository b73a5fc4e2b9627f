package mongodb

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalCodec mapea decimal.Decimal a Decimal128 de BSON, para que los
// precios se persistan con precisión exacta. Equivale al registro del
// codec NUMERIC en el pool de Postgres, pero sobre el registry de bson.
type decimalCodec struct{}

func (decimalCodec) EncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != decimalType {
		return bsoncodec.ValueEncoderError{Name: "decimalCodec", Types: []reflect.Type{decimalType}, Received: val}
	}
	dec := val.Interface().(decimal.Decimal)
	d128, err := primitive.ParseDecimal128(dec.String())
	if err != nil {
		return fmt.Errorf("decimal a Decimal128: %w", err)
	}
	return vw.WriteDecimal128(d128)
}

func (decimalCodec) DecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != decimalType {
		return bsoncodec.ValueDecoderError{Name: "decimalCodec", Types: []reflect.Type{decimalType}, Received: val}
	}

	var dec decimal.Decimal
	switch vr.Type() {
	case bsontype.Decimal128:
		d128, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		dec, err = decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("Decimal128 a decimal: %w", err)
		}
	case bsontype.Double:
		f, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		dec = decimal.NewFromFloat(f)
	case bsontype.Int32:
		n, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		dec = decimal.NewFromInt32(n)
	case bsontype.Int64:
		n, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		dec = decimal.NewFromInt(n)
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		dec = decimal.Zero
	default:
		return fmt.Errorf("no se puede decodificar %v como decimal", vr.Type())
	}

	val.Set(reflect.ValueOf(dec))
	return nil
}

// newRegistry construye el registry por defecto de bson con el codec de
// decimales registrado.
func newRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(decimalType, decimalCodec{})
	reg.RegisterTypeDecoder(decimalType, decimalCodec{})
	return reg
}
