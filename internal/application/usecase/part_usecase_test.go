package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

type partFixture struct {
	uc       *usecase.PartUseCase
	parts    *fakePartRepo
	products *fakeProductRepo
	brands   *fakeBrandRepo
}

func newPartFixture(brandNames ...string) *partFixture {
	f := &partFixture{
		parts:    newFakePartRepo(),
		products: newFakeProductRepo(),
		brands:   newFakeBrandRepo(brandNames...),
	}
	f.uc = usecase.NewPartUseCase("accesorio", f.parts, f.products, f.brands)
	return f
}

func (f *partFixture) seedProduct(t *testing.T) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        primitive.NewObjectID(),
		Name:      "Acme Racer GT",
		Brand:     "Acme",
		Slug:      "acme-racer-gt",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func validPartRequest() dto.CreatePartRequest {
	return dto.CreatePartRequest{
		Name:        "Spoiler Trasero",
		SKU:         "SPL-001",
		Price:       decimal.NewFromFloat(9.90),
		Stock:       5,
		Categories:  []string{"carrocería"},
		Brand:       "Acme",
		Description: "Spoiler trasero a escala",
	}
}

func TestPartCreate_DerivaSlugYOutOfStock(t *testing.T) {
	f := newPartFixture("Acme")

	out, err := f.uc.Create(context.Background(), validPartRequest())
	require.NoError(t, err)
	assert.Equal(t, "spoiler-trasero", out.Slug)
	assert.False(t, out.OutOfStock, "con stock 5 no está agotado")
}

func TestPartCreate_StockCeroMarcaAgotado(t *testing.T) {
	f := newPartFixture("Acme")
	in := validPartRequest()
	in.Stock = 0

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.OutOfStock, "stock 0 debe derivar outOfStock=true")
}

func TestPartCreate_SKUDuplicado(t *testing.T) {
	f := newPartFixture("Acme")
	_, err := f.uc.Create(context.Background(), validPartRequest())
	require.NoError(t, err)

	in := validPartRequest()
	in.Name = "Spoiler Delantero" // slug distinto, mismo SKU
	_, err = f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	assert.Len(t, f.parts.parts, 1)
}

func TestPartCreate_CategoriasVacias(t *testing.T) {
	f := newPartFixture("Acme")
	in := validPartRequest()
	in.Categories = nil

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestPartCreate_IdCompatibleMalformado(t *testing.T) {
	f := newPartFixture("Acme")
	in := validPartRequest()
	in.CompatibleProductIds = []string{"no-es-un-objectid"}

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	assert.Contains(t, err.Error(), "id de producto inválido")
}

func TestPartCreate_ProductoCompatibleInexistente(t *testing.T) {
	f := newPartFixture("Acme")
	in := validPartRequest()
	in.CompatibleProductIds = []string{primitive.NewObjectID().Hex()}

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	assert.Empty(t, f.parts.parts, "nada debe persistirse si una referencia falla")
}

func TestPartCreate_ProductosCompatiblesValidos(t *testing.T) {
	f := newPartFixture("Acme")
	product := f.seedProduct(t)

	in := validPartRequest()
	in.CompatibleProductIds = []string{product.ID.Hex()}

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{product.ID.Hex()}, out.CompatibleProductIds)
}

func TestPartCreate_DimensionesInvalidas(t *testing.T) {
	f := newPartFixture("Acme")
	in := validPartRequest()
	in.Dimensions = &entity.Dimensions{Length: 10, Width: 5, Height: 2, Unit: "yardas"}

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestPartUpdate_StockRecalculaOutOfStock(t *testing.T) {
	f := newPartFixture("Acme")
	created, err := f.uc.Create(context.Background(), validPartRequest())
	require.NoError(t, err)
	require.False(t, created.OutOfStock)

	zero := 0
	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{Stock: &zero})
	require.NoError(t, err)
	assert.True(t, out.OutOfStock, "bajar el stock a 0 debe marcar agotado")

	five := 5
	out, err = f.uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{Stock: &five})
	require.NoError(t, err)
	assert.False(t, out.OutOfStock, "reponer stock debe desmarcar agotado")
}

// Un update con strings vacíos explícitos no debe vaciar campos
// requeridos: la escritura completa se rechaza y el documento queda intacto.
func TestPartUpdate_NoVaciaCamposRequeridos(t *testing.T) {
	f := newPartFixture("Acme")
	created, err := f.uc.Create(context.Background(), validPartRequest())
	require.NoError(t, err)

	empty := ""
	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{
		Name: &empty,
		Slug: &empty,
		SKU:  &empty,
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))

	stored := f.parts.parts[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "Spoiler Trasero", stored.Name)
	assert.Equal(t, "spoiler-trasero", stored.Slug)
	assert.Equal(t, "SPL-001", stored.SKU)

	blank := "   "
	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{Description: &blank})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestPartUpdate_StockNegativo(t *testing.T) {
	f := newPartFixture("Acme")
	created, err := f.uc.Create(context.Background(), validPartRequest())
	require.NoError(t, err)

	neg := -1
	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{Stock: &neg})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestPartUpdate_ReemplazaCompatiblesValidando(t *testing.T) {
	f := newPartFixture("Acme")
	product := f.seedProduct(t)
	created, err := f.uc.Create(context.Background(), validPartRequest())
	require.NoError(t, err)

	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{
		CompatibleProductIds: []string{product.ID.Hex()},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{product.ID.Hex()}, out.CompatibleProductIds)

	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{
		CompatibleProductIds: []string{primitive.NewObjectID().Hex()},
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestPartForProduct_ProductoInexistente(t *testing.T) {
	f := newPartFixture("Acme")

	_, err := f.uc.ForProduct(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestPartForProduct_DevuelveCompatibles(t *testing.T) {
	f := newPartFixture("Acme")
	product := f.seedProduct(t)

	in := validPartRequest()
	in.CompatibleProductIds = []string{product.ID.Hex()}
	_, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	otro := validPartRequest()
	otro.Name = "Retrovisor"
	otro.SKU = "RTV-001"
	_, err = f.uc.Create(context.Background(), otro)
	require.NoError(t, err)

	out, err := f.uc.ForProduct(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Spoiler Trasero", out[0].Name)
}

// Los mensajes de error deben nombrar la colección concreta.
func TestPartLabel_EnMensajesDeError(t *testing.T) {
	brands := newFakeBrandRepo("Acme")
	products := newFakeProductRepo()
	repuestos := usecase.NewPartUseCase("repuesto", newFakePartRepo(), products, brands)

	_, err := repuestos.GetByID(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repuesto")
}
