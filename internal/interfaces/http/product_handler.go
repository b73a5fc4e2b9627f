package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

// ProductHandler expone el catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "producto"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.BadRequest("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        name        query  string  false  "filtro por nombre"
// @Param        brand       query  string  false  "filtro por marca"
// @Param        color       query  string  false  "filtro por color"
// @Param        scale       query  string  false  "filtro por escala"
// @Param        minPrice    query  number  false  "precio mínimo"
// @Param        maxPrice    query  number  false  "precio máximo"
// @Param        outOfStock  query  bool    false  "solo agotados / solo disponibles"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetBySlug godoc
// @Summary      Obtener producto por slug
// @Tags         products
// @Produce      json
// @Param        slug  path      string  true  "slug de producto"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/products/slug/{slug} [get]
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// WithSpareParts godoc
// @Summary      Producto con sus repuestos compatibles
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/products/{id}/spare-parts [get]
func (h *ProductHandler) WithSpareParts(c *fiber.Ctx) error {
	out, err := h.uc.WithSpareParts(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// WithAccessories godoc
// @Summary      Producto con sus accesorios compatibles
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/products/{id}/accessories [get]
func (h *ProductHandler) WithAccessories(c *fiber.Ctx) error {
	out, err := h.uc.WithAccessories(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Complete godoc
// @Summary      Producto con repuestos y accesorios compatibles
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/products/{id}/complete [get]
func (h *ProductHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "id de producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.BadRequest("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("producto eliminado"))
}

func productFilterFromQuery(c *fiber.Ctx) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		Name:  c.Query("name"),
		Brand: c.Query("brand"),
		Color: c.Query("color"),
		Scale: c.Query("scale"),
	}
	min, err := decimalQuery(c, "minPrice")
	if err != nil {
		return filter, err
	}
	max, err := decimalQuery(c, "maxPrice")
	if err != nil {
		return filter, err
	}
	filter.MinPrice, filter.MaxPrice = min, max

	if raw := c.Query("outOfStock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, domain.BadRequest("parámetro outOfStock inválido: %s", raw)
		}
		filter.OutOfStock = &v
	}
	return filter, nil
}

func decimalQuery(c *fiber.Ctx, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.BadRequest("parámetro %s inválido: %s", name, raw)
	}
	return &v, nil
}
