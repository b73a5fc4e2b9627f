package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

// PartHandler expone el CRUD de accesorios o repuestos; se instancia
// una vez por colección con su caso de uso correspondiente.
type PartHandler struct {
	uc *usecase.PartUseCase
}

func NewPartHandler(uc *usecase.PartUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Crear accesorio o repuesto
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "pieza"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/accessories [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
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
// @Summary      Listar accesorios o repuestos
// @Tags         parts
// @Produce      json
// @Param        brand           query  string  false  "filtro por marca"
// @Param        category        query  string  false  "filtro por categoría"
// @Param        compatibleWith  query  string  false  "id de producto compatible"
// @Param        minPrice        query  number  false  "precio mínimo"
// @Param        maxPrice        query  number  false  "precio máximo"
// @Param        inStock         query  bool    false  "solo con stock"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/accessories [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	filter, err := partFilterFromQuery(c)
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
// @Summary      Obtener pieza por id
// @Tags         parts
// @Produce      json
// @Param        id   path      string  true  "id de la pieza"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/accessories/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetBySlug godoc
// @Summary      Obtener pieza por slug
// @Tags         parts
// @Produce      json
// @Param        slug  path      string  true  "slug de la pieza"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/accessories/slug/{slug} [get]
func (h *PartHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ForProduct godoc
// @Summary      Piezas compatibles con un producto
// @Tags         parts
// @Produce      json
// @Param        productId  path  string  true  "id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/accessories/product/{productId} [get]
func (h *PartHandler) ForProduct(c *fiber.Ctx) error {
	out, err := h.uc.ForProduct(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// Update godoc
// @Summary      Actualizar pieza
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de la pieza"
// @Param        body  body  dto.UpdatePartRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/accessories/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
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
// @Summary      Eliminar pieza
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id de la pieza"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/accessories/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("pieza eliminada"))
}

func partFilterFromQuery(c *fiber.Ctx) (repository.PartFilter, error) {
	filter := repository.PartFilter{
		Brand:          c.Query("brand"),
		Category:       c.Query("category"),
		CompatibleWith: c.Query("compatibleWith"),
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

	if raw := c.Query("inStock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, domain.BadRequest("parámetro inStock inválido: %s", raw)
		}
		filter.InStock = &v
	}
	return filter, nil
}
