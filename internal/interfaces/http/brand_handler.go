package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
)

// BrandHandler expone el CRUD de marcas.
type BrandHandler struct {
	uc *usecase.BrandUseCase
}

func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// Create godoc
// @Summary      Crear marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "name, logo"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
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
// @Summary      Listar marcas
// @Tags         brands
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener marca por id
// @Tags         brands
// @Produce      json
// @Param        id   path      string  true  "id de marca"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/brands/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "id de marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/brands/{id} [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
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
// @Summary      Eliminar marca
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id de marca"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/brands/{id} [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("marca eliminada"))
}
