package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/modelcar-catalog/internal/application/auth"
	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
)

// UserHandler expone la administración de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.APIResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener usuario por id
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id de usuario"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := auth.Authorize(GetRole(c), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := auth.Authorize(GetRole(c), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.BadRequest("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdatePassword godoc
// @Summary      Cambiar contraseña
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "id de usuario"
// @Param        body  body  dto.UpdatePasswordRequest  true  "contraseña actual y nueva"
// @Success      200   {object}  dto.APIResponse
// @Failure      401   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/users/{id}/password [put]
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	id := c.Params("id")
	// El cambio de contraseña exige la contraseña actual, así que solo
	// el propio usuario puede hacerlo, nunca un admin en su nombre.
	if GetUserID(c) != id {
		return respondError(c, domain.Forbidden("solo el propio usuario puede cambiar su contraseña"))
	}
	var in dto.UpdatePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.BadRequest("cuerpo inválido"))
	}
	if err := h.uc.UpdatePassword(c.Context(), id, in.CurrentPassword, in.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("contraseña actualizada"))
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id de usuario"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("usuario eliminado"))
}
