package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja userID y role en
// c.Locals. La identidad autenticada pasa como parámetro explícito a
// los handlers vía GetUserID/GetRole, nunca como estado global.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, domain.Unauthorized("autenticación requerida"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, domain.Unauthorized("formato esperado: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, domain.Unauthorized("autenticación requerida"))
		}

		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, domain.Unauthorized("token inválido o expirado"))
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse después
// de AuthMiddleware. Token sin rol responde 401; rol insuficiente 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respondError(c, domain.Unauthorized("token sin rol"))
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return respondError(c, domain.Forbidden("no autorizado para acceder a este recurso"))
	}
}

// GetUserID devuelve el userID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
