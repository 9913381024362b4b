package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entuser "github.com/iwantdrugsxd/mind-ease/internal/repo/user"
	pasetotoken "github.com/iwantdrugsxd/mind-ease/pkg/paseto"
)

// RequireRole allows the request through only when the authenticated
// user holds one of the given roles. Admins pass every check.
func RequireRole(db *repo.Client, roles ...entuser.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		u, err := db.User.Query().
			Where(entuser.ID(claims.UserID), entuser.DeletedAtIsNil()).
			Only(c.Context())
		if err != nil {
			return fiber.ErrUnauthorized
		}

		if u.Role == entuser.RoleAdmin {
			return c.Next()
		}
		for _, r := range roles {
			if u.Role == r {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}
