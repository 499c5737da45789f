package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"person-api/internal/auth"
	"person-api/internal/domain/dtos"
)

// UsernameKey is the fiber locals key holding the authenticated username.
const UsernameKey = "username"

// BasicAuth guards the routes behind it with HTTP basic authentication checked
// against provider. Rejected requests get a JSON 401 with a WWW-Authenticate challenge.
func BasicAuth(provider auth.CredentialProvider, realm string) fiber.Handler {
	challenge := `Basic realm="` + realm + `"`

	return basicauth.New(basicauth.Config{
		Realm: realm,
		Authorizer: func(username, password string) bool {
			_, ok := provider.Authenticate(username, password)
			return ok
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, challenge)
			return c.Status(fiber.StatusUnauthorized).JSON(dtos.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Full authentication is required to access this resource",
			})
		},
		ContextUsername: UsernameKey,
	})
}
