package fiber

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/porterhq/authgate"
)

// identityKey is the Locals key the authenticator stores the request
// identity under. Request-scoped, never process-wide.
const identityKey = "authgate_identity"

// IdentityFrom returns the authenticated identity attached to the request,
// if any.
func IdentityFrom(c fiber.Ctx) (authgate.Identity, bool) {
	identity, ok := c.Locals(identityKey).(authgate.Identity)
	return identity, ok
}

// Authenticate extracts a bearer token from the Authorization header and
// attaches the verified identity to the request. A missing, malformed,
// forged or expired token lets the request proceed as anonymous; rejecting
// it is the access gate's job, and the response never says why a token
// failed.
func (a *Adapter) Authenticate(auth *authgate.Auth) fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" {
			return c.Next()
		}

		claims, err := auth.Codec.Verify(tokenString)
		if err != nil {
			// anonymous fallback, not a crash
			return c.Next()
		}

		role, err := authgate.ParseRole(claims.Role)
		if err != nil {
			// a validly signed token never carries an unknown role;
			// treat it as no token at all
			return c.Next()
		}

		c.Locals(identityKey, authgate.Identity{
			AccountID: claims.Subject,
			Role:      role,
		})
		return c.Next()
	}
}

// AccessGate denies requests to protected paths that carry no identity.
// Public paths pass through untouched.
func (a *Adapter) AccessGate(auth *authgate.Auth) fiber.Handler {
	return func(c fiber.Ctx) error {
		if auth.Routes.Lookup(c.Path()) == authgate.AccessPublic {
			return c.Next()
		}

		if _, ok := IdentityFrom(c); !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		return c.Next()
	}
}

// bearerToken strips the "Bearer " scheme prefix from an Authorization
// header value. Returns "" when the header is absent or not bearer-shaped.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return header[len(prefix):]
}
