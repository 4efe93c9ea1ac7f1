package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/porterhq/authgate"
)

// genericFaultMessage is what unclassified faults look like to clients.
// The underlying error stays in the server log only.
const genericFaultMessage = "something went wrong, please try again"

type registerRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register handles POST {basePath}/register.
func (a *Adapter) register(auth *authgate.Auth) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req registerRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		if req.Name == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "name is required",
			})
		}
		if req.Password == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "password is required",
			})
		}

		role, err := authgate.ParseRole(req.Role)
		if err != nil {
			return a.handleAuthError(c, err)
		}

		account, err := auth.Service.Register(c.Context(), authgate.RegisterInput{
			Name:     req.Name,
			Email:    emptyToNil(req.Email),
			Phone:    emptyToNil(req.Phone),
			Password: req.Password,
			Role:     role,
		})
		if err != nil {
			return a.handleAuthError(c, err)
		}

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"message": "account registered successfully",
			"account": account,
		})
	}
}

// login handles POST {basePath}/login.
func (a *Adapter) login(auth *authgate.Auth) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req loginRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		result, err := auth.Service.Login(c.Context(), req.Email, req.Password)
		if err != nil {
			return a.handleAuthError(c, err)
		}

		return c.Status(http.StatusOK).JSON(result)
	}
}

// me handles GET {basePath}/me, a protected endpoint echoing the identity
// the authenticator attached. The access gate has already rejected
// anonymous requests by the time this runs.
func (a *Adapter) me(c fiber.Ctx) error {
	identity, ok := IdentityFrom(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	return c.Status(http.StatusOK).JSON(identity)
}

// emptyToNil folds JSON empty strings into absent identifiers.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// handleAuthError maps core errors to HTTP responses. Unclassified faults
// are logged and collapsed into a generic message.
func (a *Adapter) handleAuthError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		a.log.Error("auth request failed", "path", c.Path(), "error", err)
		message = genericFaultMessage
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// mapErrorToStatus maps authgate error kinds to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, authgate.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, authgate.ErrMissingIdentifier),
		errors.Is(err, authgate.ErrDuplicateEmail),
		errors.Is(err, authgate.ErrDuplicatePhone),
		errors.Is(err, authgate.ErrInvalidRole):
		return http.StatusBadRequest

	default:
		// ErrCorruptCredential and anything unclassified are internal.
		return http.StatusInternalServerError
	}
}
