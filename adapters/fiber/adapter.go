// Package fiber adapts the authentication core to gofiber/fiber v3.
package fiber

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/porterhq/authgate"
)

type Adapter struct {
	app *fiber.App
	log *slog.Logger
}

var _ authgate.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app, log: slog.Default()}
}

// NewWithLogger is New with an explicit logger for internal faults.
func NewWithLogger(app *fiber.App, log *slog.Logger) *Adapter {
	return &Adapter{app: app, log: log}
}

// RegisterRoutes installs the authenticator middleware, the access-table
// gate, and the authentication endpoints.
//
// The authenticator only ever populates-or-not; rejection of protected
// paths happens in the access gate that runs after it.
func (a *Adapter) RegisterRoutes(auth *authgate.Auth) error {
	a.app.Use(a.Authenticate(auth))
	a.app.Use(a.AccessGate(auth))

	api := a.app.Group(auth.BasePath)
	api.Post("/register", a.register(auth))
	api.Post("/login", a.login(auth))
	api.Get("/me", a.me)

	return nil
}
