// Package authgate is a stateless authentication core: it registers
// accounts, verifies credentials, issues signed bearer tokens and turns
// those tokens back into request identities. Storage and HTTP transport
// plug in through adapters.
package authgate

import (
	"fmt"
	"time"

	"github.com/porterhq/authgate/core"
	"github.com/porterhq/authgate/pkg/crypto"
	"github.com/porterhq/authgate/pkg/token"
	"github.com/porterhq/authgate/services"
)

// interfaces
type (
	AccountStorage  = core.AccountStorage
	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Account   = core.Account
	Role      = core.Role
	Identity  = core.Identity
	RouteRule = core.RouteRule
	Access    = core.Access

	RegisterInput = services.RegisterInput
	LoginResult   = services.LoginResult
	TokenClaims   = token.Claims

	Argon2 = crypto.Argon2
	Bcrypt = crypto.Bcrypt
)

const (
	RoleCustomer = core.RoleCustomer
	RoleDriver   = core.RoleDriver

	AccessPublic    = core.AccessPublic
	AccessProtected = core.AccessProtected
)

const (
	defaultBasePath = "/api/auth"
	defaultTokenTTL = time.Hour
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2 = crypto.NewArgon2
	NewBcrypt = crypto.NewBcrypt
	ParseRole = core.ParseRole
)

var (
	ErrMissingIdentifier  = core.ErrMissingIdentifier
	ErrDuplicateEmail     = core.ErrDuplicateEmail
	ErrDuplicatePhone     = core.ErrDuplicatePhone
	ErrInvalidRole        = core.ErrInvalidRole
	ErrInvalidCredentials = core.ErrInvalidCredentials
)

var (
	ErrAccountNotFound   = core.ErrAccountNotFound
	ErrCorruptCredential = core.ErrCorruptCredential
	ErrInvalidToken      = token.ErrInvalidToken
)

var (
	ErrStoreRequired       = core.ErrStoreRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
	ErrSecretRequired      = core.ErrSecretRequired
	ErrSecretTooShort      = core.ErrSecretTooShort
)

// HTTPAdapter wires authentication routes and middleware into a concrete
// HTTP framework.
type HTTPAdapter interface {
	RegisterRoutes(auth *Auth) error
}

// Config assembles an Auth instance.
type Config struct {
	// Secret is the pre-decoded HMAC signing key, at least 32 bytes.
	Secret []byte

	Store core.AccountStorage

	HTTP HTTPAdapter

	// Optional config
	TokenTTL       time.Duration
	PasswordHasher crypto.PasswordHandler
	BasePath       string
	// Routes extends the access table; the register and login endpoints
	// under BasePath are always public.
	Routes []core.RouteRule
}

// Auth is the assembled authentication core.
type Auth struct {
	Service        *services.AuthService
	Codec          *token.Codec
	PasswordHasher crypto.PasswordHandler
	Routes         *core.RouteTable
	BasePath       string
}

// New validates config, applies defaults and hands the assembled core to
// the HTTP adapter for route registration.
func New(config Config) (*Auth, error) {
	if len(config.Secret) == 0 {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < token.MinKeyLength {
		return nil, fmt.Errorf("%w - minimum of %d bytes", ErrSecretTooShort, token.MinKeyLength)
	}
	if config.Store == nil {
		return nil, ErrStoreRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	ttl := config.TokenTTL
	if ttl == 0 {
		ttl = defaultTokenTTL
	}

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	codec, err := token.NewCodec(config.Secret, ttl)
	if err != nil {
		return nil, err
	}

	rules := []core.RouteRule{
		{Pattern: basePath + "/register", Access: core.AccessPublic},
		{Pattern: basePath + "/login", Access: core.AccessPublic},
	}
	rules = append(rules, config.Routes...)
	routes, err := core.NewRouteTable(rules)
	if err != nil {
		return nil, err
	}

	auth := &Auth{
		Service:        services.NewAuthService(config.Store, passwordHasher, codec),
		Codec:          codec,
		PasswordHasher: passwordHasher,
		Routes:         routes,
		BasePath:       basePath,
	}

	if err := config.HTTP.RegisterRoutes(auth); err != nil {
		return nil, err
	}

	return auth, nil
}
