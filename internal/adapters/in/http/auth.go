package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const requesterKey = "requester"

// Claims are the JWT claims issued to customers and shop owners.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

// Authenticator issues and verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator creates an Authenticator. secret must not be empty and
// tokens live for ttl.
func NewAuthenticator(secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// IssueToken signs a token for r that expires after the configured TTL.
func (a *Authenticator) IssueToken(r kernel.Requester) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   r.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
		UserID:   r.UserID.String(),
		UserType: r.Role.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses token and resolves the requester it names. exp is mandatory.
func (a *Authenticator) Verify(token string) (kernel.Requester, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return kernel.Requester{}, fmt.Errorf("token validation failed: %w", err)
	}
	if !parsed.Valid {
		return kernel.Requester{}, errors.New("invalid token")
	}

	userID, err := kernel.ParseID("user_id", claims.UserID)
	if err != nil {
		return kernel.Requester{}, err
	}
	role, err := kernel.RoleFromString(claims.UserType)
	if err != nil {
		return kernel.Requester{}, err
	}
	return kernel.NewRequester(userID, role)
}

// publicRoutes are reachable without a token.
var publicRoutes = map[string][]string{
	http.MethodGet: {"/health", "/api/v1/shops"},
}

func isPublic(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	for _, p := range publicRoutes[method] {
		if path == p {
			return true
		}
	}
	return false
}

// Middleware resolves the bearer token into a requester stored on the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if isPublic(req.Method, req.URL.Path) {
				return next(c)
			}

			header := req.Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing Authorization header")
			}
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "expected 'Bearer <token>'")
			}

			requester, err := a.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
			}
			c.Set(requesterKey, requester)
			return next(c)
		}
	}
}

// requesterFrom returns the requester set by Middleware.
func requesterFrom(c echo.Context) (kernel.Requester, error) {
	r, ok := c.Get(requesterKey).(kernel.Requester)
	if !ok {
		return kernel.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return r, nil
}
