package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nyumbani/homemanager/pkg/config"
	"github.com/nyumbani/homemanager/pkg/identity"
)

// Claims is the token payload issued at login.
type Claims struct {
	Email          string `json:"email"`
	OrganizationID *uint  `json:"org_id,omitempty"`
	IsSuperuser    bool   `json:"superuser,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuthenticator is middleware that validates bearer tokens and puts
// the resolved identity on the request context.
type JWTAuthenticator struct {
	cfg *config.Config
}

// NewJWTAuthenticator creates a new JWT authenticator middleware
func NewJWTAuthenticator(cfg *config.Config) *JWTAuthenticator {
	return &JWTAuthenticator{cfg: cfg}
}

// IssueToken signs a bearer token for the given user.
func IssueToken(cfg *config.Config, userID uint, email string, orgID *uint, superuser bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:          email,
		OrganizationID: orgID,
		IsSuperuser:    superuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenLifetime())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken validates a bearer token and returns its claims.
func ParseToken(cfg *config.Config, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		claims, err := ParseToken(j.cfg, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid authorization token"))
			return
		}

		var userID uint
		if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid authorization token"))
			return
		}

		id := &identity.Identity{
			UserID:         userID,
			Email:          claims.Email,
			OrganizationID: claims.OrganizationID,
			IsSuperuser:    claims.IsSuperuser,
		}
		if claims.IssuedAt != nil {
			id.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			id.ExpiresAt = claims.ExpiresAt.Time
		}
		id.WithRemoteIP(clientIP(r, j.cfg))

		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the caller's address, honoring X-Forwarded-For only
// when the direct peer is a trusted proxy.
func clientIP(r *http.Request, cfg *config.Config) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" && cfg.IsTrustedProxy(host) {
		parts := strings.Split(forwarded, ",")
		if ip := net.ParseIP(strings.TrimSpace(parts[0])); ip != nil {
			return ip
		}
	}
	return net.ParseIP(host)
}
