package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"repairshop/internal/config"
	"repairshop/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey struct{}

var identityKey contextKey

// ResolveIdentity attaches the caller's identity to the request context.
// Requests without a valid session token proceed as anonymous; individual
// handlers decide what an anonymous caller may do.
func ResolveIdentity(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := resolveFromRequest(r, cfg.JWTSecret, logger)
			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity placed by ResolveIdentity, or
// an anonymous identity when the middleware did not run.
func IdentityFromContext(ctx context.Context) identity.Identity {
	if ident, ok := ctx.Value(identityKey).(identity.Identity); ok {
		return ident
	}
	return identity.Anonymous()
}

func resolveFromRequest(r *http.Request, secret string, logger *slog.Logger) identity.Identity {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return identity.Anonymous()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		logger.Warn("ResolveIdentity: Invalid Authorization header format")
		return identity.Anonymous()
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			logger.Warn("ResolveIdentity: Unexpected signing method")
			return nil, http.ErrAbortHandler
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		logger.Warn("ResolveIdentity: Invalid session token", "error", err)
		return identity.Anonymous()
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity.Anonymous()
	}

	return identity.FromClaims(claimsFromToken(mapClaims))
}

func claimsFromToken(mapClaims jwt.MapClaims) identity.Claims {
	claims := identity.Claims{
		UserID:  stringClaim(mapClaims, "sub"),
		Email:   stringClaim(mapClaims, "email"),
		OrgRole: stringClaim(mapClaims, "orgRole"),
	}
	if meta, ok := mapClaims["publicMetadata"].(map[string]interface{}); ok {
		if role, ok := meta["role"].(string); ok {
			claims.PublicMetadataRole = role
		}
	}
	return claims
}

func stringClaim(mapClaims jwt.MapClaims, key string) string {
	if v, ok := mapClaims[key].(string); ok {
		return v
	}
	return ""
}
