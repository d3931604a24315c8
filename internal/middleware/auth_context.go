package middleware

import (
	"context"
	"net/http"
	"strings"

	"cat-shelter-admin/internal/platform/logger"
	"cat-shelter-admin/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// DebugUserHeader identifica al usuario cuando no hay verifier (modo dev).
const DebugUserHeader = "X-Debug-User-ID"

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext resuelve las claims del request y las deja en el contexto.
// Nunca corta la cadena: sin claims, cada handler responde 401 vía httpx.RequireUser.
//   - verifier == nil: modo dev, se toma el header DebugUserHeader.
//   - verifier != nil: Bearer token verificado; el header de debug se ignora.
func AuthContext(verifier auth.AuthVerifier, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
					r = r.WithContext(WithClaims(r.Context(), auth.Claims{UserID: uid}))
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Warn("bearer token rejected", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"error":      err.Error(),
				})
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims guarda claims en ctx (también lo usan los tests de handlers).
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
