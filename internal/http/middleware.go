package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"dates-shop-backend/internal/service"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyClaims
)

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

type TokenVerifier interface {
	VerifyToken(token string) (service.Claims, error)
}

// AuthCookie is the cookie the login handler sets and this middleware reads.
const AuthCookie = "authToken"

// Auth rejects requests without a valid auth cookie: missing cookie → 401,
// bad or expired token → 403. Valid claims go into the request context.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AuthCookie)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims)))
		})
	}
}

// WithUser stores claims on the context the way Auth does.
func WithUser(ctx context.Context, claims service.Claims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, claims)
}

// UserFromContext returns the claims Auth stored for the request.
func UserFromContext(ctx context.Context) (service.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(service.Claims)
	return c, ok
}
