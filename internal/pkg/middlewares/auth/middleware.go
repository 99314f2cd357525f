package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type callerKey struct{}

const WebhookKeyHeader = "X-Api-Key"

func WithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFrom(ctx context.Context) (entities.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(entities.Caller)
	return caller, ok
}

// Middleware требует Bearer-токен и кладет пользователя в контекст запроса.
func Middleware(log handlerLogger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				writeError(w, log, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			caller, err := verifier.Verify(strings.TrimSpace(raw))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("token rejected")
				writeError(w, log, http.StatusUnauthorized, "unauthorized", "invalid bearer token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// RequireRole пропускает только перечисленные роли. Ставится после Middleware.
func RequireRole(log handlerLogger, roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFrom(r.Context())
			if !ok {
				writeError(w, log, http.StatusUnauthorized, "unauthorized", "missing caller")
				return
			}
			for _, role := range roles {
				if caller.Is(role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, log, http.StatusForbidden, "forbidden", "role is not allowed")
		})
	}
}

// WebhookKey проверяет общий ключ вебхука провайдера платежей.
func WebhookKey(log handlerLogger, key string) func(http.Handler) http.Handler {
	expected := []byte(key)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(WebhookKeyHeader))
			if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("webhook key rejected")
				writeError(w, log, http.StatusUnauthorized, "unauthorized", "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(`{"error":"` + code + `","message":"` + message + `"}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("failed to write auth response")
	}
}
