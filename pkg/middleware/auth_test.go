package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/authenticating"
)

func newAuthService() authenticating.Authenticator {
	return authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo-de-teste"}})
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
		require.True(t, ok, "claims devem estar no contexto da requisição")
		assert.Equal(t, "operador", claims.UserName)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	authService := newAuthService()

	t.Run("Healthcheck dispensa token", func(t *testing.T) {
		handler := AuthMiddleware(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Requisição sem header é rejeitada", func(t *testing.T) {
		handler := AuthMiddleware(authService)(protectedHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token inválido é rejeitado", func(t *testing.T) {
		handler := AuthMiddleware(authService)(protectedHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
		req.Header.Set("Authorization", "Bearer nao-é-um-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token válido popula as claims no contexto", func(t *testing.T) {
		token, err := authService.GenerateToken("operador", domain.RoleOperator)
		require.NoError(t, err)

		handler := AuthMiddleware(authService)(protectedHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	authService := newAuthService()

	adminHandler := AuthMiddleware(authService)(AdminOnly()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("Operador não acessa rota de administrador", func(t *testing.T) {
		token, err := authService.GenerateToken("operador", domain.RoleOperator)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/sessions/run", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		adminHandler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Administrador acessa rota de administrador", func(t *testing.T) {
		token, err := authService.GenerateToken("pipeline-admin", domain.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/sessions/run", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		adminHandler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
