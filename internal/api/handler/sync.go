package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/scheduler"
	"github.com/vfg2006/ga4-sessions-sync/pkg/apiErrors"
	"github.com/vfg2006/ga4-sessions-sync/pkg/middleware"
)

// SyncJobType define o tipo de sincronização que será executada
const (
	SyncJobTypeSessions = "sessions"
)

// SyncJobServices contém os serviços de sincronização acionáveis pela API
type SyncJobServices struct {
	SessionsSyncService *scheduler.SessionsSyncService
}

// RunSyncJob executa manualmente uma sincronização específica
func RunSyncJob(services SyncJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSyncJob")

		// Apenas administradores podem disparar sincronizações
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar sincronizações", nil)
			return
		}

		syncType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if syncType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de sincronização não especificado", nil)
			return
		}

		switch syncType {
		case SyncJobTypeSessions:
			if services.SessionsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrSyncUnavailable, "Serviço de sincronização de sessões não disponível", nil)
				return
			}
			// A sincronização roda em segundo plano e sobrevive à requisição
			services.SessionsSyncService.TriggerManualSync(context.Background())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de sincronização inválido. Valores aceitos: sessions", nil)
			return
		}

		response := map[string]any{
			"message": "Sincronização iniciada com sucesso",
			"type":    syncType,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetSyncStatus retorna o status das sincronizações
func GetSyncStatus(services SyncJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSyncStatus")

		status := map[string]any{}
		if services.SessionsSyncService != nil {
			status["sessions"] = services.SessionsSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
