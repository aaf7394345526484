package analyticsdomain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		details    ErrorDetails
		expected   ErrorKind
	}{
		{
			name:       "Resposta acima do limite deve ser classificada como tratável",
			statusCode: http.StatusBadRequest,
			details: ErrorDetails{
				Code:    400,
				Status:  "INVALID_ARGUMENT",
				Message: "The response exceeds limit of 10485760 bytes.",
			},
			expected: ErrorKindResponseTooLarge,
		},
		{
			name:       "Variação too_large também é tratável",
			statusCode: http.StatusBadRequest,
			details:    ErrorDetails{Message: "report result too_large"},
			expected:   ErrorKindResponseTooLarge,
		},
		{
			name:       "Cota esgotada é erro de quota, não de tamanho",
			statusCode: http.StatusTooManyRequests,
			details: ErrorDetails{
				Status:  "RESOURCE_EXHAUSTED",
				Message: "Exhausted property tokens for the hour.",
			},
			expected: ErrorKindQuota,
		},
		{
			name:       "Token sem permissão é erro de autenticação",
			statusCode: http.StatusForbidden,
			details: ErrorDetails{
				Status:  "PERMISSION_DENIED",
				Message: "User does not have sufficient permissions for this property.",
			},
			expected: ErrorKindAuth,
		},
		{
			name:       "Credencial expirada é erro de autenticação",
			statusCode: http.StatusUnauthorized,
			details: ErrorDetails{
				Status:  "UNAUTHENTICATED",
				Message: "Request had invalid authentication credentials.",
			},
			expected: ErrorKindAuth,
		},
		{
			name:       "Erro sem classificação conhecida permanece desconhecido",
			statusCode: http.StatusInternalServerError,
			details:    ErrorDetails{Status: "INTERNAL", Message: "Internal error encountered."},
			expected:   ErrorKindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := Classify(tt.statusCode, tt.details)
			assert.Equal(t, tt.expected, apiErr.Kind)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.expected == ErrorKindResponseTooLarge, apiErr.IsResponseTooLarge())
		})
	}
}
