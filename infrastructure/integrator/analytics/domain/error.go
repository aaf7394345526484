package analyticsdomain

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifica as falhas da API de dados do GA4. A classificação é
// decidida aqui, no colaborador, a partir do payload estruturado de erro; o
// núcleo do pipeline decide o que fazer apenas pelo Kind.
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindResponseTooLarge indica que a resposta excedeu o limite de
	// tamanho da API. É o único tipo tratável pelo encolhimento de span.
	ErrorKindResponseTooLarge
	ErrorKindAuth
	ErrorKindQuota
	ErrorKindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindResponseTooLarge:
		return "response_too_large"
	case ErrorKindAuth:
		return "auth"
	case ErrorKindQuota:
		return "quota"
	case ErrorKindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ErrorResponse representa o payload de erro padrão das APIs do Google.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError é o erro classificado retornado pelo cliente da API.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro da API de analytics (%s, http %d, %s): %s", e.Kind, e.StatusCode, e.Status, e.Message)
}

// IsResponseTooLarge indica se a falha é tratável pelo encolhimento de span.
func (e *APIError) IsResponseTooLarge() bool {
	return e.Kind == ErrorKindResponseTooLarge
}

// NewTransportError cria um APIError para falhas de rede, antes de qualquer
// resposta HTTP.
func NewTransportError(err error) *APIError {
	return &APIError{
		Kind:    ErrorKindTransport,
		Message: err.Error(),
	}
}

// Classify decide o tipo do erro a partir do status HTTP e do payload
// estruturado retornado pela API.
func Classify(statusCode int, details ErrorDetails) *APIError {
	apiErr := &APIError{
		Kind:       ErrorKindUnknown,
		StatusCode: statusCode,
		Status:     details.Status,
		Message:    details.Message,
	}

	switch {
	case isTooLargeMessage(details.Message):
		apiErr.Kind = ErrorKindResponseTooLarge
	case statusCode == http.StatusTooManyRequests || details.Status == "RESOURCE_EXHAUSTED":
		apiErr.Kind = ErrorKindQuota
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden ||
		details.Status == "UNAUTHENTICATED" || details.Status == "PERMISSION_DENIED":
		apiErr.Kind = ErrorKindAuth
	}

	return apiErr
}

// isTooLargeMessage reconhece as formas conhecidas da mensagem de resposta
// grande demais. A API não dedica um status próprio a essa condição, então a
// decisão fica confinada a esta função.
func isTooLargeMessage(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "exceeds limit") ||
		strings.Contains(msg, "too_large") ||
		strings.Contains(msg, "response is too large")
}
