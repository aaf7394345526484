package domain

import "time"

// Property representa uma propriedade GA4 cadastrada para sincronização.
// TokenFile é a referência de credencial: o nome do arquivo de token OAuth
// autorizado para a conta dona da propriedade.
type Property struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	AccountID   string     `json:"account_id"`
	AccountName string     `json:"account_name"`
	TokenFile   string     `json:"token_file"`
	Active      bool       `json:"active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
