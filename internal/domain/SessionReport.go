package domain

import "time"

// UnassignedChannelGroup é o rótulo usado quando a API retorna o canal vazio.
// Sessões sem canal atribuído ainda são dados válidos e nunca são descartadas.
const UnassignedChannelGroup = "(unassigned)"

// SessionRow representa as sessões de um dia para um canal de aquisição de uma
// propriedade GA4. A tripla (PropertyID, Date, ChannelGroup) é a chave natural
// da linha na tabela de destino.
type SessionRow struct {
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	AccountID    string    `json:"account_id"`
	AccountName  string    `json:"account_name"`
	Date         time.Time `json:"date"`
	ChannelGroup string    `json:"channel_group"`
	Sessions     int64     `json:"sessions"`
}

// SessionKey é a chave composta usada para deduplicação e merge.
type SessionKey struct {
	PropertyID   string
	Date         string
	ChannelGroup string
}

// Key retorna a chave composta da linha.
func (r SessionRow) Key() SessionKey {
	return SessionKey{
		PropertyID:   r.PropertyID,
		Date:         r.Date.Format(time.DateOnly),
		ChannelGroup: r.ChannelGroup,
	}
}

// MergeResult é o resultado do merge de um lote na tabela de destino.
type MergeResult struct {
	Inserted int64 `json:"inserted"`
	Updated  int64 `json:"updated"`
}
