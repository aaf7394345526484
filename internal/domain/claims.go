package domain

import "github.com/golang-jwt/jwt/v5"

// Perfis aceitos no claim de papel do token de serviço.
const (
	RoleAdmin    = 1
	RoleOperator = 2
)

// Claims são as claims do token de serviço usado nas rotas administrativas.
type Claims struct {
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
