package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/authenticating"
)

// Emite um token de acesso para a API administrativa. Os tokens são
// distribuídos fora de banda; não há cadastro de usuários.
func main() {
	name := flag.String("name", "", "Nome do portador do token")
	role := flag.Int("role", domain.RoleOperator, "Perfil do token: 1 (admin) ou 2 (operador)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	authenticator := authenticating.NewService(cfg)

	token, err := authenticator.GenerateToken(*name, *role)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar token")
		os.Exit(1)
	}

	fmt.Println(token)
}
