package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

// ErrCredentialUnavailable indica que a credencial de uma propriedade não pôde
// ser resolvida. Propriedades nessa condição são puladas com aviso, nunca
// abortam a execução.
var ErrCredentialUnavailable = errors.New("credencial da propriedade indisponível")

// TokenSource resolve o token de acesso de uma propriedade a partir da sua
// referência de credencial.
type TokenSource interface {
	AccessToken(property *domain.Property) (string, error)
}

// fileTokenSource lê tokens OAuth de arquivos JSON em um diretório local, um
// arquivo por conta. A renovação do token é responsabilidade de quem gera os
// arquivos; aqui eles chegam prontos para uso.
type fileTokenSource struct {
	dir string
}

func NewFileTokenSource(cfg *config.Config) TokenSource {
	return &fileTokenSource{dir: cfg.Analytics.TokenDir}
}

type tokenFile struct {
	Token string `json:"token"`
}

func (s *fileTokenSource) AccessToken(property *domain.Property) (string, error) {
	if property.TokenFile == "" {
		return "", errors.Wrapf(ErrCredentialUnavailable, "propriedade %s sem arquivo de token", property.ID)
	}

	path := filepath.Join(s.dir, property.TokenFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(ErrCredentialUnavailable, "erro ao ler %s: %v", path, err)
	}

	var tok tokenFile
	if err := json.Unmarshal(data, &tok); err != nil {
		return "", errors.Wrapf(ErrCredentialUnavailable, "erro ao decodificar %s: %v", path, err)
	}

	if tok.Token == "" {
		return "", errors.Wrapf(ErrCredentialUnavailable, "arquivo %s sem token de acesso", path)
	}

	return tok.Token, nil
}
