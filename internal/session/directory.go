package session

import (
	"encoding/json"
	"fmt"
	"os"
)

// Credential é uma entrada do diretório estático de acesso. A senha pode
// ser texto plano ou um hash bcrypt (prefixo "$2").
//
// Para revogar um acesso, marque is_active=false em vez de remover a
// entrada: os dados vinculados ao usuário permanecem no banco.
type Credential struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
}

type Directory []Credential

// LoadDirectory lê o diretório de um arquivo JSON. Caminho vazio cai no
// diretório de desenvolvimento embutido.
func LoadDirectory(path string) (Directory, error) {
	if path == "" {
		return DefaultDirectory(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	var dir Directory
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}
	return dir, nil
}

// DefaultDirectory replica a lista de acessos de desenvolvimento.
func DefaultDirectory() Directory {
	return Directory{
		{ID: "1", Username: "admin", Name: "Administrador Master", Password: "123", IsActive: true},
		{ID: "2", Username: "vendedor1", Name: "João Silva", Password: "abc", IsActive: true},
		{ID: "3", Username: "representante", Name: "Maria Souza", Password: "xyz", IsActive: true},
	}
}
