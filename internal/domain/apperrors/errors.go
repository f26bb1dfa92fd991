// Package apperrors define a taxonomia de erros da API: erros de validação
// (400), identificador não resolvido (404), store não configurado e falhas do
// store (ambos 500). Nenhum erro é repetido automaticamente; toda falha do
// store é terminal para a requisição.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBackendUnavailable indica que nenhum store foi configurado na
// inicialização para atender a requisição.
var ErrBackendUnavailable = errors.New("supabase client not initialized")

// ValidationError agrega todas as regras violadas por um payload de escrita.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "dados inválidos: " + strings.Join(e.Details, "; ")
}

// NotFoundError indica que o identificador não resolve para nenhum registro.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s não encontrada: %s", e.Resource, e.ID)
}

// StoreError carrega a mensagem de diagnóstico devolvida pelo store quando uma
// operação é rejeitada ou falha.
type StoreError struct {
	Op      string
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
