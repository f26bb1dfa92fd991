// Package store define o contrato genérico de CRUD por tabela usado pelos
// repositórios, com uma implementação sobre a API REST do Supabase e uma
// implementação em memória para modo demonstração e testes.
package store

// Filter é um conjunto de restrições de igualdade coluna = valor.
type Filter map[string]string

// Store é o contrato do colaborador de armazenamento. Todas as operações
// devolvem as linhas afetadas como um array JSON; a decodificação para os
// tipos de domínio é responsabilidade dos repositórios. Timeouts e controle de
// concorrência são delegados ao próprio store.
type Store interface {
	// Select devolve as linhas da tabela que satisfazem o filtro (todas, se nil).
	Select(table string, filter Filter) ([]byte, error)

	// Insert persiste uma linha e devolve o array JSON com a linha inserida,
	// incluindo colunas atribuídas pelo store (id, created_at).
	Insert(table string, row any) ([]byte, error)

	// Update aplica o patch às linhas que satisfazem o filtro e devolve o array
	// JSON com as linhas atualizadas; array vazio significa que nada casou.
	Update(table string, filter Filter, patch any) ([]byte, error)

	// Delete remove as linhas que satisfazem o filtro.
	Delete(table string, filter Filter) error
}
