package store

import (
	"fmt"
	"os"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// SupabaseStore implementa Store sobre a API REST do Supabase (PostgREST).
type SupabaseStore struct {
	client *supabase.Client
}

// SetupSupabase cria o store a partir de SUPABASE_URL e SUPABASE_KEY. A
// ausência das variáveis é uma decisão de configuração tomada aqui, na
// inicialização, e não a cada requisição.
func SetupSupabase() (*SupabaseStore, error) {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_KEY")
	if url == "" || key == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are not defined in the environment")
	}

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseStore{client: client}, nil
}

func (s *SupabaseStore) Select(table string, filter Filter) ([]byte, error) {
	builder := s.client.From(table).Select("*", "", false)
	data, _, err := applyFilter(builder, filter).Execute()
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SupabaseStore) Insert(table string, row any) ([]byte, error) {
	// Insere como array de uma posição, devolvendo a representação completa da
	// linha para capturar colunas atribuídas pelo banco.
	data, _, err := s.client.From(table).Insert([]any{row}, false, "", "representation", "").Execute()
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SupabaseStore) Update(table string, filter Filter, patch any) ([]byte, error) {
	builder := s.client.From(table).Update(patch, "representation", "")
	data, _, err := applyFilter(builder, filter).Execute()
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SupabaseStore) Delete(table string, filter Filter) error {
	builder := s.client.From(table).Delete("", "")
	_, _, err := applyFilter(builder, filter).Execute()
	return err
}

func applyFilter(builder *postgrest.FilterBuilder, filter Filter) *postgrest.FilterBuilder {
	for column, value := range filter {
		builder = builder.Eq(column, value)
	}
	return builder
}
