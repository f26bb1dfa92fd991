package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore é um repositório em memória que implementa o mesmo contrato do
// store remoto. Serve o modo demonstração (sem Supabase configurado) e os
// testes; os dados não são autoritativos e vivem apenas no processo.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]map[string]any
}

// NewMemoryStore cria uma nova instância de MemoryStore com tabelas vazias.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string][]map[string]any),
	}
}

func (m *MemoryStore) Select(table string, filter Filter) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]map[string]any, 0)
	for _, row := range m.tables[table] {
		if matches(row, filter) {
			rows = append(rows, row)
		}
	}
	return json.Marshal(rows)
}

func (m *MemoryStore) Insert(table string, row any) ([]byte, error) {
	record, err := toRow(row)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Colunas atribuídas pelo store, como no backend real.
	if id, ok := record["id"]; !ok || id == nil || id == "" {
		record["id"] = uuid.NewString()
	}
	if _, ok := record["created_at"]; !ok {
		record["created_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	m.tables[table] = append(m.tables[table], record)
	return json.Marshal([]map[string]any{record})
}

func (m *MemoryStore) Update(table string, filter Filter, patch any) ([]byte, error) {
	patchRow, err := toRow(patch)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	updated := make([]map[string]any, 0)
	for _, row := range m.tables[table] {
		if !matches(row, filter) {
			continue
		}
		for column, value := range patchRow {
			row[column] = value
		}
		updated = append(updated, row)
	}
	return json.Marshal(updated)
}

func (m *MemoryStore) Delete(table string, filter Filter) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.tables[table][:0]
	for _, row := range m.tables[table] {
		if !matches(row, filter) {
			kept = append(kept, row)
		}
	}
	m.tables[table] = kept
	return nil
}

// toRow normaliza qualquer valor para a representação genérica de linha,
// passando pelo JSON para respeitar as tags de coluna dos registros.
func toRow(value any) (map[string]any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var row map[string]any
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, err
	}
	return row, nil
}

func matches(row map[string]any, filter Filter) bool {
	for column, value := range filter {
		if fmt.Sprint(row[column]) != value {
			return false
		}
	}
	return true
}
