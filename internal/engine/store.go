package engine

// MemoryStore is a ScoreStore kept in process memory.
// It is used when no database is available and in tests.
type MemoryStore struct {
	values map[string]int
	writes int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// GetInt implements ScoreStore.
func (m *MemoryStore) GetInt(key string) (int, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// SetInt implements ScoreStore.
func (m *MemoryStore) SetInt(key string, value int) error {
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many times SetInt has been called.
func (m *MemoryStore) Writes() int {
	return m.writes
}

var _ ScoreStore = (*MemoryStore)(nil)
