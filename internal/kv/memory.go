package kv

// Memory is an in-memory Backend. Entries live for the life of the
// process; Close retains them so a reopened handle over the same Memory
// value sees prior writes.
type Memory struct {
	entries map[string][]byte
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get implements Backend. The returned slice is a copy.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	v, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements Backend. The stored slice is a copy.
func (m *Memory) Set(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.entries[key] = stored
	return nil
}

// Has implements Backend.
func (m *Memory) Has(key string) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}

// Close implements Backend. No-op: entries are retained.
func (m *Memory) Close() error {
	return nil
}

// Label implements Backend.
func (m *Memory) Label() string {
	return "memory://questlog"
}
