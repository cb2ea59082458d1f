package session

// MemoryStorage is an in-memory Storage used in tests and as a fallback when
// no writable state dir exists.
type MemoryStorage struct {
	access  string
	refresh string
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (s *MemoryStorage) Load() (string, string, error) {
	return s.access, s.refresh, nil
}

func (s *MemoryStorage) Store(access, refresh string) error {
	s.access, s.refresh = access, refresh
	return nil
}
