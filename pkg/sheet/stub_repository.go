package sheet

import "context"

type StubRepository struct {
	data   []byte
	stores int
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Load(ctx context.Context) ([]byte, bool, error) {
	if s.data == nil {
		return nil, false, nil
	}
	return s.data, true, nil
}

func (s *StubRepository) Store(ctx context.Context, data []byte) error {
	s.data = append([]byte(nil), data...)
	s.stores++
	return nil
}

func (s *StubRepository) StoreCount() int {
	return s.stores
}

func (s *StubRepository) Seed(data []byte) {
	s.data = append([]byte(nil), data...)
}

func (s *StubRepository) Cleanup() {
	s.data = nil
	s.stores = 0
}
