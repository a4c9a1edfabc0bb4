package editor

import (
	"errors"
	"sort"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

var errDisk = errors.New("disk on fire")

// memStore is an in-memory Store.
type memStore struct {
	boards  map[string]*breadboard.Breadboard
	listErr error
	loadErr error
	saveErr error
	saved   []string
}

func newMemStore() *memStore {
	return &memStore{boards: make(map[string]*breadboard.Breadboard)}
}

func (s *memStore) ListFiles() ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	names := make([]string, 0, len(s.boards))
	for name := range s.boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *memStore) Load(name string) (*breadboard.Breadboard, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	b, ok := s.boards[name]
	if !ok {
		return nil, errors.New("not found: " + name)
	}
	return b, nil
}

func (s *memStore) Save(name string, b *breadboard.Breadboard) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.boards[name] = b
	s.saved = append(s.saved, name)
	return nil
}
