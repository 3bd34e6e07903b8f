package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avnit77/recipes/pkg/model"
	"github.com/avnit77/recipes/pkg/storage"
)

type eventStore struct {
	store map[string]model.Event
	sync.RWMutex
}

func newEventStore() *eventStore {
	return &eventStore{
		store: make(map[string]model.Event),
	}
}

func (s *eventStore) FetchAll(ctx context.Context) (models map[string]model.Event, err error) {
	s.RLock()
	defer s.RUnlock()
	models = make(map[string]model.Event, len(s.store))

	for id, m := range s.store {
		models[id] = copyEvent(m)
	}

	return models, nil
}

func (s *eventStore) FindByID(ctx context.Context, id string) (*model.Event, error) {
	s.RLock()
	defer s.RUnlock()
	if m, ok := s.store[id]; ok {
		m = copyEvent(m)
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *eventStore) Create(ctx context.Context, m *model.Event) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()

	m.ID = model.NewID()
	m.Version = 0
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt

	s.store[m.ID] = copyEvent(*m)

	return nil
}

func (s *eventStore) Update(ctx context.Context, m *model.Event) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()

	old, ok := s.store[m.ID]
	if !ok {
		return storage.ErrNotFound
	}

	m.Version = old.Version
	m.CreatedAt = old.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	s.store[m.ID] = copyEvent(*m)

	return nil
}

func (s *eventStore) Delete(ctx context.Context, id string) error {
	s.Lock()
	defer s.Unlock()

	_, ok := s.store[id]
	if !ok {
		return storage.ErrNotFound
	}

	delete(s.store, id)

	return nil
}

// copyEvent detaches the notes pointer from the caller's copy
func copyEvent(m model.Event) model.Event {
	if m.Notes != nil {
		notes := *m.Notes
		m.Notes = &notes
	}
	return m
}
