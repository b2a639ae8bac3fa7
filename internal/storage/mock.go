package storage

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRepository is an in-memory Repository for testing, with hookable
// overrides per operation.
type MockRepository struct {
	mu     sync.RWMutex
	stores []Store

	OnFindPage    func(ctx context.Context, limit, offset int64) ([]Store, int64, error)
	OnFindByID    func(ctx context.Context, id string) (*Store, error)
	OnFindByState func(ctx context.Context, state string, limit, offset int64) ([]Store, int64, error)
}

// NewMockRepository creates an empty in-memory repository.
func NewMockRepository(seed ...Store) *MockRepository {
	repo := &MockRepository{}
	for _, store := range seed {
		if store.ID.IsZero() {
			store.ID = primitive.NewObjectID()
		}
		repo.stores = append(repo.stores, store)
	}
	return repo
}

func (m *MockRepository) Create(ctx context.Context, store *Store) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	store.ID = primitive.NewObjectID()
	store.CreatedAt = time.Now().UTC()
	store.UpdatedAt = store.CreatedAt
	m.stores = append(m.stores, *store)
	return store, nil
}

func (m *MockRepository) Update(ctx context.Context, id string, store *Store) (*Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.stores {
		if m.stores[i].ID == oid {
			store.ID = oid
			store.UpdatedAt = time.Now().UTC()
			m.stores[i] = *store
			return store, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.stores {
		if m.stores[i].ID == oid {
			m.stores = append(m.stores[:i], m.stores[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*Store, error) {
	if m.OnFindByID != nil {
		return m.OnFindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.stores {
		if m.stores[i].ID == oid {
			store := m.stores[i]
			return &store, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockRepository) FindPage(ctx context.Context, limit, offset int64) ([]Store, int64, error) {
	if m.OnFindPage != nil {
		return m.OnFindPage(ctx, limit, offset)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(m.stores, limit, offset), int64(len(m.stores)), nil
}

func (m *MockRepository) FindByState(ctx context.Context, state string, limit, offset int64) ([]Store, int64, error) {
	if m.OnFindByState != nil {
		return m.OnFindByState(ctx, state, limit, offset)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	matched := make([]Store, 0, len(m.stores))
	for _, store := range m.stores {
		if store.Address.State == state {
			matched = append(matched, store)
		}
	}
	return page(matched, limit, offset), int64(len(matched)), nil
}

func page(stores []Store, limit, offset int64) []Store {
	if offset >= int64(len(stores)) {
		return []Store{}
	}
	end := offset + limit
	if end > int64(len(stores)) {
		end = int64(len(stores))
	}
	out := make([]Store, end-offset)
	copy(out, stores[offset:end])
	return out
}

var _ Repository = (*MockRepository)(nil)
