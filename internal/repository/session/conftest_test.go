package session

import (
	"context"
	"time"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	data     map[string][]byte
	ttls     map[string]time.Duration
	getErr   error
	setErr   error
	getDelFn func(ctx context.Context, key string) ([]byte, error)
	delErr   error
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockStore) GetDel(ctx context.Context, key string) ([]byte, error) {
	if m.getDelFn != nil {
		return m.getDelFn(ctx, key)
	}
	v, ok := m.data[key]
	if !ok {
		return nil, errNotFound
	}
	delete(m.data, key)
	return v, nil
}

func (m *mockStore) Del(_ context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}
