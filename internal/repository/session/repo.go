// Package session persists short-lived per-visitor state: dialogue sessions, facet views
// and search handoffs. Every key carries a TTL that is refreshed on save.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/finsite/internal/db"
	"github.com/kailas-cloud/finsite/internal/domain"
	"github.com/kailas-cloud/finsite/internal/domain/dialogue"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
)

// store is the consumer interface for session state (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetDel(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, key string) error
}

// Repo implements the dialogue, facets and handoff repositories on one key space.
type Repo struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New creates a session repository. Keys are namespaced under prefix.
func New(s store, prefix string, ttl time.Duration) *Repo {
	if prefix == "" {
		prefix = "finsite"
	}
	return &Repo{store: s, prefix: prefix, ttl: ttl}
}

func (r *Repo) conversationKey(id string) string { return r.prefix + ":conversation:" + id }
func (r *Repo) viewKey(id string) string         { return r.prefix + ":facet-view:" + id }
func (r *Repo) handoffKey(key string) string     { return r.prefix + ":handoff:" + key }

// GetConversation loads a dialogue session.
func (r *Repo) GetConversation(ctx context.Context, id string) (*dialogue.Session, error) {
	data, err := r.store.Get(ctx, r.conversationKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get conversation %s: %w", id, err)
	}
	return conversationFromJSON(data)
}

// SaveConversation stores a dialogue session and refreshes its TTL.
func (r *Repo) SaveConversation(ctx context.Context, s *dialogue.Session) error {
	data, err := conversationToJSON(s)
	if err != nil {
		return err
	}
	if err := r.store.SetWithTTL(ctx, r.conversationKey(s.ID()), data, r.ttl); err != nil {
		return fmt.Errorf("save conversation %s: %w", s.ID(), err)
	}
	return nil
}

// DeleteConversation removes a dialogue session.
func (r *Repo) DeleteConversation(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.conversationKey(id)); err != nil {
		return fmt.Errorf("delete conversation %s: %w", id, err)
	}
	return nil
}

// GetView loads the facet selection of a search-results view.
func (r *Repo) GetView(ctx context.Context, id string) (facet.Selection, error) {
	data, err := r.store.Get(ctx, r.viewKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return facet.Selection{}, domain.ErrSessionNotFound
		}
		return facet.Selection{}, fmt.Errorf("get facet view %s: %w", id, err)
	}
	return selectionFromJSON(data)
}

// SaveView stores the facet selection of a view and refreshes its TTL.
func (r *Repo) SaveView(ctx context.Context, id string, sel facet.Selection) error {
	data, err := selectionToJSON(sel)
	if err != nil {
		return err
	}
	if err := r.store.SetWithTTL(ctx, r.viewKey(id), data, r.ttl); err != nil {
		return fmt.Errorf("save facet view %s: %w", id, err)
	}
	return nil
}

// DeleteView removes a facet view.
func (r *Repo) DeleteView(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.viewKey(id)); err != nil {
		return fmt.Errorf("delete facet view %s: %w", id, err)
	}
	return nil
}

// PutHandoff stores a pending search query under key.
func (r *Repo) PutHandoff(ctx context.Context, key, query string) error {
	if err := r.store.SetWithTTL(ctx, r.handoffKey(key), []byte(query), r.ttl); err != nil {
		return fmt.Errorf("put handoff %s: %w", key, err)
	}
	return nil
}

// TakeHandoff reads and clears the pending query. A missing key yields ok=false.
func (r *Repo) TakeHandoff(ctx context.Context, key string) (query string, ok bool, err error) {
	data, err := r.store.GetDel(ctx, r.handoffKey(key))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("take handoff %s: %w", key, err)
	}
	return string(data), true, nil
}
