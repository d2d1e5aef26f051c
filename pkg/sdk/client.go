package finsite

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/finsite/internal/catalog"
	"github.com/kailas-cloud/finsite/internal/db"
	"github.com/kailas-cloud/finsite/internal/db/memory"
	dbRedis "github.com/kailas-cloud/finsite/internal/db/redis"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
	sessionrepo "github.com/kailas-cloud/finsite/internal/repository/session"
	dialogueuc "github.com/kailas-cloud/finsite/internal/usecase/dialogue"
	facetsuc "github.com/kailas-cloud/finsite/internal/usecase/facets"
	handoffuc "github.com/kailas-cloud/finsite/internal/usecase/handoff"
	healthuc "github.com/kailas-cloud/finsite/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/finsite/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/finsite/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultSessionTTL       = 30 * time.Minute
	defaultKeyPrefix        = "finsite"
)

// Internal interfaces, swapped in tests.
type searchUseCase interface {
	Search(ctx context.Context, query string) searchuc.Results
	Suggest(ctx context.Context, query string, limit int) []catalog.KeywordEntry
	Discover(ctx context.Context, tab searchuc.Tab) (searchuc.Discovery, error)
}

type facetUseCase interface {
	Table() facet.Table
	Open(ctx context.Context) (facetsuc.Summary, error)
	Get(ctx context.Context, id string) (facetsuc.Summary, error)
	Toggle(ctx context.Context, id string, d facet.Dimension, facetID string) (facetsuc.Summary, error)
	Clear(ctx context.Context, id string) (facetsuc.Summary, error)
	Close(ctx context.Context, id string) error
}

type recommendUseCase interface {
	Resolve(ctx context.Context, pageID string) recommenduc.Recommendations
	Destination(href, id string) recommenduc.Destination
}

type handoffUseCase interface {
	Put(ctx context.Context, key, query string) error
	Take(ctx context.Context, key string) (string, bool, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the finsite SDK entry point.
type Client struct {
	store     db.Store
	search    searchUseCase
	facets    facetUseCase
	recommend recommendUseCase
	handoff   handoffUseCase
	advisor   advisorUseCase
	health    healthUseCase
	obs       *observer
}

// New loads the catalog, connects the session store and wires the engines.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{driver: "memory", sessionTTL: defaultSessionTTL, keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	cat, err := catalog.Load(cfg.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("finsite: %w", err)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("finsite: session store not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(cat, store, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return memory.NewStore(), nil
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("finsite: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("finsite: unknown driver %q", cfg.driver)
	}
}

func wireClient(cat *catalog.Catalog, store db.Store, cfg *clientConfig, obs *observer) *Client {
	sessions := sessionrepo.New(store, cfg.keyPrefix, cfg.sessionTTL)
	return &Client{
		store:     store,
		search:    searchuc.New(cat, nil, cfg.suggestLimit),
		facets:    facetsuc.New(sessions, cat),
		recommend: recommenduc.NewResolver(cat.Taxonomy()),
		handoff:   handoffuc.New(sessions),
		advisor: dialogueuc.New(sessions, cat, nil, dialogueuc.Config{
			TypingDelay:  cfg.typingDelay,
			SubmitDelay:  cfg.submitDelay,
			VisibleRoles: cfg.visibleRoles,
		}),
		health: healthuc.New(store, cat),
		obs:    obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks session store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	done := c.obs.track("ping")
	defer func() { done(err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search filters the product and resource rails by query.
func (c *Client) Search(ctx context.Context, query string) SearchResults {
	defer c.obs.track("search")(nil)
	return c.search.Search(ctx, query)
}

// Suggest returns keyword suggestions for a partial query.
func (c *Client) Suggest(ctx context.Context, query string, limit int) []KeywordEntry {
	defer c.obs.track("suggest")(nil)
	return c.search.Suggest(ctx, query, limit)
}

// Discover returns the empty-query drawer for tab.
func (c *Client) Discover(ctx context.Context, tab DiscoveryTab) (d Discovery, err error) {
	done := c.obs.track("discover")
	defer func() { done(err) }()

	d, err = c.search.Discover(ctx, tab)
	if err != nil {
		return Discovery{}, fmt.Errorf("discover: %w", err)
	}
	return d, nil
}

// Recommend returns related pages and FAQs for a taxonomy page.
func (c *Client) Recommend(ctx context.Context, pageID string) Recommendations {
	defer c.obs.track("recommend")(nil)
	return c.recommend.Resolve(ctx, pageID)
}

// Destination maps a taxonomy href to where the host should go.
func (c *Client) Destination(href, id string) Destination {
	return c.recommend.Destination(href, id)
}

// PutHandoff stores a pending search query under key.
func (c *Client) PutHandoff(ctx context.Context, key, query string) (err error) {
	done := c.obs.track("handoff_put")
	defer func() { done(err) }()

	if err = c.handoff.Put(ctx, key, query); err != nil {
		return fmt.Errorf("put handoff: %w", err)
	}
	return nil
}

// TakeHandoff returns the pending query for key and clears it.
func (c *Client) TakeHandoff(ctx context.Context, key string) (query string, ok bool, err error) {
	done := c.obs.track("handoff_take")
	defer func() { done(err) }()

	query, ok, err = c.handoff.Take(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("take handoff: %w", err)
	}
	return query, ok, nil
}

// Facets returns the facet view service.
func (c *Client) Facets() *FacetService {
	return &FacetService{svc: c.facets, obs: c.obs}
}

// Advisor returns the scripted advisor service.
func (c *Client) Advisor() *AdvisorService {
	return &AdvisorService{svc: c.advisor, obs: c.obs}
}
