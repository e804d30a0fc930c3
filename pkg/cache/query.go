package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"areaadmin/pkg/logger"
)

const (
	DefaultStaleTime       = 30 * time.Second
	DefaultCleanupInterval = time.Minute
)

type Option func(*option)

type option struct {
	staleTime       time.Duration
	cleanupInterval time.Duration
}

// WithStaleTime sets how long a fetched result is served without refetching
func WithStaleTime(d time.Duration) Option {
	return func(o *option) {
		if d > 0 {
			o.staleTime = d
		}
	}
}

func WithCleanupInterval(d time.Duration) Option {
	return func(o *option) {
		if d > 0 {
			o.cleanupInterval = d
		}
	}
}

// Fetcher loads the value of one key
type Fetcher func(ctx context.Context) (interface{}, error)

// QueryCache is the process wide store of query results.
type QueryCache struct {
	store *cache.Cache
	group singleflight.Group

	mux         sync.Mutex
	generations map[string]uint64
	listeners   []func(Key)
}

func New(opts ...Option) *QueryCache {
	o := &option{
		staleTime:       DefaultStaleTime,
		cleanupInterval: DefaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &QueryCache{
		store:       cache.New(o.staleTime, o.cleanupInterval),
		generations: make(map[string]uint64),
	}
}

type entry struct {
	key   Key
	value interface{}
}

// Get returns the fresh value under key
func (q *QueryCache) Get(key Key) (interface{}, bool) {
	v, ok := q.store.Get(key.String())
	if !ok {
		return nil, false
	}
	return v.(entry).value, true
}

func (q *QueryCache) Set(key Key, value interface{}) {
	q.mux.Lock()
	q.set(key, value)
	q.mux.Unlock()
}

func (q *QueryCache) set(key Key, value interface{}) {
	q.store.SetDefault(key.String(), entry{key: key, value: value})
}

// Invalidate drops every entry of resource, or only resource/params for
// each given params, and returns how many entries were dropped. In-flight
// fetches of resource started before the call will not be stored.
func (q *QueryCache) Invalidate(resource string, params ...string) int {
	q.mux.Lock()
	q.generations[resource]++
	var dropped int
	targets := params
	if len(targets) == 0 {
		targets = []string{""}
	}
	for name, item := range q.store.Items() {
		key := item.Object.(entry).key
		for _, p := range targets {
			if key.matches(resource, p) {
				q.store.Delete(name)
				dropped++
				break
			}
		}
	}
	listeners := make([]func(Key), len(q.listeners))
	copy(listeners, q.listeners)
	q.mux.Unlock()

	for _, p := range targets {
		for _, l := range listeners {
			l(NewKey(resource, p))
		}
	}
	return dropped
}

// OnInvalidate registers f, called once per invalidated key after the
// entries are dropped
func (q *QueryCache) OnInvalidate(f func(Key)) {
	q.mux.Lock()
	q.listeners = append(q.listeners, f)
	q.mux.Unlock()
}

// Fetch returns the cached value of key unless force is set, otherwise it
// runs fetcher once for all concurrent callers of the same key
func (q *QueryCache) Fetch(ctx context.Context, key Key, fetcher Fetcher, force bool) (interface{}, error) {
	if !force {
		if v, ok := q.Get(key); ok {
			logger.From(ctx).Debug("query cache hit", zap.Stringer("key", key))
			return v, nil
		}
	}
	generation := q.generation(key.Resource)
	flight := key.String() + "#" + strconv.FormatUint(generation, 10)
	ch := q.group.DoChan(flight, func() (interface{}, error) {
		v, err := fetcher(ctx)
		if err != nil {
			return nil, err
		}
		q.mux.Lock()
		if q.generations[key.Resource] == generation {
			q.set(key, v)
		} else {
			logger.From(ctx).Debug("drop result of invalidated query", zap.Stringer("key", key))
		}
		q.mux.Unlock()
		return v, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.Val, r.Err
	}
}

func (q *QueryCache) generation(resource string) uint64 {
	q.mux.Lock()
	defer q.mux.Unlock()
	return q.generations[resource]
}
