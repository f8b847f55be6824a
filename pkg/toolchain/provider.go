package toolchain

import (
	"fmt"
	"runtime"
	"sync"
	"weak"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// BuildFunc constructs the family-specific driver product from a classified
// tool. It may be invoked by the provider under concurrency guards, so it
// should be pure and side-effect light; its result is canonical for the
// lifetime of the context it was built for.
type BuildFunc[T any] func(family Family, tool Tool) (T, error)

// A Provider memoizes family-specific driver objects per resolution context.
//
// The toolchain family is determined at most once per Provider: either it is
// supplied explicitly at construction, or a Probe infers it on the first
// Resolve that needs it and the result is frozen. Driver objects are built
// at most once per context, under any amount of concurrency.
//
// Entries are associated with their Resolver non-owningly: once nothing else
// references a Resolver, its entry is dropped. Callers must not rely on
// cache retention.
type Provider[T any] struct {
	tools  ToolProvider
	family func() (Family, error)
	build  BuildFunc[T]
	log    *zap.Logger

	mu     sync.Mutex
	cache  map[weak.Pointer[Resolver]]T
	flight singleflight.Group
}

// ProviderOption customizes a Provider.
type ProviderOption func(*providerConfig)

type providerConfig struct {
	log *zap.Logger
}

// WithLogger sets the logger used for provider diagnostics. The default is
// a no-op logger.
func WithLogger(log *zap.Logger) ProviderOption {
	return func(c *providerConfig) { c.log = log }
}

// NewProvider builds a Provider with a statically known family. No process
// is ever spawned on behalf of such a provider.
func NewProvider[T any](tools ToolProvider, family Family, build BuildFunc[T], opts ...ProviderOption) *Provider[T] {
	return newProvider(tools, func() (Family, error) { return family, nil }, build, opts)
}

// NewInferredProvider builds a Provider whose family is classified by probe
// on first demand. The probe runs at most once regardless of how many
// contexts are resolved; a failed probe is fatal for the provider's
// remaining lifetime.
func NewInferredProvider[T any](tools ToolProvider, probe *Probe, build BuildFunc[T], opts ...ProviderOption) *Provider[T] {
	return newProvider(tools, probe.Family, build, opts)
}

func newProvider[T any](tools ToolProvider, family func() (Family, error), build BuildFunc[T], opts []ProviderOption) *Provider[T] {
	cfg := providerConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Provider[T]{
		tools:  tools,
		family: family,
		build:  build,
		log:    cfg.log,
		cache:  map[weak.Pointer[Resolver]]T{},
	}
}

// Resolve returns the driver object for the given context, building it on
// first use. Calls racing on a miss for the same context share a single
// build; every call observes the identical instance for as long as the
// context stays reachable. r must not be nil.
//
// Probe failures surface here unchanged and are frozen thereafter. Builder
// failures also surface unchanged, but are not cached: a later Resolve for
// the same context attempts the build again.
func (p *Provider[T]) Resolve(r *Resolver) (T, error) {
	key := weak.Make(r)

	p.mu.Lock()
	v, ok := p.cache[key]
	p.mu.Unlock()
	if ok {
		return v, nil
	}

	built, err, _ := p.flight.Do(fmt.Sprintf("%p", r), func() (any, error) {
		p.mu.Lock()
		if v, ok := p.cache[key]; ok {
			p.mu.Unlock()
			return v, nil
		}
		p.mu.Unlock()

		tool, err := p.tools.Resolve(r)
		if err != nil {
			return nil, err
		}

		family, err := p.family()
		if err != nil {
			return nil, err
		}

		v, err := p.build(family, tool)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.cache[key] = v
		p.mu.Unlock()
		runtime.AddCleanup(r, p.evict, key)

		p.log.Debug("built toolchain driver",
			zap.Stringer("family", family), zap.String("tool", tool.Path()))

		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return built.(T), nil
}

func (p *Provider[T]) evict(key weak.Pointer[Resolver]) {
	p.mu.Lock()
	delete(p.cache, key)
	p.mu.Unlock()
}

// UpstreamDeps forwards the build-time dependency identifiers declared by
// the underlying tool provider.
func (p *Provider[T]) UpstreamDeps() []string {
	return p.tools.UpstreamDeps()
}
