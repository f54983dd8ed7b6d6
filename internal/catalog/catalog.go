package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"zeromonos/internal/eventbus"
)

// ErrLoadInProgress is returned when a load is already running
var ErrLoadInProgress = errors.New("municipality load already in progress")

// Source provides municipality names
type Source interface {
	Municipalities(ctx context.Context) ([]string, error)
}

// Loader fetches the municipality list and announces the result on the bus
type Loader interface {
	Load(ctx context.Context) error
}

// loader is the concrete implementation
type loader struct {
	bus         eventbus.EventBus
	source      Source
	useFallback bool
	ctx         context.Context

	mu      sync.Mutex
	loading bool
}

// NewLoader creates a loader that also reloads on MunicipalitiesRequested events.
// ctx bounds reloads triggered from the bus.
func NewLoader(ctx context.Context, bus eventbus.EventBus, source Source, useFallback bool) Loader {
	l := &loader{
		bus:         bus,
		source:      source,
		useFallback: useFallback,
		ctx:         ctx,
	}

	bus.Subscribe(eventbus.EventMunicipalitiesRequested, func(eventbus.DomainEvent) {
		if err := l.Load(l.ctx); err != nil && !errors.Is(err, ErrLoadInProgress) {
			log.Debug("catalog: reload finished with error", "err", err)
		}
	})

	return l
}

// Load fetches the names once and publishes MunicipalitiesLoaded or
// MunicipalitiesLoadFailed. An empty list counts as a failure.
func (l *loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return ErrLoadInProgress
	}
	l.loading = true
	l.mu.Unlock()

	log.Info("catalog: loading municipalities")
	names, err := l.fetch(ctx)
	if err == nil && len(names) == 0 {
		err = fmt.Errorf("municipality list is empty")
	}

	if err != nil {
		if l.useFallback {
			log.Warn("catalog: using built-in municipality list", "err", err)
			l.bus.Publish(eventbus.MunicipalitiesLoadedEvent{Names: Fallback(), Fallback: true})
			return nil
		}
		log.Error("catalog: failed to load municipalities", "err", err)
		l.bus.Publish(eventbus.MunicipalitiesLoadFailedEvent{Err: err})
		return err
	}

	log.Info("catalog: municipalities loaded", "count", len(names))
	l.bus.Publish(eventbus.MunicipalitiesLoadedEvent{Names: names})
	return nil
}

// fetch asks the source and releases the load guard before the result is
// published, so a reload requested in reaction to the result is accepted.
func (l *loader) fetch(ctx context.Context) ([]string, error) {
	defer func() {
		l.mu.Lock()
		l.loading = false
		l.mu.Unlock()
	}()
	return l.source.Municipalities(ctx)
}
