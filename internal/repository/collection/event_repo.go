// Package collection implements the event and booth repositories as
// read-modify-write sequences over a domain.CollectionStore.
//
// Each repository serializes its own load-mutate-save sequences with an
// in-process mutex, which prevents lost updates between concurrent requests
// in one process. Writers in separate processes are still last-write-wins;
// that limitation is accepted for this system's admin write volume.
package collection

import (
	"context"
	"fmt"
	"sync"

	"bazaardirectory/internal/domain"
)

const eventsCollection = "events"

type eventRepository struct {
	store domain.CollectionStore
	ids   domain.IDGenerator
	mu    sync.Mutex
}

func NewEventRepository(store domain.CollectionStore, ids domain.IDGenerator) domain.EventRepository {
	return &eventRepository{
		store: store,
		ids:   ids,
	}
}

func (r *eventRepository) load(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := r.store.Load(ctx, eventsCollection, &events); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load(ctx)
	if err != nil {
		return err
	}
	event.ID = r.ids.Next()
	events = append(events, event)
	if err := r.store.Save(ctx, eventsCollection, events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, e := range events {
		if e.ID == event.ID {
			events[i] = event
			if err := r.store.Save(ctx, eventsCollection, events); err != nil {
				return fmt.Errorf("save events: %w", err)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return domain.ErrNotFound
	}
	if err := r.store.Save(ctx, eventsCollection, kept); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}
