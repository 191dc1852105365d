package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"bazaardirectory/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	boothRepo      domain.BoothRepository
	uploadStore    domain.UploadStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	boothRepo domain.BoothRepository,
	uploadStore domain.UploadStore,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		boothRepo:      boothRepo,
		uploadStore:    uploadStore,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event, image *multipart.FileHeader) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.CreatedAt = time.Now().UTC()
	if image != nil {
		name, err := s.uploadStore.Attach(image)
		if err != nil {
			return fmt.Errorf("attach image: %w", err)
		}
		event.Image = &name
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	s.logger.InfoContext(ctx, "event created", "eventId", event.ID, "name", event.Name)
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, patch domain.EventUpdate, image *multipart.FileHeader) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// Merge semantics: only fields carried by the request change.
	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if image != nil {
		name, err := s.uploadStore.Attach(image)
		if err != nil {
			return nil, fmt.Errorf("attach image: %w", err)
		}
		event.Image = &name
	}
	now := time.Now().UTC()
	event.UpdatedAt = &now

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	// The event removal is authoritative. Booth cleanup is best-effort: a
	// failure here leaves orphaned booths behind but never fails the delete.
	removed, err := s.boothRepo.DeleteByEventID(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "booth cleanup failed after event delete", "eventId", id, "err", err)
		return nil
	}
	s.logger.InfoContext(ctx, "event deleted", "eventId", id, "boothsRemoved", removed)
	return nil
}
