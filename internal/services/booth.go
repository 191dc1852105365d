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

type boothService struct {
	boothRepo      domain.BoothRepository
	uploadStore    domain.UploadStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewBoothService(boothRepo domain.BoothRepository,
	uploadStore domain.UploadStore,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BoothService {
	return &boothService{
		boothRepo:      boothRepo,
		uploadStore:    uploadStore,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *boothService) ListBooths(ctx context.Context, eventID string) ([]*domain.Booth, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		booths []*domain.Booth
		err    error
	)
	if eventID != "" {
		booths, err = s.boothRepo.ListByEventID(ctx, eventID)
	} else {
		booths, err = s.boothRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list booths: %w", err)
	}
	return booths, nil
}

func (s *boothService) CreateBooth(ctx context.Context, booth *domain.Booth, photos []*multipart.FileHeader) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// The booth form requires a selected event. The reference is never
	// checked against the events collection; orphans are accepted.
	if booth.EventID == "" {
		return fmt.Errorf("%w: eventId is required", domain.ErrValidation)
	}

	booth.CreatedAt = time.Now().UTC()
	names, err := s.uploadStore.AttachUpTo(photos, domain.MaxBoothPhotos)
	if err != nil {
		return fmt.Errorf("attach photos: %w", err)
	}
	booth.Photos = names

	if err := s.boothRepo.Create(ctx, booth); err != nil {
		return fmt.Errorf("create booth: %w", err)
	}
	s.logger.InfoContext(ctx, "booth created", "boothId", booth.ID, "eventId", booth.EventID, "photos", len(booth.Photos))
	return nil
}

func (s *boothService) DeleteBooth(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.boothRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete booth: %w", err)
	}
	return nil
}

func (s *boothService) SearchBooths(ctx context.Context, query string) ([]*domain.Booth, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booths, err := s.boothRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search booths: %w", err)
	}
	return booths, nil
}
