package collection

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bazaardirectory/internal/domain"
)

const boothsCollection = "booths"

type boothRepository struct {
	store domain.CollectionStore
	ids   domain.IDGenerator
	mu    sync.Mutex
}

func NewBoothRepository(store domain.CollectionStore, ids domain.IDGenerator) domain.BoothRepository {
	return &boothRepository{
		store: store,
		ids:   ids,
	}
}

func (r *boothRepository) load(ctx context.Context) ([]*domain.Booth, error) {
	var booths []*domain.Booth
	if err := r.store.Load(ctx, boothsCollection, &booths); err != nil {
		return nil, fmt.Errorf("load booths: %w", err)
	}
	return booths, nil
}

func (r *boothRepository) List(ctx context.Context) ([]*domain.Booth, error) {
	booths, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if booths == nil {
		booths = []*domain.Booth{}
	}
	return booths, nil
}

func (r *boothRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booth, error) {
	booths, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Booth, 0)
	for _, b := range booths {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *boothRepository) Create(ctx context.Context, booth *domain.Booth) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booths, err := r.load(ctx)
	if err != nil {
		return err
	}
	booth.ID = r.ids.Next()
	booths = append(booths, booth)
	if err := r.store.Save(ctx, boothsCollection, booths); err != nil {
		return fmt.Errorf("save booths: %w", err)
	}
	return nil
}

func (r *boothRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booths, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := booths[:0]
	for _, b := range booths {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(booths) {
		return domain.ErrNotFound
	}
	if err := r.store.Save(ctx, boothsCollection, kept); err != nil {
		return fmt.Errorf("save booths: %w", err)
	}
	return nil
}

func (r *boothRepository) DeleteByEventID(ctx context.Context, eventID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booths, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	kept := booths[:0]
	for _, b := range booths {
		if b.EventID != eventID {
			kept = append(kept, b)
		}
	}
	removed := len(booths) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := r.store.Save(ctx, boothsCollection, kept); err != nil {
		return 0, fmt.Errorf("save booths: %w", err)
	}
	return removed, nil
}

func (r *boothRepository) Search(ctx context.Context, query string) ([]*domain.Booth, error) {
	booths, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]*domain.Booth, 0)
	for _, b := range booths {
		if matches(b, q) {
			out = append(out, b)
		}
	}
	return out, nil
}

// matches reports whether q occurs in the booth's name, description, or any
// product. A booth without products is matched on name and description only.
func matches(b *domain.Booth, q string) bool {
	if strings.Contains(strings.ToLower(b.Name), q) ||
		strings.Contains(strings.ToLower(b.Description), q) {
		return true
	}
	for _, p := range b.Products {
		if strings.Contains(strings.ToLower(p), q) {
			return true
		}
	}
	return false
}
