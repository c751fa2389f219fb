package watchlist

import (
	"context"
	"strings"
)

type Service interface {
	Add(ctx context.Context, userID, title string) (Entry, error)
	Remove(ctx context.Context, userID, entryID string) error
	List(ctx context.Context, userID string) ([]Entry, error)
	Contains(ctx context.Context, userID, title string) (bool, error)
}

type Repository interface {
	// Insert creates the entry, returning ErrAlreadyInList when the
	// (user, title) pair already exists. The uniqueness decision is made
	// by the storage constraint, not by a prior read.
	Insert(ctx context.Context, userID, title string) (Entry, error)

	// Delete removes the entry scoped to both id and owner, returning
	// ErrEntryNotFound when no such entry belongs to the user.
	Delete(ctx context.Context, userID, entryID string) error

	// AllForUser returns the user's entries newest first.
	AllForUser(ctx context.Context, userID string) ([]Entry, error)

	Exists(ctx context.Context, userID, title string) (bool, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) Add(ctx context.Context, userID, title string) (Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Entry{}, ErrTitleRequired
	}
	return uc.r.Insert(ctx, userID, title)
}

func (uc *Usecase) Remove(ctx context.Context, userID, entryID string) error {
	if strings.TrimSpace(entryID) == "" {
		return ErrEntryNotFound
	}
	return uc.r.Delete(ctx, userID, entryID)
}

// List never returns nil: a user with no entries gets an empty slice.
func (uc *Usecase) List(ctx context.Context, userID string) ([]Entry, error) {
	entries, err := uc.r.AllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Contains is a live membership check against storage, not a snapshot.
func (uc *Usecase) Contains(ctx context.Context, userID, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, nil
	}
	return uc.r.Exists(ctx, userID, title)
}
