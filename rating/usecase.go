package rating

import (
	"context"
	"errors"
	"strings"
)

// Outcome describes what a Rate call did.
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeRemoved Outcome = "removed"
	OutcomeChanged Outcome = "changed"
)

type Service interface {
	Rate(ctx context.Context, userID, title string, kind Kind) (Outcome, error)
	RatingFor(ctx context.Context, userID, title string) (Rating, error)
	AddComment(ctx context.Context, userID, title, text string) (Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
	CommentsFor(ctx context.Context, title string) ([]Comment, error)
}

type Repository interface {
	// GetRating returns ErrRatingNotFound when the user has not rated the title.
	GetRating(ctx context.Context, userID, title string) (Rating, error)
	InsertRating(ctx context.Context, userID, title string, kind Kind) (Rating, error)
	UpdateRatingKind(ctx context.Context, id string, kind Kind) error
	DeleteRating(ctx context.Context, id string) error

	InsertComment(ctx context.Context, userID, title, text string) (Comment, error)
	// DeleteComment is scoped to the owner and returns ErrCommentNotFound
	// when no matching comment belongs to the user.
	DeleteComment(ctx context.Context, userID, commentID string) error
	CommentsForTitle(ctx context.Context, title string) ([]Comment, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// Rate toggles the user's rating for a title: no existing rating inserts one,
// the same kind removes it, a different kind flips it.
func (uc *Usecase) Rate(ctx context.Context, userID, title string, kind Kind) (Outcome, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if !kind.Valid() {
		return "", ErrInvalidKind
	}

	existing, err := uc.r.GetRating(ctx, userID, title)
	if err != nil {
		if errors.Is(err, ErrRatingNotFound) {
			if _, err := uc.r.InsertRating(ctx, userID, title, kind); err != nil {
				return "", err
			}
			return OutcomeAdded, nil
		}
		return "", err
	}

	if existing.Kind == kind {
		if err := uc.r.DeleteRating(ctx, existing.ID); err != nil {
			return "", err
		}
		return OutcomeRemoved, nil
	}

	if err := uc.r.UpdateRatingKind(ctx, existing.ID, kind); err != nil {
		return "", err
	}
	return OutcomeChanged, nil
}

func (uc *Usecase) RatingFor(ctx context.Context, userID, title string) (Rating, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Rating{}, ErrTitleRequired
	}
	return uc.r.GetRating(ctx, userID, title)
}

func (uc *Usecase) AddComment(ctx context.Context, userID, title, text string) (Comment, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" {
		return Comment{}, ErrTitleRequired
	}
	if text == "" {
		return Comment{}, ErrEmptyComment
	}
	return uc.r.InsertComment(ctx, userID, title, text)
}

func (uc *Usecase) DeleteComment(ctx context.Context, userID, commentID string) error {
	if strings.TrimSpace(commentID) == "" {
		return ErrCommentNotFound
	}
	return uc.r.DeleteComment(ctx, userID, commentID)
}

func (uc *Usecase) CommentsFor(ctx context.Context, title string) ([]Comment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	comments, err := uc.r.CommentsForTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []Comment{}
	}
	return comments, nil
}
