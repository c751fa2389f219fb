package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"movieflow/rating"
)

// RatingModel represents the database model for ratings. A user holds at
// most one rating per title, enforced by the unique constraint.
type RatingModel struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:ratings_user_id_title_key"`
	Title     string    `gorm:"not null;uniqueIndex:ratings_user_id_title_key"`
	Kind      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// CommentModel represents the database model for comments.
type CommentModel struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    string    `gorm:"type:uuid;not null"`
	Title     string    `gorm:"not null"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// RatingRepository implements [rating.Repository].
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository.
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// GetRating implements [rating.Repository].
func (r *RatingRepository) GetRating(ctx context.Context, userID, title string) (rating.Rating, error) {
	var model RatingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND title = ?", userID, title).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rating.Rating{}, rating.ErrRatingNotFound
		}
		return rating.Rating{}, err
	}
	return toDomainRating(model), nil
}

// InsertRating implements [rating.Repository].
func (r *RatingRepository) InsertRating(ctx context.Context, userID, title string, kind rating.Kind) (rating.Rating, error) {
	model := RatingModel{
		UserID: userID,
		Title:  title,
		Kind:   string(kind),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return rating.Rating{}, err
	}
	return toDomainRating(model), nil
}

// UpdateRatingKind implements [rating.Repository].
func (r *RatingRepository) UpdateRatingKind(ctx context.Context, id string, kind rating.Kind) error {
	result := r.db.WithContext(ctx).
		Model(&RatingModel{}).
		Where("id = ?", id).
		Update("kind", string(kind))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rating.ErrRatingNotFound
	}
	return nil
}

// DeleteRating implements [rating.Repository].
func (r *RatingRepository) DeleteRating(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RatingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rating.ErrRatingNotFound
	}
	return nil
}

// InsertComment implements [rating.Repository].
func (r *RatingRepository) InsertComment(ctx context.Context, userID, title, text string) (rating.Comment, error) {
	model := CommentModel{
		UserID: userID,
		Title:  title,
		Text:   text,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return rating.Comment{}, err
	}
	return toDomainComment(model), nil
}

// DeleteComment implements [rating.Repository], scoped to the owner.
func (r *RatingRepository) DeleteComment(ctx context.Context, userID, commentID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", commentID, userID).
		Delete(&CommentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rating.ErrCommentNotFound
	}
	return nil
}

// CommentsForTitle implements [rating.Repository], newest comments first.
func (r *RatingRepository) CommentsForTitle(ctx context.Context, title string) ([]rating.Comment, error) {
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Where("title = ?", title).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	comments := make([]rating.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, toDomainComment(m))
	}
	return comments, nil
}

func toDomainRating(m RatingModel) rating.Rating {
	return rating.Rating{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Kind:      rating.Kind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

func toDomainComment(m CommentModel) rating.Comment {
	return rating.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
