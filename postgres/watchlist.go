package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"movieflow/watchlist"
)

// WatchlistEntryModel represents the database model for watchlist entries.
// The unique constraint on (user_id, title) is the source of truth for
// duplicate detection.
type WatchlistEntryModel struct {
	ID      string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:watchlist_entries_user_id_title_key"`
	Title   string    `gorm:"not null;uniqueIndex:watchlist_entries_user_id_title_key"`
	AddedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (WatchlistEntryModel) TableName() string {
	return "watchlist_entries"
}

// WatchlistRepository implements [watchlist.Repository].
type WatchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository creates a new watchlist repository.
func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Insert implements [watchlist.Repository]. A unique-constraint violation
// on (user_id, title) maps to [watchlist.ErrAlreadyInList].
func (r *WatchlistRepository) Insert(ctx context.Context, userID, title string) (watchlist.Entry, error) {
	model := WatchlistEntryModel{
		UserID: userID,
		Title:  title,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err, "title") {
			return watchlist.Entry{}, watchlist.ErrAlreadyInList
		}
		return watchlist.Entry{}, err
	}
	return toDomainEntry(model), nil
}

// Delete implements [watchlist.Repository]. The delete is scoped to the
// owner so one user cannot remove another user's entry.
func (r *WatchlistRepository) Delete(ctx context.Context, userID, entryID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&WatchlistEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return watchlist.ErrEntryNotFound
	}
	return nil
}

// AllForUser implements [watchlist.Repository], newest entries first.
func (r *WatchlistRepository) AllForUser(ctx context.Context, userID string) ([]watchlist.Entry, error) {
	var models []WatchlistEntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]watchlist.Entry, 0, len(models))
	for _, m := range models {
		entries = append(entries, toDomainEntry(m))
	}
	return entries, nil
}

// Exists implements [watchlist.Repository].
func (r *WatchlistRepository) Exists(ctx context.Context, userID, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WatchlistEntryModel{}).
		Where("user_id = ? AND title = ?", userID, title).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainEntry(m WatchlistEntryModel) watchlist.Entry {
	return watchlist.Entry{
		ID:      m.ID,
		UserID:  m.UserID,
		Title:   m.Title,
		AddedAt: m.AddedAt,
	}
}
