package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/keysmith/internal/model"
)

const (
	insertMoodQuery = `INSERT INTO mood_entries (user_id, mood, notes, created_at) VALUES (?, ?, ?, ?)`

	listMoodsQuery = `SELECT id, user_id, mood, notes, created_at
		FROM mood_entries WHERE user_id = ? ORDER BY created_at ASC, id ASC`

	moodCountsQuery = `SELECT mood, COUNT(*) AS n FROM mood_entries WHERE user_id = ?
		GROUP BY mood ORDER BY n DESC, mood ASC`
)

// MoodRepository handles mood journal persistence operations.
type MoodRepository struct {
	db *sql.DB
}

// NewMoodRepository creates a new MoodRepository.
func NewMoodRepository(db *sql.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Create inserts a mood entry and sets the generated ID on it.
func (r *MoodRepository) Create(ctx context.Context, entry *model.MoodEntry) error {
	result, err := r.db.ExecContext(ctx, insertMoodQuery,
		entry.UserID, entry.Mood, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// ListByUser returns the user's journal in chronological order.
func (r *MoodRepository) ListByUser(ctx context.Context, userID int64) ([]model.MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, listMoodsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.MoodEntry
	for rows.Next() {
		var e model.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountByMood returns how often each mood was recorded, most frequent first.
func (r *MoodRepository) CountByMood(ctx context.Context, userID int64) ([]model.MoodCount, error) {
	rows, err := r.db.QueryContext(ctx, moodCountsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.MoodCount
	for rows.Next() {
		var c model.MoodCount
		if err := rows.Scan(&c.Mood, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
