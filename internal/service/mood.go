package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/repository"
)

// Moods lists the values a journal entry may record.
var Moods = []string{"happy", "neutral", "sad", "angry", "tired"}

const (
	MaxNotesLength = 2000

	// ExportTimeFormat is the timestamp layout used in CSV exports.
	ExportTimeFormat = "2006-01-02 15:04:05"
)

var (
	ErrInvalidMood  = errors.New("mood must be one of happy, neutral, sad, angry, tired")
	ErrNotesTooLong = errors.New("notes must be at most 2000 characters")
)

// MoodService manages per-user mood journals. The user id passed to every
// method is the journal's owner; no state is kept between calls.
type MoodService struct {
	repo *repository.MoodRepository
	now  func() time.Time
}

// NewMoodService creates a new MoodService.
func NewMoodService(repo *repository.MoodRepository) *MoodService {
	return &MoodService{repo: repo, now: time.Now}
}

// Record adds an entry to the user's journal.
func (s *MoodService) Record(ctx context.Context, userID int64, req model.MoodRequest) (model.MoodResponse, error) {
	mood := strings.ToLower(strings.TrimSpace(req.Mood))
	if !slices.Contains(Moods, mood) {
		return model.MoodResponse{}, ErrInvalidMood
	}
	notes := strings.TrimSpace(req.Notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return model.MoodResponse{}, ErrNotesTooLong
	}

	entry := model.MoodEntry{
		UserID:    userID,
		Mood:      mood,
		Notes:     notes,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return model.MoodResponse{}, err
	}

	return moodResponse(entry), nil
}

// History returns the user's entries, oldest first.
func (s *MoodService) History(ctx context.Context, userID int64) ([]model.MoodResponse, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.MoodResponse, len(entries))
	for i, e := range entries {
		result[i] = moodResponse(e)
	}
	return result, nil
}

// Distribution counts entries per mood, most frequent first.
func (s *MoodService) Distribution(ctx context.Context, userID int64) ([]model.MoodCount, error) {
	counts, err := s.repo.CountByMood(ctx, userID)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []model.MoodCount{}
	}
	return counts, nil
}

// ExportCSV writes the user's journal to w with a Date,Mood,Notes header.
func (s *MoodService) ExportCSV(ctx context.Context, userID int64, w io.Writer) error {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Mood", "Notes"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.CreatedAt.Format(ExportTimeFormat), e.Mood, e.Notes}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func moodResponse(e model.MoodEntry) model.MoodResponse {
	return model.MoodResponse{
		ID:        e.ID,
		Mood:      e.Mood,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}
