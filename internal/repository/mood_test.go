package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vaultpass/keysmith/internal/model"
)

func TestMoodCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewMoodRepository(db)
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(insertMoodQuery)).
		WithArgs(int64(4), "happy", "sunny walk", at).
		WillReturnResult(sqlmock.NewResult(21, 1))

	entry := &model.MoodEntry{UserID: 4, Mood: "happy", Notes: "sunny walk", CreatedAt: at}
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if entry.ID != 21 {
		t.Errorf("entry.ID = %d, want 21", entry.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMoodListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewMoodRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(listMoodsQuery)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "mood", "notes", "created_at"}).
			AddRow(1, 4, "tired", "", now.Add(-time.Hour)).
			AddRow(2, 4, "happy", "coffee", now))

	entries, err := repo.ListByUser(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[1].Notes != "coffee" {
		t.Errorf("ListByUser() = %+v", entries)
	}
}

func TestMoodCountByMood(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewMoodRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(moodCountsQuery)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"mood", "n"}).
			AddRow("happy", 3).
			AddRow("sad", 1))

	counts, err := repo.CountByMood(context.Background(), 4)
	if err != nil {
		t.Fatalf("CountByMood() unexpected error: %v", err)
	}
	if len(counts) != 2 || counts[0] != (model.MoodCount{Mood: "happy", Count: 3}) {
		t.Errorf("CountByMood() = %+v", counts)
	}
}
