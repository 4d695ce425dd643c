package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/repository"
)

const (
	MinBookYear = 0
	MaxBookYear = 2100
)

var (
	ErrBookFieldsRequired = errors.New("title, author and genre are required")
	ErrInvalidYear        = errors.New("year must be between 0 and 2100")
	ErrKeywordRequired    = errors.New("search keyword is required")
	ErrBookNotFound       = errors.New("book not found")
)

// LibraryService manages a user's personal book library.
type LibraryService struct {
	repo *repository.BookRepository
	now  func() time.Time
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(repo *repository.BookRepository) *LibraryService {
	return &LibraryService{repo: repo, now: time.Now}
}

// AddBook validates and stores a new book.
func (s *LibraryService) AddBook(ctx context.Context, userID int64, req model.BookRequest) (model.BookResponse, error) {
	book := model.Book{
		UserID:    userID,
		Title:     strings.TrimSpace(req.Title),
		Author:    strings.TrimSpace(req.Author),
		Year:      req.Year,
		Genre:     strings.TrimSpace(req.Genre),
		Read:      req.Read,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}

	if book.Title == "" || book.Author == "" || book.Genre == "" {
		return model.BookResponse{}, ErrBookFieldsRequired
	}
	if book.Year < MinBookYear || book.Year > MaxBookYear {
		return model.BookResponse{}, ErrInvalidYear
	}

	if err := s.repo.Create(ctx, &book); err != nil {
		return model.BookResponse{}, err
	}

	return bookResponse(book), nil
}

// ListBooks returns every book in the library, newest first.
func (s *LibraryService) ListBooks(ctx context.Context, userID int64) ([]model.BookResponse, error) {
	books, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return booksToResponse(books), nil
}

// SearchBooks finds books whose title or author contains keyword.
func (s *LibraryService) SearchBooks(ctx context.Context, userID int64, keyword string) ([]model.BookResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrKeywordRequired
	}

	books, err := s.repo.Search(ctx, userID, keyword)
	if err != nil {
		return nil, err
	}
	return booksToResponse(books), nil
}

// SetRead marks a book as read or unread.
func (s *LibraryService) SetRead(ctx context.Context, userID, bookID int64, read bool) error {
	return translateBookErr(s.repo.SetRead(ctx, userID, bookID, read))
}

// RemoveBook deletes a book from the library.
func (s *LibraryService) RemoveBook(ctx context.Context, userID, bookID int64) error {
	return translateBookErr(s.repo.Delete(ctx, userID, bookID))
}

// Stats reports total, read and unread counts.
func (s *LibraryService) Stats(ctx context.Context, userID int64) (model.LibraryStats, error) {
	total, read, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return model.LibraryStats{}, err
	}
	return model.LibraryStats{Total: total, Read: read, Unread: total - read}, nil
}

func translateBookErr(err error) error {
	if errors.Is(err, repository.ErrBookNotFound) {
		return ErrBookNotFound
	}
	return err
}

func bookResponse(b model.Book) model.BookResponse {
	return model.BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Year:      b.Year,
		Genre:     b.Genre,
		Read:      b.Read,
		CreatedAt: b.CreatedAt,
	}
}

// booksToResponse never returns nil so that empty libraries encode as [].
func booksToResponse(books []model.Book) []model.BookResponse {
	result := make([]model.BookResponse, len(books))
	for i, b := range books {
		result[i] = bookResponse(b)
	}
	return result
}
