package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/vaultpass/keysmith/internal/model"
)

var ErrBookNotFound = errors.New("book not found")

const (
	insertBookQuery = `INSERT INTO books (user_id, title, author, year, genre, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`

	listBooksQuery = `SELECT id, user_id, title, author, year, genre, is_read, created_at
		FROM books WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	searchBooksQuery = `SELECT id, user_id, title, author, year, genre, is_read, created_at
		FROM books WHERE user_id = ? AND (LOWER(title) LIKE ? OR LOWER(author) LIKE ?)
		ORDER BY title ASC, id ASC`

	setReadQuery    = `UPDATE books SET is_read = ? WHERE user_id = ? AND id = ?`
	deleteBookQuery = `DELETE FROM books WHERE user_id = ? AND id = ?`
	bookStatsQuery  = `SELECT COUNT(*), COALESCE(SUM(is_read), 0) FROM books WHERE user_id = ?`
)

// BookRepository handles library persistence operations.
type BookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new BookRepository.
func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Create inserts a book and sets the generated ID on it.
func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	result, err := r.db.ExecContext(ctx, insertBookQuery,
		book.UserID, book.Title, book.Author, book.Year, book.Genre, book.Read, book.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	book.ID = id
	return nil
}

// ListByUser returns every book owned by the user, newest first.
func (r *BookRepository) ListByUser(ctx context.Context, userID int64) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, listBooksQuery, userID)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

// Search returns the user's books whose title or author contains keyword, ignoring case.
func (r *BookRepository) Search(ctx context.Context, userID int64, keyword string) ([]model.Book, error) {
	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"

	rows, err := r.db.QueryContext(ctx, searchBooksQuery, userID, pattern, pattern)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

// SetRead updates the read flag of a book.
// The DSN must set clientFoundRows=true so that an unchanged row still counts as matched.
func (r *BookRepository) SetRead(ctx context.Context, userID, id int64, read bool) error {
	result, err := r.db.ExecContext(ctx, setReadQuery, read, userID, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

// Delete removes a book from the user's library.
func (r *BookRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, deleteBookQuery, userID, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

// Stats counts the user's books and how many of them have been read.
func (r *BookRepository) Stats(ctx context.Context, userID int64) (total, read int, err error) {
	err = r.db.QueryRowContext(ctx, bookStatsQuery, userID).Scan(&total, &read)
	return total, read, err
}

func scanBooks(rows *sql.Rows) ([]model.Book, error) {
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Title, &b.Author, &b.Year, &b.Genre, &b.Read, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
