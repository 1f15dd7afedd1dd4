package repositories

import (
	"context"
	"errors"
	"strings"

	"library-api/internal/adapters/persistence/models"
	"library-api/internal/core/domain"

	"gorm.io/gorm"
)

// BookRepository handles book data access
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// ExistsByISBN checks if a book with isbn exists
func (r *BookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Book{}).Where("isbn = ?", isbn).Count(&count).Error
	return count > 0, err
}

// Save inserts a new book or updates an existing one
func (r *BookRepository) Save(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	row := models.BookFromDomain(book)

	var err error
	if row.ID == 0 {
		err = r.db.WithContext(ctx).Create(row).Error
	} else {
		// created_at is left alone
		err = r.db.WithContext(ctx).Model(row).Select("isbn", "title", "author").Updates(row).Error
	}
	if err != nil {
		return nil, err
	}

	return row.ToDomain(), nil
}

// FindByID gets a book by ID
func (r *BookRepository) FindByID(ctx context.Context, id uint) (*domain.Book, bool, error) {
	var row models.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	return found(&row, err)
}

// FindByISBN gets a book by ISBN
func (r *BookRepository) FindByISBN(ctx context.Context, isbn string) (*domain.Book, bool, error) {
	var row models.Book
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&row).Error
	return found(&row, err)
}

// Delete deletes a book
func (r *BookRepository) Delete(ctx context.Context, book *domain.Book) error {
	return r.db.WithContext(ctx).Delete(&models.Book{}, book.ID).Error
}

// FindPage lists books matching the non-empty fields of example.
// Strings match case-insensitively anywhere in the column.
func (r *BookRepository) FindPage(ctx context.Context, example domain.Book, page domain.PageRequest) ([]domain.Book, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Book{})
	if example.ID != 0 {
		query = query.Where("id = ?", example.ID)
	}
	query = whereContains(query, "isbn", example.ISBN)
	query = whereContains(query, "title", example.Title)
	query = whereContains(query, "author", example.Author).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Book
	if err := query.Order("id ASC").Offset(page.Offset()).Limit(page.Size).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	books := make([]domain.Book, len(rows))
	for i := range rows {
		books[i] = *rows[i].ToDomain()
	}

	return books, total, nil
}

func whereContains(query *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return query
	}
	return query.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}

func found(row *models.Book, err error) (*domain.Book, bool, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.ToDomain(), true, nil
}
