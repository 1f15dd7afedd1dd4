package services

import (
	"context"
	"fmt"

	"library-api/internal/core/domain"
)

// BookService enforces the catalog rules
type BookService struct {
	bookRepo BookRepository
}

// NewBookService creates a new book service
func NewBookService(bookRepo BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

// Save registers a new book. The ISBN must not be in the catalog yet.
func (s *BookService) Save(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	exists, err := s.bookRepo.ExistsByISBN(ctx, book.ISBN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewBusinessError(domain.MsgDuplicateISBN)
	}

	return s.bookRepo.Save(ctx, book)
}

// GetByID gets a book by ID. A missing book is reported with found=false, not an error.
func (s *BookService) GetByID(ctx context.Context, id uint) (*domain.Book, bool, error) {
	return s.bookRepo.FindByID(ctx, id)
}

// GetByISBN gets a book by ISBN
func (s *BookService) GetByISBN(ctx context.Context, isbn string) (*domain.Book, bool, error) {
	return s.bookRepo.FindByISBN(ctx, isbn)
}

// Update persists book as given. Callers load the record first; existence is not re-checked.
func (s *BookService) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if !book.HasID() {
		return nil, fmt.Errorf("%w: book id cannot be empty", domain.ErrInvalidArgument)
	}

	return s.bookRepo.Save(ctx, book)
}

// Delete removes a persisted book
func (s *BookService) Delete(ctx context.Context, book *domain.Book) error {
	if !book.HasID() {
		return fmt.Errorf("%w: book id cannot be empty", domain.ErrInvalidArgument)
	}

	return s.bookRepo.Delete(ctx, book)
}

// Find lists books matching the non-empty fields of filter
func (s *BookService) Find(ctx context.Context, filter domain.Book, page domain.PageRequest) (*domain.Page[domain.Book], error) {
	books, total, err := s.bookRepo.FindPage(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Book]{
		Content: books,
		Total:   total,
		Request: page,
	}, nil
}
