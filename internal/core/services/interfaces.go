package services

import (
	"context"
	"time"

	"library-api/internal/core/domain"
)

// BookRepository is the storage contract the catalog rules depend on
type BookRepository interface {
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	Save(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id uint) (*domain.Book, bool, error)
	FindByISBN(ctx context.Context, isbn string) (*domain.Book, bool, error)
	Delete(ctx context.Context, book *domain.Book) error
	FindPage(ctx context.Context, example domain.Book, page domain.PageRequest) ([]domain.Book, int64, error)
}

// LoanRepository is the storage contract the loan rules depend on
type LoanRepository interface {
	ExistsActiveLoanForBook(ctx context.Context, book *domain.Book) (bool, error)
	Save(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
	FindByID(ctx context.Context, id uint) (*domain.Loan, bool, error)
	FindByBookISBNOrCustomer(ctx context.Context, isbn, customer string, page domain.PageRequest) ([]domain.Loan, int64, error)
	FindByBook(ctx context.Context, book *domain.Book, page domain.PageRequest) ([]domain.Loan, int64, error)
	FindActiveLoanedBefore(ctx context.Context, before time.Time) ([]domain.Loan, error)
}

// Notifier delivers late-loan reminders
type Notifier interface {
	NotifyLateLoan(ctx context.Context, loan domain.Loan) error
}
