package repositories

import (
	"context"
	"errors"
	"time"

	"library-api/internal/adapters/persistence/models"
	"library-api/internal/core/domain"

	"gorm.io/gorm"
)

const activeLoan = "(loans.returned IS NULL OR loans.returned = ?)"

// LoanRepository handles loan data access
type LoanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// ExistsActiveLoanForBook checks if book is currently lent out
func (r *LoanRepository) ExistsActiveLoanForBook(ctx context.Context, book *domain.Book) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("book_id = ?", book.ID).
		Where(activeLoan, false).
		Count(&count).Error
	return count > 0, err
}

// Save creates a new loan
func (r *LoanRepository) Save(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	row := models.LoanFromDomain(loan)
	if err := r.db.WithContext(ctx).Omit("Book").Save(row).Error; err != nil {
		return nil, err
	}

	saved := row.ToDomain()
	saved.Book = loan.Book
	return saved, nil
}

// FindByID gets a loan by ID with its book
func (r *LoanRepository) FindByID(ctx context.Context, id uint) (*domain.Loan, bool, error) {
	var row models.Loan
	err := r.db.WithContext(ctx).Preload("Book").Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.ToDomain(), true, nil
}

// FindByBookISBNOrCustomer lists loans for the book with isbn or for customer
func (r *LoanRepository) FindByBookISBNOrCustomer(ctx context.Context, isbn, customer string, page domain.PageRequest) ([]domain.Loan, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Joins("JOIN books ON books.id = loans.book_id").
		Where("books.isbn = ? OR loans.customer = ?", isbn, customer).
		Session(&gorm.Session{})
	return r.page(query, page)
}

// FindByBook lists the loans of book
func (r *LoanRepository) FindByBook(ctx context.Context, book *domain.Book, page domain.PageRequest) ([]domain.Loan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Loan{}).Where("loans.book_id = ?", book.ID).Session(&gorm.Session{})
	return r.page(query, page)
}

// FindActiveLoanedBefore lists unreturned loans made before the given day
func (r *LoanRepository) FindActiveLoanedBefore(ctx context.Context, before time.Time) ([]domain.Loan, error) {
	var rows []models.Loan
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("loans.loan_date < ?", before).
		Where(activeLoan, false).
		Order("loans.loan_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainLoans(rows), nil
}

func (r *LoanRepository) page(query *gorm.DB, page domain.PageRequest) ([]domain.Loan, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Loan
	err := query.
		Preload("Book").
		Order("loans.id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return toDomainLoans(rows), total, nil
}

func toDomainLoans(rows []models.Loan) []domain.Loan {
	loans := make([]domain.Loan, len(rows))
	for i := range rows {
		loans[i] = *rows[i].ToDomain()
	}
	return loans
}
