package services

import (
	"context"
	"time"

	"library-api/internal/core/domain"
)

// LoanService enforces the loan rules
type LoanService struct {
	loanRepo LoanRepository
	now      func() time.Time
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo LoanRepository) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		now:      time.Now,
	}
}

// Save lends the referenced book. A book can only be on one active loan at a time.
// The check and the insert are two separate storage calls.
func (s *LoanService) Save(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	loaned, err := s.loanRepo.ExistsActiveLoanForBook(ctx, loan.Book)
	if err != nil {
		return nil, err
	}
	if loaned {
		return nil, domain.NewBusinessError(domain.MsgBookAlreadyLoaned)
	}

	if loan.LoanDate.IsZero() {
		loan.LoanDate = domain.StartOfDay(s.now())
	}

	return s.loanRepo.Save(ctx, loan)
}

// GetByID gets a loan by ID
func (s *LoanService) GetByID(ctx context.Context, id uint) (*domain.Loan, bool, error) {
	return s.loanRepo.FindByID(ctx, id)
}

// Find lists loans whose book ISBN or customer matches filter
func (s *LoanService) Find(ctx context.Context, filter domain.LoanFilter, page domain.PageRequest) (*domain.Page[domain.Loan], error) {
	loans, total, err := s.loanRepo.FindByBookISBNOrCustomer(ctx, filter.ISBN, filter.Customer, page)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Loan]{Content: loans, Total: total, Request: page}, nil
}

// GetLoansByBook lists the loan history of one book
func (s *LoanService) GetLoansByBook(ctx context.Context, book *domain.Book, page domain.PageRequest) (*domain.Page[domain.Loan], error) {
	loans, total, err := s.loanRepo.FindByBook(ctx, book, page)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Loan]{Content: loans, Total: total, Request: page}, nil
}

// GetAllLateLoans returns active loans older than domain.LoanDays
func (s *LoanService) GetAllLateLoans(ctx context.Context) ([]domain.Loan, error) {
	cutoff := domain.StartOfDay(s.now()).AddDate(0, 0, -domain.LoanDays)
	return s.loanRepo.FindActiveLoanedBefore(ctx, cutoff)
}
