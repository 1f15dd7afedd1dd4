package services

import (
	"context"
	"testing"
	"time"

	"library-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLoanService_Save(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("lends a book without an active loan", func(t *testing.T) {
		repo := new(mockLoanRepository)
		service := NewLoanService(repo)
		book := &domain.Book{ID: 1}
		saving := &domain.Loan{Book: book, Customer: "Fulano", LoanDate: today}
		saved := &domain.Loan{ID: 1, Book: book, Customer: "Fulano", LoanDate: today}

		repo.On("ExistsActiveLoanForBook", ctx, book).Return(false, nil)
		repo.On("Save", ctx, saving).Return(saved, nil)

		loan, err := service.Save(ctx, saving)

		require.NoError(t, err)
		assert.Equal(t, saved.ID, loan.ID)
		assert.Equal(t, saved.Book.ID, loan.Book.ID)
		assert.Equal(t, saved.Customer, loan.Customer)
		assert.Equal(t, saved.LoanDate, loan.LoanDate)
	})

	t.Run("rejects a book that is already loaned", func(t *testing.T) {
		repo := new(mockLoanRepository)
		service := NewLoanService(repo)
		book := &domain.Book{ID: 1}
		saving := &domain.Loan{Book: book, Customer: "Fulano", LoanDate: today}

		repo.On("ExistsActiveLoanForBook", ctx, book).Return(true, nil)

		loan, err := service.Save(ctx, saving)

		assert.Nil(t, loan)
		be, ok := domain.AsBusinessError(err)
		require.True(t, ok)
		assert.Equal(t, "Book already loaned", be.Message)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("loan date defaults to today", func(t *testing.T) {
		repo := new(mockLoanRepository)
		service := NewLoanService(repo)
		service.now = fixedClock(time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC))
		book := &domain.Book{ID: 1}

		repo.On("ExistsActiveLoanForBook", ctx, book).Return(false, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(l *domain.Loan) bool {
			return l.LoanDate.Equal(today)
		})).Return(&domain.Loan{ID: 7, Book: book, LoanDate: today}, nil)

		loan, err := service.Save(ctx, &domain.Loan{Book: book, Customer: "Fulano"})

		require.NoError(t, err)
		assert.Equal(t, uint(7), loan.ID)
		repo.AssertExpectations(t)
	})
}

func TestLoanService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLoanRepository)
	service := NewLoanService(repo)

	repo.On("FindByID", ctx, uint(9)).Return(nil, false, nil)

	loan, found, err := service.GetByID(ctx, 9)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, loan)
}

func TestLoanService_Find(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLoanRepository)
	service := NewLoanService(repo)
	pageRequest := domain.PageRequest{Page: 0, Size: 10}
	loans := []domain.Loan{{ID: 1, Book: &domain.Book{ID: 1, ISBN: "321"}, Customer: "Fulano"}}

	repo.On("FindByBookISBNOrCustomer", ctx, "321", "Fulano", pageRequest).Return(loans, int64(1), nil)

	page, err := service.Find(ctx, domain.LoanFilter{ISBN: "321", Customer: "Fulano"}, pageRequest)

	require.NoError(t, err)
	assert.Equal(t, loans, page.Content)
	assert.Equal(t, int64(1), page.Total)
}

func TestLoanService_GetLoansByBook(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLoanRepository)
	service := NewLoanService(repo)
	book := &domain.Book{ID: 1}
	pageRequest := domain.PageRequest{Page: 1, Size: 5}

	repo.On("FindByBook", ctx, book, pageRequest).Return([]domain.Loan{}, int64(6), nil)

	page, err := service.GetLoansByBook(ctx, book, pageRequest)

	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 2, page.TotalPages())
}

func TestLoanService_GetAllLateLoans(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLoanRepository)
	service := NewLoanService(repo)
	service.now = fixedClock(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC))
	cutoff := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	late := []domain.Loan{{ID: 3, Customer: "Fulano", LoanDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}}

	repo.On("FindActiveLoanedBefore", ctx, cutoff).Return(late, nil)

	loans, err := service.GetAllLateLoans(ctx)

	require.NoError(t, err)
	assert.Equal(t, late, loans)
}
