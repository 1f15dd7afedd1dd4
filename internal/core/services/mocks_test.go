package services

import (
	"context"
	"time"

	"library-api/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	args := m.Called(ctx, isbn)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookRepository) Save(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	args := m.Called(ctx, book)
	saved, _ := args.Get(0).(*domain.Book)
	return saved, args.Error(1)
}

func (m *mockBookRepository) FindByID(ctx context.Context, id uint) (*domain.Book, bool, error) {
	args := m.Called(ctx, id)
	book, _ := args.Get(0).(*domain.Book)
	return book, args.Bool(1), args.Error(2)
}

func (m *mockBookRepository) FindByISBN(ctx context.Context, isbn string) (*domain.Book, bool, error) {
	args := m.Called(ctx, isbn)
	book, _ := args.Get(0).(*domain.Book)
	return book, args.Bool(1), args.Error(2)
}

func (m *mockBookRepository) Delete(ctx context.Context, book *domain.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *mockBookRepository) FindPage(ctx context.Context, example domain.Book, page domain.PageRequest) ([]domain.Book, int64, error) {
	args := m.Called(ctx, example, page)
	books, _ := args.Get(0).([]domain.Book)
	return books, args.Get(1).(int64), args.Error(2)
}

type mockLoanRepository struct {
	mock.Mock
}

func (m *mockLoanRepository) ExistsActiveLoanForBook(ctx context.Context, book *domain.Book) (bool, error) {
	args := m.Called(ctx, book)
	return args.Bool(0), args.Error(1)
}

func (m *mockLoanRepository) Save(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	args := m.Called(ctx, loan)
	saved, _ := args.Get(0).(*domain.Loan)
	return saved, args.Error(1)
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id uint) (*domain.Loan, bool, error) {
	args := m.Called(ctx, id)
	loan, _ := args.Get(0).(*domain.Loan)
	return loan, args.Bool(1), args.Error(2)
}

func (m *mockLoanRepository) FindByBookISBNOrCustomer(ctx context.Context, isbn, customer string, page domain.PageRequest) ([]domain.Loan, int64, error) {
	args := m.Called(ctx, isbn, customer, page)
	loans, _ := args.Get(0).([]domain.Loan)
	return loans, args.Get(1).(int64), args.Error(2)
}

func (m *mockLoanRepository) FindByBook(ctx context.Context, book *domain.Book, page domain.PageRequest) ([]domain.Loan, int64, error) {
	args := m.Called(ctx, book, page)
	loans, _ := args.Get(0).([]domain.Loan)
	return loans, args.Get(1).(int64), args.Error(2)
}

func (m *mockLoanRepository) FindActiveLoanedBefore(ctx context.Context, before time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, before)
	loans, _ := args.Get(0).([]domain.Loan)
	return loans, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyLateLoan(ctx context.Context, loan domain.Loan) error {
	return m.Called(ctx, loan).Error(0)
}
