package models

import (
	"time"

	"library-api/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Catalog
// ============================================================

// Book represents books table
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ISBN      string    `gorm:"column:isbn;uniqueIndex;size:20;not null" json:"isbn"`
	Title     string    `gorm:"size:255" json:"title"`
	Author    string    `gorm:"size:255" json:"author"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// ToDomain converts the row into a domain book
func (b *Book) ToDomain() *domain.Book {
	return &domain.Book{
		ID:     b.ID,
		ISBN:   b.ISBN,
		Title:  b.Title,
		Author: b.Author,
	}
}

// BookFromDomain converts a domain book into a row
func BookFromDomain(b *domain.Book) *Book {
	return &Book{
		ID:     b.ID,
		ISBN:   b.ISBN,
		Title:  b.Title,
		Author: b.Author,
	}
}

// ============================================================
// Loans
// ============================================================

// Loan represents loans table
type Loan struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookID        uint      `gorm:"index;not null" json:"book_id"`
	Book          Book      `gorm:"foreignKey:BookID" json:"book"`
	Customer      string    `gorm:"size:255;not null" json:"customer"`
	CustomerEmail string    `gorm:"size:255" json:"customer_email"`
	LoanDate      time.Time `gorm:"type:date;index;not null" json:"loan_date"`
	Returned      *bool     `gorm:"index" json:"returned"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Loan) TableName() string {
	return "loans"
}

// ToDomain converts the row into a domain loan.
// Book is only populated when the association was preloaded.
func (l *Loan) ToDomain() *domain.Loan {
	loan := &domain.Loan{
		ID:            l.ID,
		Customer:      l.Customer,
		CustomerEmail: l.CustomerEmail,
		LoanDate:      l.LoanDate,
		Returned:      l.Returned,
	}
	if l.Book.ID != 0 {
		loan.Book = l.Book.ToDomain()
	} else if l.BookID != 0 {
		loan.Book = &domain.Book{ID: l.BookID}
	}
	return loan
}

// LoanFromDomain converts a domain loan into a row
func LoanFromDomain(l *domain.Loan) *Loan {
	row := &Loan{
		ID:            l.ID,
		Customer:      l.Customer,
		CustomerEmail: l.CustomerEmail,
		LoanDate:      l.LoanDate,
		Returned:      l.Returned,
	}
	if l.Book != nil {
		row.BookID = l.Book.ID
	}
	return row
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Book{},
		&Loan{},
	)
}
