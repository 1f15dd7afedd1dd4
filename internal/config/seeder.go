package config

import (
	"library-api/internal/adapters/persistence/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, log *logrus.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

var sampleBooks = []models.Book{
	{ISBN: "9788535914849", Title: "Dom Casmurro", Author: "Machado de Assis"},
	{ISBN: "9788525406958", Title: "Grande Sertão: Veredas", Author: "João Guimarães Rosa"},
	{ISBN: "9788535910667", Title: "A Hora da Estrela", Author: "Clarice Lispector"},
	{ISBN: "9780131103627", Title: "The C Programming Language", Author: "Brian W. Kernighan"},
	{ISBN: "9780134190440", Title: "The Go Programming Language", Author: "Alan A. A. Donovan"},
}

// Run executes all seeders
func (s *Seeder) Run() error {
	s.log.Info("Running database seeders")

	created, err := s.seedBooks()
	if err != nil {
		return err
	}

	s.log.WithField("books_created", created).Info("Database seeding completed")
	return nil
}

// seedBooks inserts the sample catalog, skipping ISBNs already present
func (s *Seeder) seedBooks() (int, error) {
	created := 0
	for _, book := range sampleBooks {
		var count int64
		if err := s.db.Model(&models.Book{}).Where("isbn = ?", book.ISBN).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		row := book
		if err := s.db.Create(&row).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
