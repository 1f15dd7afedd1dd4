package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"library-api/internal/core/domain"

	"github.com/sirupsen/logrus"
)

// LateLoanMessage is the reminder sent for every late loan
const LateLoanMessage = "Atenção! Você tem um empréstimo atrasado. Favor devolver o livro o mais rápido possível."

// NotificationService logs late-loan reminders and, when a webhook is configured, posts them there
type NotificationService struct {
	webhookURL string
	client     *http.Client
	logger     *logrus.Logger
}

// NewNotificationService creates a new notification service.
// An empty webhookURL disables delivery; reminders are still logged.
func NewNotificationService(webhookURL string, logger *logrus.Logger) *NotificationService {
	return &NotificationService{
		webhookURL: webhookURL,
		client:     &http.Client{},
		logger:     logger,
	}
}

// IsEnabled checks if webhook delivery is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.webhookURL != ""
}

// NotifyLateLoan sends the late-loan reminder for loan
func (s *NotificationService) NotifyLateLoan(ctx context.Context, loan domain.Loan) error {
	fields := logrus.Fields{
		"loan_id":   loan.ID,
		"customer":  loan.Customer,
		"email":     loan.CustomerEmail,
		"loan_date": loan.LoanDate.Format("2006-01-02"),
	}
	if loan.Book != nil {
		fields["isbn"] = loan.Book.ISBN
	}
	s.logger.WithFields(fields).Info("Late loan reminder")

	if !s.IsEnabled() {
		return nil
	}
	if loan.CustomerEmail == "" {
		s.logger.WithField("loan_id", loan.ID).Debug("No customer email, skipping late loan webhook")
		return nil
	}

	data := url.Values{}
	data.Set("to", loan.CustomerEmail)
	data.Set("customer", loan.Customer)
	data.Set("message", LateLoanMessage)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBufferString(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("late loan webhook returned status %d", resp.StatusCode)
	}
	return nil
}
