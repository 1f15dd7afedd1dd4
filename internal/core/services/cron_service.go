package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultLateLoanSchedule runs the late-loan check every day at 08:00
const DefaultLateLoanSchedule = "0 8 * * *"

// CronService runs scheduled jobs
type CronService struct {
	cron        *cron.Cron
	loanService *LoanService
	notifier    Notifier
	logger      *logrus.Logger
	timeout     time.Duration
}

// NewCronService creates a new cron service and registers the late-loan job on schedule
func NewCronService(loanService *LoanService, notifier Notifier, schedule string, logger *logrus.Logger) (*CronService, error) {
	if schedule == "" {
		schedule = DefaultLateLoanSchedule
	}

	s := &CronService{
		cron:        cron.New(),
		loanService: loanService,
		notifier:    notifier,
		logger:      logger,
		timeout:     time.Minute,
	}

	if _, err := s.cron.AddFunc(schedule, func() { s.NotifyLateLoans(context.Background()) }); err != nil {
		return nil, err
	}

	return s, nil
}

// Start starts the scheduler in its own goroutine
func (s *CronService) Start() {
	s.cron.Start()
	s.logger.Info("Cron service started")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Cron service stopped")
}

// NotifyLateLoans sends a reminder for every late loan and returns how many were delivered
func (s *CronService) NotifyLateLoans(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	loans, err := s.loanService.GetAllLateLoans(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load late loans")
		return 0
	}

	sent := 0
	for _, loan := range loans {
		if err := s.notifier.NotifyLateLoan(ctx, loan); err != nil {
			s.logger.WithError(err).WithField("loan_id", loan.ID).Warn("Failed to notify late loan")
			continue
		}
		sent++
	}

	if len(loans) > 0 {
		s.logger.WithFields(logrus.Fields{"late": len(loans), "notified": sent}).Info("Late loan reminders sent")
	}
	return sent
}
