package poller

import (
	"context"
	"fmt"
	"time"

	"homeworkbot/internal/service"

	"go.uber.org/zap"
)

// APIClient fetches raw homework status answers
type APIClient interface {
	GetAPIAnswer(ctx context.Context, timestamp int64) (any, error)
}

// Notifier delivers text to the user and never fails
type Notifier interface {
	SendMessage(text string)
}

// Poller runs the poll -> validate -> notify -> sleep loop
type Poller struct {
	client   APIClient
	homework *service.HomeworkService
	notifier Notifier
	logger   *zap.Logger
	period   time.Duration

	// cursor is the from_date of the next request
	cursor int64
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a poller starting from the epoch
func New(
	client APIClient,
	homework *service.HomeworkService,
	notifier Notifier,
	logger *zap.Logger,
	period time.Duration,
) *Poller {
	return &Poller{
		client:   client,
		homework: homework,
		notifier: notifier,
		logger:   logger,
		period:   period,
		sleep:    sleepContext,
	}
}

// Cursor returns the timestamp the next cycle will poll from
func (p *Poller) Cursor() int64 {
	return p.cursor
}

// FailureMessage formats a cycle error for the user
func FailureMessage(err error) string {
	return fmt.Sprintf("Сбой в работе программы: %v", err)
}

// Run polls until ctx is canceled. Cycle errors are reported through the notifier.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("Poller started",
		zap.Duration("period", p.period),
		zap.Int64("from_date", p.cursor),
	)

	for {
		if err := p.Cycle(ctx); err != nil {
			if ctx.Err() != nil {
				p.logger.Info("Poller stopped")
				return nil
			}
			p.logger.Error("Cycle failed", zap.Error(err))
			p.notifier.SendMessage(FailureMessage(err))
		}

		if err := p.sleep(ctx, p.period); err != nil {
			p.logger.Info("Poller stopped")
			return nil
		}
	}
}

// Cycle makes one request and sends a message per changed homework.
// The cursor moves to current_date only when the whole batch was sent.
func (p *Poller) Cycle(ctx context.Context) error {
	answer, err := p.client.GetAPIAnswer(ctx, p.cursor)
	if err != nil {
		return err
	}

	homeworks, err := p.homework.CheckResponse(answer)
	if err != nil {
		return err
	}

	if len(homeworks) == 0 {
		p.logger.Debug("Нет домашних работ", zap.Int64("from_date", p.cursor))
		return nil
	}

	for _, homework := range homeworks {
		message, err := p.homework.ParseStatus(homework)
		if err != nil {
			return err
		}
		p.notifier.SendMessage(message)
	}

	currentDate, ok := p.homework.CurrentDate(answer)
	if !ok {
		p.logger.Warn("API answer has no valid current_date, cursor unchanged",
			zap.Int64("from_date", p.cursor),
		)
		return nil
	}

	p.cursor = currentDate
	p.logger.Debug("Cursor advanced", zap.Int64("from_date", p.cursor))
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
