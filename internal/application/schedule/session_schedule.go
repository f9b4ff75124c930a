package schedule

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron/v2"

	"todo-tracker/internal/domain/usecase/session"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/msg"
)

// Locker guards a job so only one instance runs it at a time.
type Locker interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

type SessionScheduler struct {
	scheduler gocron.Scheduler
	useCase   session.UseCase
	locker    Locker
}

// NewSessionScheduler builds the expired session cleanup job. locker may be nil when running a single instance.
func NewSessionScheduler(useCase session.UseCase, locker Locker) (*SessionScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &SessionScheduler{scheduler: scheduler, useCase: useCase, locker: locker}, nil
}

// InitSessionScheduleTasks registers the cleanup on the given five field cron expression and starts the scheduler
func (scheduler *SessionScheduler) InitSessionScheduleTasks(crontab string) error {
	_, err := scheduler.scheduler.NewJob(
		gocron.CronJob(crontab, false),
		gocron.NewTask(scheduler.ClearExpiredSessions),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule session cleanup: %w", err)
	}

	scheduler.scheduler.Start()
	return nil
}

func (scheduler *SessionScheduler) ClearExpiredSessions(ctx context.Context) {
	if scheduler.locker != nil {
		acquired, err := scheduler.locker.TryLock(ctx)
		if err != nil {
			log.Error(msg.GetMessage("session.error.clear-failed", err.Error()))
			return
		}
		if !acquired {
			log.Debug(msg.GetMessage("session.cron.skipped"))
			return
		}
		defer func() {
			if err := scheduler.locker.Unlock(ctx); err != nil {
				log.Warn(msg.GetMessage("session.error.unlock-failed", err.Error()))
			}
		}()
	}

	log.Info(msg.GetMessage("session.cron.start"))

	removed, err := scheduler.useCase.ClearExpired(ctx)
	if err != nil {
		log.Error(msg.GetMessage("session.error.clear-failed", err.Error()))
		return
	}

	log.Info(msg.GetMessage("session.cron.end", removed))
}

func (scheduler *SessionScheduler) Shutdown() error {
	return scheduler.scheduler.Shutdown()
}
