package worker

import (
	"context"
	"time"

	"github.com/ds124wfegd/contactremind/internal/service"

	"github.com/sirupsen/logrus"
)

// UpcomingCheckWorker runs the scheduler sweep on a fixed interval so the
// job also fires without an external cron. Each tick is an independent
// stateless sweep; a tick re-running inside the same 24h window can
// re-deliver notifications (delivery is at-least-once, no dedupe guard).
type UpcomingCheckWorker struct {
	schedulerService service.SchedulerService
	interval         time.Duration
}

func NewUpcomingCheckWorker(schedulerService service.SchedulerService, interval time.Duration) *UpcomingCheckWorker {
	return &UpcomingCheckWorker{
		schedulerService: schedulerService,
		interval:         interval,
	}
}

func (w *UpcomingCheckWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Upcoming check worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Upcoming check worker stopped")
			return
		case <-ticker.C:
			w.runSweep(ctx)
		}
	}
}

// runSweep выполняет один проход планировщика и логирует итоги
func (w *UpcomingCheckWorker) runSweep(ctx context.Context) {
	logrus.Info("Starting upcoming events sweep")

	report, err := w.schedulerService.CheckUpcomingEvents(ctx)
	if err != nil {
		logrus.Errorf("Upcoming events sweep failed: %v", err)
		return
	}

	success, partial, failed := report.Counts()
	logrus.Infof("Upcoming events sweep completed: %d successful, %d partial, %d failed",
		success, partial, failed)

	if partial > 0 || failed > 0 {
		logrus.Warnf("%d events had delivery problems during sweep", partial+failed)
	}
}
