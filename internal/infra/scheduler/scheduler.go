package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Pacer blocks between poll ticks. The next tick time is computed from a cron
// schedule after the previous tick finishes, so ticks never overlap and no
// background goroutine is involved.
type Pacer struct {
	schedule cron.Schedule
	now      func() time.Time
}

// NewPacer parses a standard cron spec, e.g. "@every 600s" or "*/10 * * * *".
func NewPacer(spec string) (*Pacer, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &Pacer{
		schedule: schedule,
		now:      time.Now,
	}, nil
}

// Next returns the time of the tick following t.
func (p *Pacer) Next(t time.Time) time.Time {
	return p.schedule.Next(t)
}

// Wait sleeps until the next scheduled tick or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	now := p.now()
	timer := time.NewTimer(p.schedule.Next(now).Sub(now))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
