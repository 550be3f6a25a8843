// internal/app/status_poller.go
package app

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
	"homework_status_bot/internal/domain/homework"
)

// StatusPoller polls the homework API and reports status changes.
// It is not safe for concurrent use: Tick and Run own the cursor and both reports.
type StatusPoller struct {
	api    HomeworkAPI
	sender MessageSender
	pacer  Pacer
	logger *logrus.Entry

	cursor   int64
	current  homework.Report
	previous homework.Report // Last report handed to the sender
}

func NewStatusPoller(api HomeworkAPI, sender MessageSender, pacer Pacer, logger *logrus.Entry) *StatusPoller {
	return &StatusPoller{
		api:    api,
		sender: sender,
		pacer:  pacer,
		logger: logger,
	}
}

// Run ticks forever, waiting on the pacer after every tick whatever its outcome.
// It returns only when the pacer reports that ctx is done.
func (p *StatusPoller) Run(ctx context.Context) error {
	p.logger.Info("Status poller started")
	for {
		p.Tick(ctx)
		if err := p.pacer.Wait(ctx); err != nil {
			p.logger.WithError(err).Info("Status poller stopped")
			return err
		}
	}
}

// Tick runs one fetch, validate, diff and notify cycle. Failures never escape.
func (p *StatusPoller) Tick(ctx context.Context) {
	err := p.poll(ctx)
	if err == nil {
		return
	}
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		p.logger.WithError(err).Info("Tick interrupted by shutdown")
		return
	}
	p.handleFailure(err)
}

// Cursor is the lower bound used for the next request.
func (p *StatusPoller) Cursor() int64 {
	return p.cursor
}

func (p *StatusPoller) poll(ctx context.Context) error {
	response, err := p.api.GetAPIAnswer(ctx, p.cursor)
	if err != nil {
		return err
	}
	p.cursor = homework.CursorFrom(response, p.cursor)

	homeworks, err := homework.CheckResponse(response)
	if err != nil {
		return err
	}

	var message string
	entry := p.logger
	if len(homeworks) > 0 {
		// Only the first record is reported, in API order.
		p.current = homework.RecordReport(homeworks[0])
		message, err = homework.ParseStatus(homeworks[0])
		if err != nil {
			return err
		}
		entry = entry.WithField("verdict", homework.Verdict(p.current.Output))
	} else {
		p.current.Output = homework.NoNewStatuses
		message = homework.NoNewStatuses
	}

	if p.current == p.previous {
		p.logger.WithField("homework", p.current.Name).Debug("Status unchanged")
		return nil
	}

	entry.WithFields(logrus.Fields{
		"homework": p.current.Name,
		"status":   p.current.Output,
	}).Info("Status changed")
	p.sender.SendMessage(message)
	p.previous = p.current
	return nil
}

func (p *StatusPoller) handleFailure(err error) {
	message := homework.FailurePrefix + err.Error()

	entry := p.logger.WithError(err)
	if kind, ok := failure.KindOf(err); ok {
		entry = entry.WithField("kind", kind.String())
	}
	entry.Error(message)

	if !failure.ShouldNotify(err) {
		return
	}

	p.current.Output = message
	if p.current == p.previous {
		return
	}

	if p.current.Name != "" {
		message = p.current.Name + ", " + message
	}
	p.sender.SendMessage(message)
	p.previous = p.current
}
