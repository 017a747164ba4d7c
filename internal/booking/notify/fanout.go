// Package notify distributes a successful admission to the configured
// notification channels. Every channel is best-effort: a failure is logged
// and recorded, never propagated, and never stops the remaining channels.
package notify

import (
	"context"
	"fmt"

	"busrent/pkg/logger"
	"busrent/pkg/model"
)

// Channel is one notification target. Send must be safe to call with any
// successful admission outcome; configuration gating happens at construction
// time (unconfigured channels are simply not registered).
type Channel interface {
	Name() string
	Send(ctx context.Context, outcome *model.AdmissionOutcome) error
}

type ChannelResult struct {
	Channel string
	Err     error
}

// Report is the per-channel outcome of one fanout. It exists for logging and
// observability only; admission success was already decided before fanout ran.
type Report []ChannelResult

func (r Report) Failed() []ChannelResult {
	var failed []ChannelResult
	for _, result := range r {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

type Fanout struct {
	channels []Channel
	log      *logger.Logger
}

func NewFanout(log *logger.Logger, channels ...Channel) *Fanout {
	return &Fanout{channels: channels, log: log}
}

// Notify attempts every channel in order. Channels are mutually independent
// side effects; each failure is isolated to its channel.
func (f *Fanout) Notify(ctx context.Context, outcome *model.AdmissionOutcome) Report {
	report := make(Report, 0, len(f.channels))

	for _, ch := range f.channels {
		err := f.send(ctx, ch, outcome)
		report = append(report, ChannelResult{Channel: ch.Name(), Err: err})

		if err != nil {
			f.log.Error("Notification channel failed",
				"channel", ch.Name(),
				"task_id", outcome.TaskID,
				"error", err,
			)
		} else {
			f.log.Info("Notification sent",
				"channel", ch.Name(),
				"task_id", outcome.TaskID,
			)
		}
	}

	return report
}

func (f *Fanout) send(ctx context.Context, ch Channel, outcome *model.AdmissionOutcome) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel panicked: %v", r)
		}
	}()
	return ch.Send(ctx, outcome)
}
