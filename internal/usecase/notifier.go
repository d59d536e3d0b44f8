package usecase

import "context"

// Schedule change events published to the configured webhook, if any.
const (
	EventScheduleGenerated = "schedule.generated"
	EventCascadeConfirmed  = "schedule.cascade_confirmed"
	EventFixtureMoved      = "fixture.moved"
	EventResultRecorded    = "fixture.result_recorded"
)

// Notifier fans schedule changes out to external listeners. Publishing is
// best-effort: implementations log and absorb delivery failures so a dead
// listener never blocks a schedule write.
type Notifier interface {
	Publish(ctx context.Context, event string, payload any)
}

type NoopNotifier struct{}

func (NoopNotifier) Publish(context.Context, string, any) {}
