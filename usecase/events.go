package usecase

import (
	"context"
	"encoding/json"
	"time"
)

// Lifecycle event names published to the user events topic.
const (
	EventUserCreated       = "user.created"
	EventUserDeleted       = "user.deleted"
	EventManagerReassigned = "user.manager_reassigned"
)

// userEvent is the wire payload of a lifecycle event.
type userEvent struct {
	Event string `json:"event"`
	// UserID is the id the operation targeted; for reassignments this is
	// the superseded id
	UserID string `json:"user_id,omitempty"`
	// NewUserID is the replacement id minted by a reassignment
	NewUserID  string    `json:"new_user_id,omitempty"`
	ManagerID  string    `json:"manager_id,omitempty"`
	MobNum     string    `json:"mob_num,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent emits the event best-effort: a broker failure is logged and
// never fails the request that produced it.
func (uc *userUseCase) publishEvent(ctx context.Context, event userEvent) {
	event.OccurredAt = time.Now().UTC()

	payload, err := json.Marshal(event)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to encode user event", "event", event.Event, "error", err)
		return
	}
	if err := uc.events.Produce(ctx, uc.eventsTopic, payload); err != nil {
		uc.logger.WarnContext(ctx, "Failed to publish user event", "event", event.Event, "topic", uc.eventsTopic, "error", err)
	}
}
