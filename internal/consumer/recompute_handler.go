package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seawatts/nugget/internal/observability"
)

// Recomputer abstracts the insights service for the handler.
type Recomputer interface {
	Recompute(ctx context.Context, babyID string) error
}

// RecomputeHandler re-evaluates a baby's achievements whenever an activity
// event lands. It tolerates a missing baby_id header by falling back to the
// payload, since older producers only carried it in the body.
type RecomputeHandler struct {
	service Recomputer
}

// NewRecomputeHandler constructs a handler over the insights service.
func NewRecomputeHandler(service Recomputer) *RecomputeHandler {
	return &RecomputeHandler{service: service}
}

// Handle extracts the baby ID and triggers a recompute.
func (h *RecomputeHandler) Handle(ctx context.Context, msg Message) error {
	babyID := msg.BabyID
	if babyID == "" {
		var body struct {
			BabyID string `json:"baby_id"`
		}
		if err := json.Unmarshal(msg.Payload, &body); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		babyID = body.BabyID
	}
	if babyID == "" {
		return fmt.Errorf("event %s carries no baby id", msg.EventType)
	}

	err := h.service.Recompute(ctx, babyID)
	observability.RecordRecompute("event", err)
	return err
}
