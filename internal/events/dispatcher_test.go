package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var got []string
	d.Subscribe(EventSurveyRecorded, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.SubjectID)
		return nil
	})
	d.Subscribe(EventSurveyRecorded, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.SubjectID)
		return nil
	})
	d.Subscribe(EventUserCreated, func(context.Context, Event) error {
		t.Error("handler for a different event type must not run")
		return nil
	})

	d.Publish(context.Background(), Event{
		ID:        "e1",
		Type:      EventSurveyRecorded,
		SubjectID: "ENC-0042",
		Timestamp: time.Now(),
	})

	if len(got) != 2 || got[0] != "first:ENC-0042" || got[1] != "second:ENC-0042" {
		t.Fatalf("unexpected handler invocations: %v", got)
	}
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	ran := false
	d.Subscribe(EventUserUpdated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserUpdated, func(context.Context, Event) error {
		ran = true
		return nil
	})

	d.Publish(context.Background(), Event{ID: "e2", Type: EventUserUpdated})

	if !ran {
		t.Fatal("expected the second handler to run despite the first failing")
	}
}
