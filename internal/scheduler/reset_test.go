package scheduler

import (
	"context"
	"testing"
	"time"
)

type fakeResetter struct {
	calls chan struct{}
}

func (f *fakeResetter) Execute(ctx context.Context) error {
	f.calls <- struct{}{}
	return nil
}

func TestResetSchedulerFiresRepeatedly(t *testing.T) {
	f := &fakeResetter{calls: make(chan struct{}, 16)}

	NewResetScheduler(5*time.Millisecond, f).Start()

	for i := 0; i < 3; i++ {
		select {
		case <-f.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("scheduler did not fire (iteration %d)", i)
		}
	}
}
