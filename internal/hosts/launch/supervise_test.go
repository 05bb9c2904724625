package launch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// untilDone - задача вроде HTTP сервера: живёт до отмены.
func untilDone(stopped chan<- struct{}) Task {
	return func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return nil
	}
}

func TestSupervise_FailureStopsSiblings(t *testing.T) {
	boom := errors.New("no floor")
	stopped := make(chan struct{})

	err := Supervise(context.Background(),
		func(context.Context) error { return boom },
		untilDone(stopped),
	)

	assert.ErrorIs(t, err, boom)
	select {
	case <-stopped:
	default:
		t.Fatal("сосед не остановлен")
	}
}

func TestSupervise_CancelIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	done := make(chan error, 1)
	go func() { done <- Supervise(ctx, untilDone(stopped)) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Supervise не вернулся после отмены")
	}
}
