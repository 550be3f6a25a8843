package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPacer_InvalidSpec(t *testing.T) {
	_, err := NewPacer("every ten minutes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid poll schedule")
}

func TestPacer_Next(t *testing.T) {
	base := time.Date(2026, 10, 19, 12, 3, 0, 0, time.UTC)

	tests := []struct {
		spec string
		want time.Time
	}{
		{spec: "@every 600s", want: base.Add(10 * time.Minute)},
		{spec: "@every 10m", want: base.Add(10 * time.Minute)},
		{spec: "*/10 * * * *", want: time.Date(2026, 10, 19, 12, 10, 0, 0, time.UTC)},
		{spec: "@hourly", want: time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			p, err := NewPacer(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Next(base))
		})
	}
}

func TestPacer_WaitElapses(t *testing.T) {
	p, err := NewPacer("@every 1s")
	require.NoError(t, err)
	// @every rounds to whole seconds, so 1ms remains until the next tick.
	p.now = func() time.Time { return time.Now().Truncate(time.Second).Add(999 * time.Millisecond) }

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestPacer_WaitCanceled(t *testing.T) {
	p, err := NewPacer("@every 600s")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = p.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
