package animations

import (
	"testing"

	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAnimator(t *testing.T, seq *Sequence, period float64, paused bool) *Animator {
	t.Helper()
	a, err := NewAnimator(seq, period, paused)
	require.NoError(t, err)
	return a
}

func TestAnimatorAdvancesOncePerPeriod(t *testing.T) {
	seq := mustSequence(t, 8, CutToFirst)
	a := mustAnimator(t, seq, 0.5, false)

	a.Update(0.25)
	assert.Equal(t, 0, seq.Index())
	a.Update(0.25)
	assert.Equal(t, 1, seq.Index())

	a.Update(0.25)
	a.Update(0.25)
	assert.Equal(t, 2, seq.Index())
}

func TestAnimatorAdvancesWhenStepsSumToPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period float64
		step   float64
		steps  int
	}{
		{"sixty tps against 0.1s", 0.1, 1.0 / 60, 6},
		{"tenths against 1s", 1.0, 0.1, 10},
		{"tenths against 0.3s", 0.3, 0.1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := mustSequence(t, 8, CutToFirst)
			a := mustAnimator(t, seq, tt.period, false)

			for i := 0; i < tt.steps-1; i++ {
				a.Update(tt.step)
			}
			require.Equal(t, 0, seq.Index())

			a.Update(tt.step)
			assert.Equal(t, 1, seq.Index())

			for i := 0; i < tt.steps; i++ {
				a.Update(tt.step)
			}
			assert.Equal(t, 2, seq.Index())
		})
	}
}

func TestAnimatorDiscardsOvershoot(t *testing.T) {
	seq := mustSequence(t, 8, CutToFirst)
	a := mustAnimator(t, seq, 0.5, false)

	// One long frame only ever advances a single step.
	a.Update(2)
	assert.Equal(t, 1, seq.Index())

	a.Update(0.25)
	assert.Equal(t, 1, seq.Index())
}

func TestAnimatorZeroPeriodAdvancesEveryUpdate(t *testing.T) {
	seq := mustSequence(t, 3, CutToFirst)
	a := mustAnimator(t, seq, 0, false)

	a.Update(0)
	a.Update(0)
	assert.Equal(t, 2, seq.Index())
}

func TestPausedAnimatorDoesNotAdvance(t *testing.T) {
	seq := mustSequence(t, 4, CutToFirst)
	a := mustAnimator(t, seq, 0.25, true)

	for i := 0; i < 10; i++ {
		a.Update(0.5)
	}
	assert.Equal(t, 0, seq.Index())

	a.Resume()
	assert.False(t, a.Paused())
	a.Update(0.25)
	assert.Equal(t, 1, seq.Index())

	a.Pause()
	a.Update(0.25)
	assert.Equal(t, 1, seq.Index())
}

func TestSwapRestartsTimer(t *testing.T) {
	first := mustSequence(t, 4, CutToFirst)
	second := mustSequence(t, 4, CutToFirst)
	a := mustAnimator(t, first, 0.5, false)

	a.Update(0.25)
	a.Swap(second)
	assert.Same(t, second, a.Sequence())

	a.Update(0.25)
	assert.Equal(t, 0, second.Index(), "timer must restart on swap")
	a.Update(0.25)
	assert.Equal(t, 1, second.Index())
	assert.Equal(t, 0, first.Index())
}

func TestSwapWithTimer(t *testing.T) {
	seq := mustSequence(t, 4, CutToFirst)
	a := mustAnimator(t, nil, 0.5, false)

	require.NoError(t, a.SwapWithTimer(seq, 0.25, true))
	assert.Equal(t, 0.25, a.Period())
	assert.True(t, a.Paused())

	err := a.SwapWithTimer(seq, -1, false)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, 0.25, a.Period())
}

func TestNewAnimatorRejectsNegativePeriod(t *testing.T) {
	a, err := NewAnimator(nil, -0.1, false)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestAnimatorWithoutSequence(t *testing.T) {
	a := mustAnimator(t, nil, 0.1, false)
	sink := &recordingSink{}

	assert.NotPanics(t, func() { a.Update(1) })
	assert.False(t, a.Draw(sink, gamemath.NewRect(0, 0, 8, 8)))
	assert.Empty(t, sink.calls)
}

func TestAnimatorDraw(t *testing.T) {
	seq := mustSequence(t, 2, CutToFirst)
	a := mustAnimator(t, seq, 0.1, false)
	sink := &recordingSink{}

	assert.True(t, a.Draw(sink, gamemath.NewRect(4, 4, 32, 48)))
	require.Len(t, sink.calls, 1)
	assert.Equal(t, gamemath.NewRect(4, 4, 32, 48), sink.calls[0].dst)
}
