package animations

import (
	"fmt"

	"github.com/automoto/actorcore/shared/gamemath"
)

// timerEpsilon absorbs float drift when elapsed steps sum to the period,
// e.g. six 1/60 steps against 0.1.
const timerEpsilon = 1e-9

// Animator advances one Sequence on a fixed period. It may hold no
// sequence at all, in which case updates and draws do nothing.
type Animator struct {
	sequence   *Sequence
	frameTimer float64
	maxTimer   float64
	paused     bool
}

// NewAnimator creates an animator that advances seq every maxTimer seconds.
// seq may be nil.
func NewAnimator(seq *Sequence, maxTimer float64, paused bool) (*Animator, error) {
	if maxTimer < 0 {
		return nil, fmt.Errorf("%w: timer period %v", ErrInvalidConfiguration, maxTimer)
	}
	return &Animator{
		sequence:   seq,
		frameTimer: maxTimer,
		maxTimer:   maxTimer,
		paused:     paused,
	}, nil
}

// Swap replaces the active sequence and restarts the frame timer. The
// period and paused flag are kept.
func (a *Animator) Swap(seq *Sequence) {
	a.sequence = seq
	a.frameTimer = a.maxTimer
}

// SwapWithTimer replaces the sequence, the period and the paused flag.
func (a *Animator) SwapWithTimer(seq *Sequence, maxTimer float64, paused bool) error {
	if maxTimer < 0 {
		return fmt.Errorf("%w: timer period %v", ErrInvalidConfiguration, maxTimer)
	}
	a.maxTimer = maxTimer
	a.paused = paused
	a.Swap(seq)
	return nil
}

// Update counts the timer down by elapsed seconds and advances the sequence
// once the timer runs out. Overshoot is discarded, not carried over.
func (a *Animator) Update(elapsed float64) {
	if a.paused || a.sequence == nil {
		return
	}

	a.frameTimer -= elapsed
	if a.frameTimer <= timerEpsilon {
		a.sequence.Next()
		a.frameTimer = a.maxTimer
	}
}

func (a *Animator) Pause() { a.paused = true }
func (a *Animator) Resume() { a.paused = false }

func (a *Animator) Paused() bool { return a.paused }

// Sequence returns the active sequence, or nil.
func (a *Animator) Sequence() *Sequence { return a.sequence }

// Period returns the configured seconds between frame advances.
func (a *Animator) Period() float64 { return a.maxTimer }

// Draw renders the current frame into dst. It reports false, drawing
// nothing, when no sequence is active.
func (a *Animator) Draw(sink Sink, dst gamemath.Rect) bool {
	if a.sequence == nil {
		return false
	}
	a.sequence.Draw(sink, dst)
	return true
}
