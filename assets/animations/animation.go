package animations

import (
	"errors"
	"fmt"
	"image"

	"github.com/automoto/actorcore/assets"
	"github.com/automoto/actorcore/shared/gamemath"
)

// ErrInvalidConfiguration is returned for sequences or animators that can
// never produce a valid frame.
var ErrInvalidConfiguration = errors.New("animations: invalid configuration")

// LoopPolicy decides what happens when a sequence reaches its last frame.
type LoopPolicy int

const (
	// CutToFirst jumps straight back to frame 0.
	CutToFirst LoopPolicy = iota
	// Reverse plays the strip backwards to frame 0, then forwards again.
	Reverse
)

func (p LoopPolicy) String() string {
	switch p {
	case CutToFirst:
		return "cut_to_first"
	case Reverse:
		return "reverse"
	}
	return fmt.Sprintf("LoopPolicy(%d)", int(p))
}

// ParseLoopPolicy accepts the names produced by String.
func ParseLoopPolicy(s string) (LoopPolicy, error) {
	switch s {
	case "cut_to_first", "":
		return CutToFirst, nil
	case "reverse":
		return Reverse, nil
	}
	return CutToFirst, fmt.Errorf("%w: unknown loop policy %q", ErrInvalidConfiguration, s)
}

// Sink receives draw calls: a texture, the source rectangle inside it and
// the destination rectangle on screen.
type Sink interface {
	DrawFrame(tex assets.Texture, src, dst gamemath.Rect)
}

// Sequence is a frame cursor over a horizontal strip of equally sized
// frames on a sprite sheet.
type Sequence struct {
	texture       assets.Texture
	origin        image.Point
	frameSize     image.Point
	frame         gamemath.Rect
	index         int
	last          int
	policy        LoopPolicy
	reverseActive bool
}

// NewSequence builds a sequence starting at frame 0. The strip begins at
// origin on tex and runs frameCount frames to the right.
func NewSequence(tex assets.Texture, origin, frameSize image.Point, frameCount int, policy LoopPolicy) (*Sequence, error) {
	if frameCount <= 0 {
		return nil, fmt.Errorf("%w: frame count %d", ErrInvalidConfiguration, frameCount)
	}
	if frameSize.X <= 0 || frameSize.Y <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfiguration, frameSize.X, frameSize.Y)
	}
	if policy != CutToFirst && policy != Reverse {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, policy)
	}

	s := &Sequence{
		texture:   tex,
		origin:    origin,
		frameSize: frameSize,
		last:      frameCount - 1,
		policy:    policy,
	}
	s.updateFrame()
	return s, nil
}

func (s *Sequence) updateFrame() {
	s.frame = gamemath.NewRect(
		s.origin.X+s.frameSize.X*s.index,
		s.origin.Y,
		s.frameSize.X,
		s.frameSize.Y,
	)
}

// Next advances the cursor one step according to the loop policy.
func (s *Sequence) Next() {
	switch s.policy {
	case CutToFirst:
		if s.index == s.last {
			s.index = 0
		} else {
			s.index++
		}
	case Reverse:
		// A single frame has nowhere to bounce to.
		if s.last == 0 {
			break
		}
		if s.reverseActive {
			if s.index == 0 {
				s.reverseActive = false
				s.index++
			} else {
				s.index--
			}
		} else {
			if s.index == s.last {
				s.reverseActive = true
				s.index--
			} else {
				s.index++
			}
		}
	}

	s.updateFrame()
}

// Reset rewinds to frame 0 playing forwards.
func (s *Sequence) Reset() {
	s.index = 0
	s.reverseActive = false
	s.updateFrame()
}

// Index returns the current frame number in [0, FrameCount()-1].
func (s *Sequence) Index() int { return s.index }

// Frame returns the source rectangle of the current frame.
func (s *Sequence) Frame() gamemath.Rect { return s.frame }

func (s *Sequence) FrameCount() int { return s.last + 1 }
func (s *Sequence) FrameSize() image.Point { return s.frameSize }
func (s *Sequence) Policy() LoopPolicy { return s.policy }
func (s *Sequence) Texture() assets.Texture { return s.texture }

// Clone returns an independent sequence with the same strip, rewound to
// frame 0. The texture is shared, not copied.
func (s *Sequence) Clone() *Sequence {
	c := &Sequence{
		texture:   s.texture,
		origin:    s.origin,
		frameSize: s.frameSize,
		last:      s.last,
		policy:    s.policy,
	}
	c.updateFrame()
	return c
}

// Draw hands the current frame to sink, scaled into dst.
func (s *Sequence) Draw(sink Sink, dst gamemath.Rect) {
	sink.DrawFrame(s.texture, s.frame, dst)
}
