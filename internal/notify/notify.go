// Package notify turns run events into short-lived banners.
package notify

import (
	"fmt"
	"time"

	"github.com/san-kum/mrua/internal/motion"
)

const (
	DefaultVisible = 3 * time.Second
	DefaultFade    = 500 * time.Millisecond
)

// Message is the banner text for e.
func Message(e motion.Event) string {
	switch e.Kind {
	case motion.TargetReached:
		return fmt.Sprintf("Target distance of %gm reached in %.2f seconds!", e.Distance, e.Time)
	case motion.RunCompleted:
		return fmt.Sprintf("Run completed! Total distance: %.2fm in %.2f seconds", e.Distance, e.Time)
	default:
		return e.Kind.String()
	}
}

// Banner is one notification on the board.
type Banner struct {
	ID      int
	Event   motion.Event
	Text    string
	Shown   time.Time
	Opacity float64
}

// Board keeps the banners that are still on screen. It implements the frame
// observer interface of the loop driver and ignores frames.
type Board struct {
	clock   motion.Clock
	visible time.Duration
	fade    time.Duration
	nextID  int
	banners []Banner
}

// NewBoard returns a board using the default 3s display and 0.5s fade.
// A nil clock means the system clock.
func NewBoard(clock motion.Clock) *Board {
	return NewBoardWithTiming(clock, DefaultVisible, DefaultFade)
}

func NewBoardWithTiming(clock motion.Clock, visible, fade time.Duration) *Board {
	if clock == nil {
		clock = motion.SystemClock
	}
	return &Board{clock: clock, visible: visible, fade: fade}
}

// Push adds a banner for e and returns it.
func (b *Board) Push(e motion.Event) Banner {
	b.nextID++
	bn := Banner{ID: b.nextID, Event: e, Text: Message(e), Shown: b.clock.Now(), Opacity: 1}
	b.banners = append(b.banners, bn)
	return bn
}

func (b *Board) OnEvent(e motion.Event) { b.Push(e) }
func (b *Board) OnFrame(motion.State)   {}

// Active drops expired banners and returns the rest, oldest first, with their
// current opacity.
func (b *Board) Active() []Banner {
	now := b.clock.Now()
	kept := b.banners[:0]
	for _, bn := range b.banners {
		op := Opacity(now.Sub(bn.Shown), b.visible, b.fade)
		if op <= 0 {
			continue
		}
		bn.Opacity = op
		kept = append(kept, bn)
	}
	b.banners = kept
	return append([]Banner(nil), kept...)
}

// Clear removes every banner.
func (b *Board) Clear() { b.banners = b.banners[:0] }

// Lifetime is how long a banner stays on the board.
func (b *Board) Lifetime() time.Duration { return b.visible + b.fade }

// Opacity is 1 while age < visible, falls linearly to 0 over fade and is 0
// afterwards.
func Opacity(age, visible, fade time.Duration) float64 {
	switch {
	case age < visible:
		return 1
	case age >= visible+fade:
		return 0
	default:
		return 1 - float64(age-visible)/float64(fade)
	}
}
