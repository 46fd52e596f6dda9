package core

import "time"

// Key identifies a keyboard key independent of the platform layer.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyC
	KeyF
	KeyH
	KeyI
	KeyN
	KeyR
	KeyS
	KeyT
	KeyW
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyEqual
	KeyMinus
	KeyF3
	KeyF11
	keyCount
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)

// GlobalState is the platform snapshot taken once at the start of a frame.
// Simulations treat it as read-only.
type GlobalState struct {
	Window Size

	MouseX, MouseY   int
	MouseDX, MouseDY int
	ScrollX, ScrollY float64

	MouseDown    [mouseButtonCount]bool
	MousePressed [mouseButtonCount]bool

	FPS float64
}

// Down reports whether b is held this frame.
func (g GlobalState) Down(b MouseButton) bool { return b < mouseButtonCount && g.MouseDown[b] }

// Clicked reports whether b went down this frame.
func (g GlobalState) Clicked(b MouseButton) bool {
	return b < mouseButtonCount && g.MousePressed[b]
}

// Frame carries everything a simulation may read during one frame.
type Frame struct {
	// Now is the time elapsed since the frame loop started.
	Now time.Duration
	// Delta is the time elapsed since the previous frame.
	Delta time.Duration

	Global GlobalState

	pressed uint64
	held    uint64
}

// Begin resets per-frame input and stamps the frame time. Platform layers
// call it before recording input.
func (f *Frame) Begin(now time.Duration) {
	f.Delta = now - f.Now
	if f.Delta < 0 {
		f.Delta = 0
	}
	f.Now = now
	f.pressed = 0
	f.held = 0
	f.Global.MousePressed = [mouseButtonCount]bool{}
	f.Global.ScrollX, f.Global.ScrollY = 0, 0
}

// Press records that k went down this frame. A pressed key is also held.
func (f *Frame) Press(k Key) {
	if k == KeyUnknown || k >= keyCount {
		return
	}
	f.pressed |= 1 << k
	f.held |= 1 << k
}

// Hold records that k is down this frame.
func (f *Frame) Hold(k Key) {
	if k == KeyUnknown || k >= keyCount {
		return
	}
	f.held |= 1 << k
}

// Pressed reports whether k went down this frame and was not consumed.
func (f *Frame) Pressed(k Key) bool { return k < keyCount && f.pressed&(1<<k) != 0 }

// Held reports whether k is down this frame.
func (f *Frame) Held(k Key) bool { return k < keyCount && f.held&(1<<k) != 0 }

// Consume hides a key press from later readers in the same frame.
func (f *Frame) Consume(k Key) {
	if k < keyCount {
		f.pressed &^= 1 << k
	}
}

// ConsumeClick hides a mouse click from later readers in the same frame.
func (f *Frame) ConsumeClick(b MouseButton) {
	if b < mouseButtonCount {
		f.Global.MousePressed[b] = false
	}
}
