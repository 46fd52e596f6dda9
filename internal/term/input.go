package term

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"multisim/internal/core"
)

// Terminals report key presses but no releases; a key counts as held until
// holdLinger passes without a repeat.
const holdLinger = 150 * time.Millisecond

var specialKeys = map[tcell.Key]core.Key{
	tcell.KeyEscape: core.KeyEscape,
	tcell.KeyEnter:  core.KeyEnter,
	tcell.KeyUp:     core.KeyUp,
	tcell.KeyDown:   core.KeyDown,
	tcell.KeyLeft:   core.KeyLeft,
	tcell.KeyRight:  core.KeyRight,
	tcell.KeyF3:     core.KeyF3,
	tcell.KeyF11:    core.KeyF11,
}

var runeKeys = map[rune]core.Key{
	' ': core.KeySpace,
	'a': core.KeyA,
	'c': core.KeyC,
	'f': core.KeyF,
	'h': core.KeyH,
	'i': core.KeyI,
	'n': core.KeyN,
	'r': core.KeyR,
	's': core.KeyS,
	't': core.KeyT,
	'w': core.KeyW,
	'1': core.KeyDigit1,
	'2': core.KeyDigit2,
	'3': core.KeyDigit3,
	'4': core.KeyDigit4,
	'=': core.KeyEqual,
	'+': core.KeyEqual,
	'-': core.KeyMinus,
}

var buttons = [...]struct {
	mask tcell.ButtonMask
	b    core.MouseButton
}{
	{tcell.ButtonPrimary, core.MouseLeft},
	{tcell.ButtonSecondary, core.MouseRight},
	{tcell.ButtonMiddle, core.MouseMiddle},
}

// Input accumulates tcell events between frames and replays them into a
// core.Frame.
type Input struct {
	interrupt func()

	cols, rows int
	pressed    []core.Key
	lastSeen   map[core.Key]time.Duration

	mouseX, mouseY int
	down           tcell.ButtonMask
	clicked        [3]bool
	scrollX        float64
	scrollY        float64
}

// NewInput returns an Input for a cols x rows screen. interrupt is called on
// Ctrl-C.
func NewInput(cols, rows int, interrupt func()) *Input {
	return &Input{
		interrupt: interrupt,
		cols:      cols,
		rows:      rows,
		lastSeen:  map[core.Key]time.Duration{},
	}
}

// Size returns the screen size in cells as of the last resize event.
func (in *Input) Size() (cols, rows int) { return in.cols, in.rows }

// Handle records one event observed at now.
func (in *Input) Handle(ev tcell.Event, now time.Duration) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		in.cols, in.rows = ev.Size()
	case *tcell.EventKey:
		in.handleKey(ev, now)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	}
}

func (in *Input) handleKey(ev *tcell.EventKey, now time.Duration) {
	var k core.Key
	switch ev.Key() {
	case tcell.KeyCtrlC:
		if in.interrupt != nil {
			in.interrupt()
		}
		return
	case tcell.KeyRune:
		k = runeKeys[unicode.ToLower(ev.Rune())]
	default:
		k = specialKeys[ev.Key()]
	}
	if k == core.KeyUnknown {
		return
	}
	in.pressed = append(in.pressed, k)
	in.lastSeen[k] = now
}

func (in *Input) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	in.mouseX, in.mouseY = col*CellW+CellW/2, row*CellH+CellH/2

	mask := ev.Buttons()
	for _, b := range buttons {
		if mask&b.mask != 0 && in.down&b.mask == 0 {
			in.clicked[b.b] = true
		}
	}
	in.down = mask & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)

	switch {
	case mask&tcell.WheelUp != 0:
		in.scrollY++
	case mask&tcell.WheelDown != 0:
		in.scrollY--
	case mask&tcell.WheelLeft != 0:
		in.scrollX--
	case mask&tcell.WheelRight != 0:
		in.scrollX++
	}
}

// Fill writes the input gathered since the previous call into f. f.Begin must
// already have run for this frame.
func (in *Input) Fill(f *core.Frame) {
	for _, k := range in.pressed {
		f.Press(k)
	}
	in.pressed = in.pressed[:0]
	for k, seen := range in.lastSeen {
		if f.Now-seen > holdLinger {
			delete(in.lastSeen, k)
			continue
		}
		f.Hold(k)
	}

	g := &f.Global
	g.Window = core.Size{W: in.cols * CellW, H: in.rows * CellH}
	g.MouseDX, g.MouseDY = in.mouseX-g.MouseX, in.mouseY-g.MouseY
	g.MouseX, g.MouseY = in.mouseX, in.mouseY
	for _, b := range buttons {
		g.MouseDown[b.b] = in.down&b.mask != 0
		g.MousePressed[b.b] = in.clicked[b.b]
	}
	in.clicked = [3]bool{}
	g.ScrollX, g.ScrollY = in.scrollX, in.scrollY
	in.scrollX, in.scrollY = 0, 0
}
