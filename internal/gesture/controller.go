package gesture

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/newtab/internal/logger"
)

// DefaultLongPressDelay is how long a press must last to arm deletion.
const DefaultLongPressDelay = 480 * time.Millisecond

// State of the current press sequence.
type State int

const (
	StateIdle State = iota
	// StatePressed: pointer is down, the long-press timer is pending.
	StatePressed
	// StateArmed: the long press fired; the next click on the same tile is swallowed.
	StateArmed
)

func (s State) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StateArmed:
		return "armed"
	default:
		return "idle"
	}
}

// Action tells the front-end what to do with a click.
type Action string

const (
	ActionNavigate Action = "navigate"
	ActionSuppress Action = "suppress"
	ActionDisarm   Action = "disarm"
	ActionNone     Action = "none"
)

// Outcome is the result of a click-like event.
type Outcome struct {
	Action Action `json:"action"`
}

// Navigate reports whether the click should open the shortcut.
func (o Outcome) Navigate() bool { return o.Action == ActionNavigate }

// Board owns the single armed-for-deletion id.
type Board interface {
	Arm(id string)
	Disarm()
	Armed() string
	RemoveShortcut(id string)
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d. The default is time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Controller classifies pointer interactions on shortcut tiles as
// activation (navigate) or long press (arm for deletion).
//
// There is at most one outstanding timer. Every press bumps a generation
// counter so a timer that fires after being superseded does nothing.
type Controller struct {
	board  Board
	delay  time.Duration
	sched  Scheduler
	logger logger.Logger

	mu        sync.Mutex
	state     State
	pressedID string
	downAt    time.Time
	timer     Timer
	gen       uint64

	// a release that reached us before its press
	earlyUpID string
	earlyUpAt time.Time
}

// NewController creates a controller. A zero delay uses
// DefaultLongPressDelay and a nil scheduler uses real timers.
func NewController(board Board, delay time.Duration, sched Scheduler, log logger.Logger) *Controller {
	if delay <= 0 {
		delay = DefaultLongPressDelay
	}
	if sched == nil {
		sched = realScheduler{}
	}
	return &Controller{
		board:  board,
		delay:  delay,
		sched:  sched,
		logger: log,
	}
}

// Delay returns the long-press threshold.
func (c *Controller) Delay() time.Duration { return c.delay }

// State returns the current press state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PointerDown starts a press on tile id, cancelling any pending press.
// If the matching release already arrived, the press is classified at once.
func (c *Controller) PointerDown(id string, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked()
	c.gen++
	gen := c.gen

	c.state = StatePressed
	c.pressedID = id
	c.downAt = at

	upID, upAt := c.earlyUpID, c.earlyUpAt
	c.earlyUpID, c.earlyUpAt = "", time.Time{}
	if upID == id && !at.IsZero() && !upAt.IsZero() && !upAt.Before(at) {
		c.releaseLocked(upAt)
		return
	}
	c.timer = c.sched.AfterFunc(c.delay, func() { c.fire(gen) })
}

// PointerUp ends the press on tile id. The client timestamps decide: a
// release at least the delay after the press arms even if the timer has
// not run yet, and a shorter one undoes an arm the timer already made.
func (c *Controller) PointerUp(id string, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id != c.pressedID || c.state == StateIdle {
		c.earlyUpID, c.earlyUpAt = id, at
		return
	}

	switch c.state {
	case StatePressed:
		c.stopTimerLocked()
		c.releaseLocked(at)
	case StateArmed:
		if c.shortLocked(at) {
			if c.board.Armed() == id {
				c.board.Disarm()
			}
			c.state = StateIdle
			if c.logger != nil {
				c.logger.Debug("quick release undid long press", logger.String("id", id))
			}
		}
	}
}

// releaseLocked classifies the press that ends at at.
func (c *Controller) releaseLocked(at time.Time) {
	if !at.IsZero() && !c.downAt.IsZero() && at.Sub(c.downAt) >= c.delay {
		c.triggerLocked()
		return
	}
	c.state = StateIdle
}

// shortLocked reports whether both timestamps are known and closer than
// the delay.
func (c *Controller) shortLocked(at time.Time) bool {
	return !at.IsZero() && !c.downAt.IsZero() && at.Sub(c.downAt) < c.delay
}

// PointerCancel aborts the press on tile id without arming.
func (c *Controller) PointerCancel(id string, _ time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePressed || id != c.pressedID {
		return
	}
	c.stopTimerLocked()
	c.state = StateIdle
}

// PointerMove is accepted for completeness; movement does not cancel a press.
func (c *Controller) PointerMove(string, time.Time) {}

// Click resolves the click that follows a press on tile id.
func (c *Controller) Click(id string) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateArmed && id == c.pressedID {
		c.state = StateIdle
		return Outcome{Action: ActionSuppress}
	}
	if c.state == StatePressed {
		c.stopTimerLocked()
	}
	c.state = StateIdle

	switch armed := c.board.Armed(); {
	case armed == "":
		return Outcome{Action: ActionNavigate}
	case armed != id:
		c.board.Disarm()
		return Outcome{Action: ActionDisarm}
	default:
		// the armed tile shows its delete affordance instead of navigating
		return Outcome{Action: ActionSuppress}
	}
}

// ContextMenu is always suppressed on tiles.
func (c *Controller) ContextMenu(string) Outcome {
	return Outcome{Action: ActionSuppress}
}

// DeleteTapped removes tile id if it is the armed one.
func (c *Controller) DeleteTapped(id string) bool {
	if id == "" || c.board.Armed() != id {
		return false
	}
	c.board.RemoveShortcut(id)
	return true
}

// BackgroundClick disarms whatever is armed.
func (c *Controller) BackgroundClick() Outcome {
	if c.board.Armed() == "" {
		return Outcome{Action: ActionNone}
	}
	c.board.Disarm()
	return Outcome{Action: ActionDisarm}
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.state != StatePressed {
		return
	}
	c.timer = nil
	c.triggerLocked()
}

func (c *Controller) triggerLocked() {
	c.state = StateArmed
	c.board.Arm(c.pressedID)
	if c.logger != nil {
		c.logger.Debug("long press armed shortcut", logger.String("id", c.pressedID))
	}
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
