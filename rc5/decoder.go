package rc5

import "github.com/sparques/irmouse"

// Stats counts what the decoder has seen since it was created.
type Stats struct {
	Edges    int
	Noise    int
	Rejected int
	Accepted int
}

// StateMachine implements irmouse.EdgeHandler for RC5 frames.
type StateMachine struct {
	CmdHandler func(Command)

	sampler  *Sampler
	watchdog irmouse.Watchdog
	stats    Stats
}

// NewStateMachine creates an RC5 decoder. cmdHandler is called from the
// interrupt handler for every frame that passes validation, so it must not
// block; hand the command off to the main loop.
func NewStateMachine(sampler *Sampler, watchdog irmouse.Watchdog, cmdHandler func(Command)) *StateMachine {
	if watchdog == nil {
		watchdog = irmouse.NopWatchdog
	}
	return &StateMachine{
		CmdHandler: cmdHandler,
		sampler:    sampler,
		watchdog:   watchdog,
	}
}

// SetCmdHandler lets you change the callback for when a command is received.
func (sm *StateMachine) SetCmdHandler(cmdHandler func(Command)) {
	sm.CmdHandler = cmdHandler
}

// HandleFallingEdge implements the irmouse.EdgeHandler interface
func (sm *StateMachine) HandleFallingEdge() {
	sm.watchdog.Reset()
	sm.stats.Edges++

	f, ok := sm.sampler.Capture()
	if !ok {
		sm.stats.Noise++
		return
	}
	if !f.Valid() {
		sm.stats.Rejected++
		return
	}
	sm.stats.Accepted++
	if sm.CmdHandler != nil {
		sm.CmdHandler(f.Command())
	}
}

func (sm *StateMachine) Stats() Stats {
	return sm.stats
}
