package tx

import (
	"github.com/rs/zerolog/log"
)

// Manager owns the stack of nested transaction frames, oldest first.
type Manager struct {
	frames []*Frame
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Begin() *Frame {
	frame := NewFrame()
	m.frames = append(m.frames, frame)

	log.Debug().
		Int("depth", len(m.frames)).
		Msg("tx: transaction started")

	return frame
}

func (m *Manager) Depth() int {
	return len(m.frames)
}

// Top returns the frame that receives writes, if any transaction is active.
func (m *Manager) Top() (*Frame, bool) {
	if len(m.frames) == 0 {
		return nil, false
	}

	return m.frames[len(m.frames)-1], true
}

// Frames returns the active frames from the outermost to the innermost.
func (m *Manager) Frames() []*Frame {
	frames := make([]*Frame, len(m.frames))
	copy(frames, m.frames)
	return frames
}

// Commit pops the innermost frame and folds it into the frame beneath it,
// or into base when it was the outermost one.
func (m *Manager) Commit(base Target) error {
	top, ok := m.pop()
	if !ok {
		return ErrNoActiveTransaction
	}

	var target Target = base
	if parent, ok := m.Top(); ok {
		target = parent
	}

	top.fold(target)

	log.Debug().
		Int("depth", len(m.frames)).
		Int("records", top.Len()).
		Msg("tx: transaction committed")

	return nil
}

func (m *Manager) Rollback() error {
	top, ok := m.pop()
	if !ok {
		return ErrNoActiveTransaction
	}

	log.Debug().
		Int("depth", len(m.frames)).
		Int("records", top.Len()).
		Msg("tx: transaction rolled back")

	return nil
}

func (m *Manager) pop() (*Frame, bool) {
	top, ok := m.Top()
	if !ok {
		return nil, false
	}

	m.frames[len(m.frames)-1] = nil
	m.frames = m.frames[:len(m.frames)-1]

	return top, true
}
