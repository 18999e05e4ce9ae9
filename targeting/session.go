package targeting

import (
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

// Session owns the active mode and the preview it writes into.
// It is driven from a single thread, one Hover per input sample.
type Session struct {
	services *Services
	config   Config
	preview  *Preview

	mode   Mode
	action *game.ActionDefinition
	source *game.Combatant
}

func NewSession(services *Services, config Config) *Session {
	return &Session{
		services: services,
		config:   config,
		preview:  NewPreview(),
	}
}

// Begin starts targeting an action, replacing any activation in progress.
func (s *Session) Begin(action *game.ActionDefinition, source *game.Combatant) Mode {
	if s.mode != nil {
		s.End()
	}
	s.action = action
	s.source = source
	s.mode = NewMode(action.Targeting, s.services, s.config)
	s.mode.Enter(action, source, source.Position)
	s.preview.Clear()
	s.preview.ActiveMode = s.mode.Type()
	util.LogSessionInfo("[Session] %s targets '%s' in %s mode", source.ToString(), action.GetName(), s.mode.Type())
	return s.mode
}

func (s *Session) Active() bool {
	return s.mode != nil
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Action() *game.ActionDefinition {
	return s.action
}

func (s *Session) Source() *game.Combatant {
	return s.source
}

// Preview returns the last frame's preview. The same instance is reused every frame.
func (s *Session) Preview() *Preview {
	return s.preview
}

// Hover runs the active mode on one input sample and returns the refreshed preview.
func (s *Session) Hover(hover HoverData) *Preview {
	s.preview.Clear()
	if s.mode == nil {
		return s.preview
	}
	s.preview.ActiveMode = s.mode.Type()
	s.preview.CursorPoint = hover.Point
	s.preview.HoveredEntityID = hover.HoveredID()
	s.mode.UpdatePreview(hover, s.preview)
	s.preview.Dirty = true
	return s.preview
}

// Confirm forwards a commit to the active mode. A final outcome ends the activation.
func (s *Session) Confirm(hover HoverData) ConfirmResult {
	if s.mode == nil {
		return Rejected(ReasonNoActiveMode)
	}
	result := s.mode.TryConfirm(hover)
	switch {
	case result.IsRejected():
		util.LogSessionDebug("[Session] confirm rejected: %s", result.Reason)
	case result.IsFinal():
		util.LogSessionInfo("[Session] '%s' confirmed: %s", s.action.GetName(), result.ToString())
		s.End()
	default:
		util.LogSessionDebug("[Session] step %d/%d", s.mode.CurrentStep(), s.mode.TotalSteps())
	}
	return result
}

func (s *Session) Undo() bool {
	if s.mode == nil {
		return false
	}
	undone := s.mode.TryUndoLastStep()
	if undone {
		util.LogSessionDebug("[Session] undo, back at step %d", s.mode.CurrentStep())
	}
	return undone
}

// Cancel drops multi-step progress first; with nothing in progress it ends the activation.
// It reports whether the session is still active afterwards.
func (s *Session) Cancel() bool {
	if s.mode == nil {
		return false
	}
	if s.mode.IsMultiStep() && s.mode.CurrentStep() > 0 {
		s.mode.Cancel()
		util.LogSessionDebug("[Session] progress of '%s' dropped", s.action.GetName())
		return true
	}
	util.LogSessionInfo("[Session] '%s' cancelled", s.action.GetName())
	s.End()
	return false
}

func (s *Session) End() {
	if s.mode == nil {
		return
	}
	s.mode.Cancel()
	s.mode.Exit()
	s.mode = nil
	s.action = nil
	s.source = nil
	s.preview.Clear()
	s.preview.ActiveMode = ModeNone
}
