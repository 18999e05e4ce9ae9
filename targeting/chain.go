package targeting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
)

// ChainMode confirms a primary target and previews the units the effect bounces to.
// The chain shown is a preview only; resolution computes its own chain.
type ChainMode struct {
	singleStep
	modeState
	bounces int
}

func NewChainMode(services *Services, config Config) *ChainMode {
	return &ChainMode{modeState: newModeState(services, config)}
}

func (m *ChainMode) Type() ModeType {
	return ModeChain
}

func (m *ChainMode) Enter(action *game.ActionDefinition, source *game.Combatant, sourcePosition mgl32.Vec3) {
	m.enter(action, source, sourcePosition)
	m.bounces = m.config.DefaultChainBounces
	if action.MaxTargets > 0 {
		m.bounces = action.MaxTargets - 1
	}
}

func (m *ChainMode) UpdatePreview(hover HoverData, preview *Preview) *Preview {
	m.addRangeRing(preview)
	primary := hover.Hovered
	if primary == nil {
		preview.SetValidity(Invalid, ReasonNoValidTarget)
		return preview
	}
	verdict := m.services.validate(m.action, m.source, primary)
	if !verdict.Valid {
		m.previewRejection(preview, primary, verdict)
		return preview
	}

	chain := m.bounceChain(primary)
	links := append([]*game.Combatant{primary}, chain...)
	previous := m.source.CenterOfMass()
	for i, link := range links {
		kind := highlightForRelation(game.RelationBetween(m.source, link))
		hitChance := NoHitChance
		if i == 0 {
			hitChance, _ = m.hitChancePercent(link)
		}
		preview.AddHighlight(link.ID, kind, hitChance)
		preview.AddPath([]mgl32.Vec3{previous, link.CenterOfMass()}, false, colorForHighlight(kind))
		preview.AddText(labelPosition(link), fmt.Sprintf("%d", i+1), ColorTechTeal)
		previous = link.CenterOfMass()
	}
	preview.SetValidity(Valid, "")
	preview.Cursor = CursorAttack
	return preview
}

// bounceChain greedily follows the nearest unvisited legal combatant within range of the previous link.
func (m *ChainMode) bounceChain(primary *game.Combatant) []*game.Combatant {
	visited := map[uint64]bool{m.source.ID: true, primary.ID: true}
	candidates := m.services.combatants()
	var chain []*game.Combatant
	current := primary
	for len(chain) < m.bounces {
		var next *game.Combatant
		var nextDistance float32
		for _, candidate := range candidates {
			if visited[candidate.ID] || !candidate.Alive {
				continue
			}
			distance := util.Distance3D(current.Position, candidate.Position)
			if distance > m.action.Range {
				continue
			}
			if next != nil && (distance > nextDistance || (distance == nextDistance && candidate.ID > next.ID)) {
				continue
			}
			if !m.services.validate(m.action, m.source, candidate).Valid {
				continue
			}
			next = candidate
			nextDistance = distance
		}
		if next == nil {
			break
		}
		visited[next.ID] = true
		chain = append(chain, next)
		current = next
	}
	return chain
}

func (m *ChainMode) TryConfirm(hover HoverData) ConfirmResult {
	primary := hover.Hovered
	if primary == nil {
		return Rejected(ReasonNoValidTarget)
	}
	verdict := m.services.validate(m.action, m.source, primary)
	if !verdict.Valid {
		return Rejected(verdict.Reason)
	}
	return ExecuteTarget(primary.ID)
}

func (m *ChainMode) Cancel() {}

func (m *ChainMode) Exit() {
	m.exit()
}
