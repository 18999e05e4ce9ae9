package targeting

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Validity int

const (
	Valid Validity = iota
	Invalid
	OutOfRange
	NoLineOfSight
	InvalidTargetType
	PathInterrupted
	NoValidPath
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "Valid"
	case OutOfRange:
		return "OutOfRange"
	case NoLineOfSight:
		return "NoLineOfSight"
	case InvalidTargetType:
		return "InvalidTargetType"
	case PathInterrupted:
		return "PathInterrupted"
	case NoValidPath:
		return "NoValidPath"
	}
	return "Invalid"
}

const (
	ReasonOutOfRange      = "OUT OF RANGE"
	ReasonNoLineOfSight   = "NO LINE OF SIGHT"
	ReasonPathBlocked     = "PATH BLOCKED"
	ReasonNoValidPath     = "NO VALID PATH"
	ReasonNoValidTarget   = "NO VALID TARGET"
	ReasonAlreadySelected = "ALREADY SELECTED"
	ReasonWallTooLong     = "WALL TOO LONG"
	ReasonWallTooShort    = "WALL TOO SHORT"
	ReasonInvalidLocation = "INVALID LOCATION"
	ReasonNoActiveMode    = "NOTHING TO CONFIRM"
	ReasonSelectionFull   = "SELECTION FULL"
)

type ShapeKind int

const (
	ShapeRangeRing ShapeKind = iota
	ShapeReticle
	ShapeFootprint
	ShapeCone
	ShapeLine
	ShapeWall
	ShapeWallAnchor
)

// GroundShape is a flat figure drawn on the battlefield floor.
// Which fields matter depends on Kind: rings use Center/Radius, cones and
// lines use Center/Direction/Length (plus Angle or Width), walls use Start/End/Width.
type GroundShape struct {
	Kind      ShapeKind
	Center    mgl32.Vec3
	Direction mgl32.Vec3
	Start     mgl32.Vec3
	End       mgl32.Vec3
	Radius    float32
	Length    float32
	Width     float32
	Angle     float32
	Color     mgl32.Vec4
	Valid     bool
}

type PathSegment struct {
	Points  []mgl32.Vec3
	Blocked bool
	Color   mgl32.Vec4
}

type HighlightKind int

const (
	HighlightEnemy HighlightKind = iota
	HighlightAlly
	HighlightNeutral
	HighlightWarning
	HighlightTarget
	HighlightInvalid
)

// NoHitChance marks highlights that carry no hit percentage.
const NoHitChance = -1

type UnitHighlight struct {
	UnitID    uint64
	Kind      HighlightKind
	HitChance int
}

type FloatingText struct {
	Position mgl32.Vec3
	Text     string
	Color    mgl32.Vec4
}

type MarkerKind int

const (
	MarkerRing MarkerKind = iota
	MarkerX
)

type ImpactMarker struct {
	Position mgl32.Vec3
	Kind     MarkerKind
}

type SelectedMarker struct {
	UnitID   uint64
	Position mgl32.Vec3
	Ordinal  int
}

type CursorStyle int

const (
	CursorDefault CursorStyle = iota
	CursorAttack
	CursorCast
	CursorMove
	CursorInvalid
)

// Preview describes one frame of targeting feedback. It is owned by the session,
// cleared before every mode call and reused across frames.
type Preview struct {
	Shapes     []GroundShape
	Paths      []PathSegment
	Highlights []UnitHighlight
	Texts      []FloatingText
	Impacts    []ImpactMarker
	Selected   []SelectedMarker

	Validity        Validity
	Reason          string
	Cursor          CursorStyle
	ActiveMode      ModeType
	CursorPoint     mgl32.Vec3
	HoveredEntityID uint64
	Dirty           bool
}

func NewPreview() *Preview {
	return &Preview{}
}

// Clear empties every collection without releasing its storage.
func (p *Preview) Clear() {
	p.Shapes = p.Shapes[:0]
	p.Paths = p.Paths[:0]
	p.Highlights = p.Highlights[:0]
	p.Texts = p.Texts[:0]
	p.Impacts = p.Impacts[:0]
	p.Selected = p.Selected[:0]
	p.Validity = Valid
	p.Reason = ""
	p.Cursor = CursorDefault
	p.CursorPoint = mgl32.Vec3{}
	p.HoveredEntityID = 0
	p.Dirty = false
}

func (p *Preview) IsValid() bool {
	return p.Validity == Valid
}

func (p *Preview) SetValidity(validity Validity, reason string) {
	p.Validity = validity
	p.Reason = reason
}

func (p *Preview) AddShape(shape GroundShape) {
	p.Shapes = append(p.Shapes, shape)
}

func (p *Preview) AddPath(points []mgl32.Vec3, blocked bool, color mgl32.Vec4) {
	p.Paths = append(p.Paths, PathSegment{Points: points, Blocked: blocked, Color: color})
}

func (p *Preview) AddHighlight(unitID uint64, kind HighlightKind, hitChance int) {
	p.Highlights = append(p.Highlights, UnitHighlight{UnitID: unitID, Kind: kind, HitChance: hitChance})
}

func (p *Preview) AddText(position mgl32.Vec3, text string, color mgl32.Vec4) {
	p.Texts = append(p.Texts, FloatingText{Position: position, Text: text, Color: color})
}

func (p *Preview) AddImpact(position mgl32.Vec3, kind MarkerKind) {
	p.Impacts = append(p.Impacts, ImpactMarker{Position: position, Kind: kind})
}

func (p *Preview) AddSelected(unitID uint64, position mgl32.Vec3, ordinal int) {
	p.Selected = append(p.Selected, SelectedMarker{UnitID: unitID, Position: position, Ordinal: ordinal})
}

// ShapesOfKind is a convenience for renderers that draw one shape family at a time.
func (p *Preview) ShapesOfKind(kind ShapeKind) []GroundShape {
	var shapes []GroundShape
	for _, s := range p.Shapes {
		if s.Kind == kind {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// BlockedPaths returns the path segments flagged as blocked.
func (p *Preview) BlockedPaths() []PathSegment {
	var blocked []PathSegment
	for _, segment := range p.Paths {
		if segment.Blocked {
			blocked = append(blocked, segment)
		}
	}
	return blocked
}
