package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/game"
	"github.com/memmaker/battletarget/targeting"
	"golang.org/x/term"
)

const (
	ansiReset = "\033[0m"
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiBold  = "\033[1m"

	defaultReportWidth = 100
	ringSegments       = 48
)

type report struct {
	out   io.Writer
	color bool
	width int
}

// newReport colours and fits the output to the terminal when out is one.
func newReport(out io.Writer) *report {
	r := &report{out: out, width: defaultReportWidth}
	file, isFile := out.(*os.File)
	if !isFile || !term.IsTerminal(int(file.Fd())) {
		return r
	}
	r.color = true
	if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 20 {
		r.width = width
	}
	return r
}

func (r *report) paint(text, code string) string {
	if !r.color {
		return text
	}
	return code + text + ansiReset
}

func (r *report) line(text string) {
	if len(text) > r.width {
		text = text[:r.width-1] + "~"
	}
	fmt.Fprintln(r.out, text)
}

func (r *report) header(scenario string, action *game.ActionDefinition, source *game.Combatant) {
	r.line(r.paint("=== Targeting Replay ===", ansiBold))
	r.line(fmt.Sprintf("scenario=%s action=%s (%s) range=%.1f source=%s", scenario, action.GetName(), action.Targeting, action.Range, source.ToString()))
}

func (r *report) frame(index int, hover targeting.HoverData, preview *targeting.Preview) {
	validity := preview.Validity.String()
	if preview.IsValid() {
		validity = r.paint(validity, ansiGreen)
	} else {
		validity = r.paint(validity, ansiRed)
	}
	target := "-"
	if hover.Hovered != nil {
		target = hover.Hovered.ToString()
	} else if hover.Ground {
		target = "ground"
	}
	text := fmt.Sprintf("[%02d] %-8s %s at %s %s", index, preview.ActiveMode, target, formatPoint(preview.CursorPoint), validity)
	if preview.Reason != "" {
		text += " '" + preview.Reason + "'"
	}
	text += fmt.Sprintf(" shapes=%d paths=%d blocked=%d highlights=%d", len(preview.Shapes), len(preview.Paths), len(preview.BlockedPaths()), len(preview.Highlights))
	for _, label := range preview.Texts {
		text += " " + label.Text
	}
	r.line(text)
}

func (r *report) confirm(result targeting.ConfirmResult) {
	code := ansiGreen
	if result.IsRejected() {
		code = ansiRed
	}
	r.line("     confirm -> " + r.paint(result.ToString(), code))
}

func formatPoint(p mgl32.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z())
}

// previewStrips turns one preview frame into line strips: rings and shape outlines on the
// ground, trajectories as drawn, and a small ring around each highlighted unit.
func previewStrips(preview *targeting.Preview, battlefield *game.Battlefield) []util.LineStrip {
	var strips []util.LineStrip
	for i, shape := range preview.Shapes {
		name := fmt.Sprintf("shape_%d", i)
		switch shape.Kind {
		case targeting.ShapeRangeRing, targeting.ShapeReticle, targeting.ShapeFootprint, targeting.ShapeWallAnchor:
			radius := shape.Radius
			if radius <= 0 {
				radius = 0.25
			}
			strips = append(strips, util.LineStrip{Name: name, Points: util.CirclePoints(shape.Center, radius, ringSegments), Color: shape.Color, Closed: true})
		case targeting.ShapeCone:
			strips = append(strips, util.LineStrip{Name: name, Points: coneOutline(shape), Color: shape.Color, Closed: true})
		case targeting.ShapeLine:
			end := shape.Center.Add(shape.Direction.Mul(shape.Length))
			strips = append(strips, util.LineStrip{Name: name, Points: bandOutline(shape.Center, end, shape.Width), Color: shape.Color, Closed: true})
		case targeting.ShapeWall:
			strips = append(strips, util.LineStrip{Name: name, Points: bandOutline(shape.Start, shape.End, shape.Width), Color: shape.Color, Closed: true})
		}
	}
	for i, segment := range preview.Paths {
		strips = append(strips, util.LineStrip{Name: fmt.Sprintf("path_%d", i), Points: segment.Points, Color: segment.Color})
	}
	for _, highlight := range preview.Highlights {
		unit, ok := battlefield.GetCombatant(highlight.UnitID)
		if !ok {
			continue
		}
		strips = append(strips, util.LineStrip{
			Name:   fmt.Sprintf("unit_%d", unit.ID),
			Points: util.CirclePoints(unit.Position, 0.45, ringSegments/2),
			Color:  targeting.ColorTechTeal,
			Closed: true,
		})
	}
	return strips
}

func coneOutline(shape targeting.GroundShape) []mgl32.Vec3 {
	half := mgl32.DegToRad(shape.Angle * 0.5)
	points := []mgl32.Vec3{shape.Center}
	const steps = 12
	for i := 0; i <= steps; i++ {
		angle := -half + 2*half*float32(i)/steps
		rotated := mgl32.Rotate3DY(angle).Mul3x1(shape.Direction)
		points = append(points, shape.Center.Add(rotated.Mul(shape.Length)))
	}
	return points
}

// bandOutline is the rectangle of the given width around the ground segment start -> end.
func bandOutline(start, end mgl32.Vec3, width float32) []mgl32.Vec3 {
	direction := util.DirectionFromSource(start, end, util.Forward)
	side := direction.Cross(util.Up).Mul(width * 0.5)
	return []mgl32.Vec3{start.Add(side), end.Add(side), end.Sub(side), start.Sub(side)}
}
