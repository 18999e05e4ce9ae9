package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/battletarget/engine/util"
	"github.com/memmaker/battletarget/engine/voxel"
	"github.com/memmaker/battletarget/game"
	"github.com/memmaker/battletarget/targeting"
	"github.com/pkg/errors"
)

type options struct {
	scenarioFile string
	demoFile     string
	glbFile      string
	actionID     string
	seed         int64
	seeded       bool
	debug        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.scenarioFile, "scenario", "", "battlefield scenario to replay (.nbt)")
	flag.StringVar(&opts.demoFile, "write-demo", "", "write the built-in demo scenario to this file and replay it")
	flag.StringVar(&opts.glbFile, "glb", "", "export the last preview frame as binary glTF")
	flag.StringVar(&opts.actionID, "action", "", "override the scenario's action id")
	flag.Int64Var(&opts.seed, "seed", 0, "with -write-demo, write a random two against two skirmish from this seed")
	flag.BoolVar(&opts.debug, "debug", false, "log every category at debug level")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seeded = true
		}
	})

	util.GLOBAL_LOG_LEVEL = util.LogLevelWarning
	if opts.debug {
		util.GLOBAL_LOG_LEVEL = util.LogLevelInfo
		util.GLOBAL_LOG_CATEGORIES = util.LogTargeting | util.LogSession | util.LogWorld | util.LogPathing | util.LogIO
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.seeded && opts.demoFile == "" {
		return errors.New("-seed needs -write-demo")
	}
	if opts.demoFile != "" {
		scenario := demoScenario()
		if opts.seeded {
			scenario = randomScenario(opts.seed)
		}
		if err := voxel.SaveBattlefieldFile(opts.demoFile, scenario); err != nil {
			return err
		}
		util.LogIOInfo("[main] demo scenario written to %s", opts.demoFile)
		if opts.scenarioFile == "" {
			opts.scenarioFile = opts.demoFile
		}
	}
	if opts.scenarioFile == "" {
		return errors.New("no scenario given, use -scenario or -write-demo")
	}

	file, err := voxel.LoadBattlefieldFile(opts.scenarioFile)
	if err != nil {
		util.LogIOError(err.Error())
		return err
	}
	battlefield, err := game.NewBattlefieldFromFile(file)
	if err != nil {
		return errors.Wrapf(err, "scenario %s", opts.scenarioFile)
	}
	actionID := file.Action
	if opts.actionID != "" {
		actionID = opts.actionID
	}
	action, err := findAction(file, actionID)
	if err != nil {
		return err
	}
	source, ok := battlefield.GetCombatant(uint64(file.Source))
	if !ok {
		return errors.Errorf("source unit %d is not on the battlefield", file.Source)
	}

	report := newReport(os.Stdout)
	session := targeting.NewSession(targeting.ServicesFromWorld(battlefield), targeting.DefaultConfig())
	session.Begin(action, source)
	report.header(opts.scenarioFile, action, source)

	var last *targeting.Preview
	for i, record := range file.Cursor {
		if !session.Active() {
			break
		}
		hover := hoverFromCursor(battlefield, record)
		last = session.Hover(hover)
		report.frame(i, hover, last)
		if record.Confirm != 0 {
			report.confirm(session.Confirm(hover))
		}
	}

	if opts.glbFile != "" {
		if last == nil {
			return errors.New("no preview frame to export, the cursor script is empty")
		}
		if err = util.ExportLineStrips(opts.glbFile, previewStrips(last, battlefield)); err != nil {
			return err
		}
	}
	return nil
}

func findAction(file *voxel.BattlefieldFile, actionID string) (*game.ActionDefinition, error) {
	for _, record := range file.Actions {
		if record.ID == actionID {
			return game.NewActionFromRecord(record), nil
		}
	}
	return nil, errors.Errorf("action '%s' is not defined in the scenario", actionID)
}

// hoverFromCursor resolves what a scripted cursor point is over: a scripted target, a unit
// standing there or the floor.
func hoverFromCursor(battlefield *game.Battlefield, record voxel.CursorRecord) targeting.HoverData {
	point := mgl32.Vec3{record.X, record.Y, record.Z}
	hover := targeting.HoverData{Point: point, Normal: util.Up}
	unit, found := battlefield.GetCombatant(uint64(record.Target))
	if record.Target <= 0 || !found {
		unit, found = battlefield.CombatantAt(point)
	}
	if found {
		hover.Hovered = unit
		hover.EntityID = unit.ID
		hover.Point = unit.Position
		return hover
	}
	hover.Ground = battlefield.Grid().IsStandable(voxel.PositionToGridInt3(point))
	return hover
}
