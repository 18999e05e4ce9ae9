package voxel

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"
)

/*
	TAG_Compound({
	    "width": TAG_Int(), "height": TAG_Int(), "depth": TAG_Int(),
	    "solid": TAG_Byte_Array(),  // x + z*width + y*width*depth
	    "units": TAG_List([TAG_Compound({...})]),
	    "actions": TAG_List([TAG_Compound({...})]),
	    "source": TAG_Long(),
	    "action": TAG_String(),
	    "cursor": TAG_List([TAG_Compound({"x","y","z": TAG_Float(), "target": TAG_Long(), "confirm": TAG_Byte()})])
	})
*/

type UnitRecord struct {
	ID           int64   `nbt:"id"`
	Name         string  `nbt:"name"`
	Faction      string  `nbt:"faction"`
	X            float32 `nbt:"x"`
	Y            float32 `nbt:"y"`
	Z            float32 `nbt:"z"`
	Height       float32 `nbt:"height"`
	JumpDistance float32 `nbt:"jump_distance"`
	Accuracy     float32 `nbt:"accuracy"`
	Dead         byte    `nbt:"dead"`
}

type ActionRecord struct {
	ID            string   `nbt:"id"`
	Name          string   `nbt:"name"`
	Targeting     string   `nbt:"targeting"`
	Category      string   `nbt:"category"`
	Range         float32  `nbt:"range"`
	AreaRadius    float32  `nbt:"area_radius"`
	ConeAngle     float32  `nbt:"cone_angle"`
	LineWidth     float32  `nbt:"line_width"`
	MaxWallLength float32  `nbt:"max_wall_length"`
	MaxTargets    int32    `nbt:"max_targets"`
	AllowFriendly byte     `nbt:"allow_friendly"`
	Tags          []string `nbt:"tags"`
}

// CursorRecord is one scripted input sample. Target 0 means no unit is hovered.
type CursorRecord struct {
	X       float32 `nbt:"x"`
	Y       float32 `nbt:"y"`
	Z       float32 `nbt:"z"`
	Target  int64   `nbt:"target"`
	Confirm byte    `nbt:"confirm"`
}

type BattlefieldFile struct {
	Width   int32          `nbt:"width"`
	Height  int32          `nbt:"height"`
	Depth   int32          `nbt:"depth"`
	Solid   []byte         `nbt:"solid"`
	Units   []UnitRecord   `nbt:"units"`
	Actions []ActionRecord `nbt:"actions"`
	Source  int64          `nbt:"source"`
	Action  string         `nbt:"action"`
	Cursor  []CursorRecord `nbt:"cursor"`
}

// Grid rebuilds the collision volume stored in the file.
func (f *BattlefieldFile) Grid() (*Grid, error) {
	if f.Width <= 0 || f.Height <= 0 || f.Depth <= 0 {
		return nil, errors.Errorf("invalid battlefield size %dx%dx%d", f.Width, f.Height, f.Depth)
	}
	expected := int(f.Width * f.Height * f.Depth)
	if len(f.Solid) != expected {
		return nil, errors.Errorf("solid block array has %d entries, expected %d", len(f.Solid), expected)
	}
	grid := NewGrid(f.Width, f.Height, f.Depth)
	grid.setSolidBytes(f.Solid)
	return grid, nil
}

// SetGrid stores the collision volume of grid in the file.
func (f *BattlefieldFile) SetGrid(grid *Grid) {
	size := grid.Size()
	f.Width, f.Height, f.Depth = size.X, size.Y, size.Z
	f.Solid = grid.SolidBytes()
}

func DecodeBattlefield(reader io.Reader) (*BattlefieldFile, error) {
	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return nil, errors.Wrap(err, "battlefield is not gzip compressed")
	}
	defer gzipReader.Close()
	var value BattlefieldFile
	if _, err = nbt.NewDecoder(gzipReader).Decode(&value); err != nil {
		return nil, errors.Wrap(err, "decoding battlefield nbt")
	}
	return &value, nil
}

func EncodeBattlefield(writer io.Writer, file *BattlefieldFile) error {
	gzipWriter := gzip.NewWriter(writer)
	if err := nbt.NewEncoder(gzipWriter).Encode(file, "battlefield"); err != nil {
		return errors.Wrap(err, "encoding battlefield nbt")
	}
	return errors.Wrap(gzipWriter.Close(), "flushing battlefield")
}

func LoadBattlefieldFile(filename string) (*BattlefieldFile, error) {
	fileReader, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening battlefield %s", filename)
	}
	defer fileReader.Close()
	file, err := DecodeBattlefield(fileReader)
	if err != nil {
		return nil, errors.Wrapf(err, "loading battlefield %s", filename)
	}
	return file, nil
}

func SaveBattlefieldFile(filename string, file *BattlefieldFile) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating battlefield %s", filename)
	}
	if err = EncodeBattlefield(outfile, file); err != nil {
		outfile.Close()
		return errors.Wrapf(err, "saving battlefield %s", filename)
	}
	return errors.Wrapf(outfile.Close(), "closing battlefield %s", filename)
}
