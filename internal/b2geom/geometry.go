package b2geom

import (
	"io"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/fieldstream"
)

// Modern field names. Scalars come first because later array shapes
// depend on them; the read order below is part of the format contract.
const (
	FieldNX  = "nx"  // poloidal cell count
	FieldNY  = "ny"  // radial cell count
	FieldRG  = "rg"  // radial grid centers, (nx,)
	FieldZG  = "zg"  // vertical grid centers, (ny,)
	FieldCRX = "crx" // cell center R coordinates, (ny, nx)
	FieldCRY = "cry" // cell center Z coordinates, (ny, nx)
	FieldBB  = "bb"  // magnetic field magnitude, (ny, nx)
	FieldVOL = "vol" // cell volumes, (ny, nx)
)

// Read parses a b2fgmtry stream into a Record. The stream must be
// positioned anywhere in a complete file; the version is always taken
// from the first line. Read owns the cursor for its full duration and
// either completes or fails with a typed error and a rolled-back cursor.
// The caller owns the stream's lifecycle.
func Read(rs io.ReadSeeker) (*Record, error) {
	s, err := fieldstream.NewScanner(rs)
	if err != nil {
		return nil, err
	}

	ver, err := DetectVersion(s)
	if err != nil {
		return nil, err
	}

	switch ver.Epoch() {
	case EpochLegacy:
		return readLegacy(s, ver)
	default:
		return readModern(s, ver)
	}
}

func readModern(s *fieldstream.Scanner, ver Version) (*Record, error) {
	nx, err := readIntScalar(s, FieldNX)
	if err != nil {
		return nil, err
	}
	ny, err := readIntScalar(s, FieldNY)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		FieldNX: nx,
		FieldNY: ny,
	}
	for _, f := range []struct {
		name string
		dims []int
	}{
		{FieldRG, []int{int(nx)}},
		{FieldZG, []int{int(ny)}},
		{FieldCRX, []int{int(ny), int(nx)}},
		{FieldCRY, []int{int(ny), int(nx)}},
		{FieldBB, []int{int(ny), int(nx)}},
		{FieldVOL, []int{int(ny), int(nx)}},
	} {
		arr, err := fieldstream.ReadField[float64](s, f.name, f.dims)
		if err != nil {
			return nil, err
		}
		fields[f.name] = arr
	}

	return &Record{
		Fields:              fields,
		Version:             ver.String(),
		FormatType:          string(EpochModern),
		ConvertedFromLegacy: false,
	}, nil
}

func readIntScalar(s *fieldstream.Scanner, name string) (int64, error) {
	arr, err := fieldstream.ReadField[int64](s, name, []int{1})
	if err != nil {
		return 0, err
	}
	return arr.Data[0], nil
}
