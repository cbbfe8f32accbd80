package b2geom

import (
	"fmt"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/fieldstream"
)

// Legacy field names (minor < 2). The legacy layout stores grid faces
// instead of centers and flattens the 2-D fields.
const (
	legacyNXDim  = "nxdim"  // renamed to nx
	legacyNYDim  = "nydim"  // renamed to ny
	legacyRMesh  = "rmesh"  // radial cell faces, (nx+1,)
	legacyZMesh  = "zmesh"  // vertical cell faces, (ny+1,)
	legacyBField = "bfield" // flat (nx*ny,), reshaped to bb
	legacyVolume = "volume" // flat (nx*ny,), reshaped to vol
)

// ConversionError reports a legacy field that could not be mapped into
// the modern data model.
type ConversionError struct {
	Field string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert legacy field %q: %v", e.Field, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// readLegacy reads the legacy field layout and converts it into the
// modern record shape. Read and conversion failures propagate unchanged;
// no field is silently defaulted.
func readLegacy(s *fieldstream.Scanner, ver Version) (*Record, error) {
	nx, err := readIntScalar(s, legacyNXDim)
	if err != nil {
		return nil, err
	}
	if nx <= 0 {
		return nil, &ConversionError{Field: legacyNXDim, Err: fmt.Errorf("non-positive dimension %d", nx)}
	}
	ny, err := readIntScalar(s, legacyNYDim)
	if err != nil {
		return nil, err
	}
	if ny <= 0 {
		return nil, &ConversionError{Field: legacyNYDim, Err: fmt.Errorf("non-positive dimension %d", ny)}
	}

	rmesh, err := fieldstream.ReadField[float64](s, legacyRMesh, []int{int(nx) + 1})
	if err != nil {
		return nil, err
	}
	zmesh, err := fieldstream.ReadField[float64](s, legacyZMesh, []int{int(ny) + 1})
	if err != nil {
		return nil, err
	}
	bfield, err := fieldstream.ReadField[float64](s, legacyBField, []int{int(nx) * int(ny)})
	if err != nil {
		return nil, err
	}
	volume, err := fieldstream.ReadField[float64](s, legacyVolume, []int{int(nx) * int(ny)})
	if err != nil {
		return nil, err
	}

	rg := faceCenters(rmesh.Data)
	zg := faceCenters(zmesh.Data)
	crx, cry := centerGrids(rg, zg)

	fields := map[string]any{
		FieldNX:  nx,
		FieldNY:  ny,
		FieldRG:  fieldstream.Array[float64]{Shape: []int{int(nx)}, Data: rg},
		FieldZG:  fieldstream.Array[float64]{Shape: []int{int(ny)}, Data: zg},
		FieldCRX: crx,
		FieldCRY: cry,
		FieldBB:  reshape2D(bfield.Data, int(ny), int(nx)),
		FieldVOL: reshape2D(volume.Data, int(ny), int(nx)),
	}

	return &Record{
		Fields:              fields,
		Version:             ver.String(),
		FormatType:          string(EpochLegacy),
		ConvertedFromLegacy: true,
	}, nil
}

// faceCenters collapses n+1 cell face positions into n cell centers by
// midpoint averaging.
func faceCenters(faces []float64) []float64 {
	centers := make([]float64, len(faces)-1)
	for i := range centers {
		centers[i] = 0.5 * (faces[i] + faces[i+1])
	}
	return centers
}

// centerGrids expands the 1-D center axes into the (ny, nx) coordinate
// fields the modern layout stores explicitly: crx repeats rg along each
// row, cry repeats zg down each column.
func centerGrids(rg, zg []float64) (crx, cry fieldstream.Array[float64]) {
	nx, ny := len(rg), len(zg)
	crx = fieldstream.Array[float64]{Shape: []int{ny, nx}, Data: make([]float64, ny*nx)}
	cry = fieldstream.Array[float64]{Shape: []int{ny, nx}, Data: make([]float64, ny*nx)}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			crx.Data[j*nx+i] = rg[i]
			cry.Data[j*nx+i] = zg[j]
		}
	}
	return crx, cry
}

func reshape2D(data []float64, rows, cols int) fieldstream.Array[float64] {
	return fieldstream.Array[float64]{Shape: []int{rows, cols}, Data: data}
}
