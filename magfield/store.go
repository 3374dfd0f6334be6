package magfield

import (
	"fmt"
	"math"

	"github.com/notargets/turbfield/utils"
)

const (
	LaneWidth = 4             // Column padding granularity in float64s
	Alignment = LaneWidth * 8 // Byte alignment of every column
)

// Columns of the structure of arrays layout
type column uint8

const (
	colPolX column = iota
	colPolY
	colPolZ
	colDirX
	colDirY
	colDirZ
	colAmplitude
	colK
	colPhase
	nColumns
)

// ModeStore packs the modes into one column per component. Each column is
// padded with zero entries to a multiple of LaneWidth and starts on an
// Alignment byte boundary. Padding entries have zero amplitude.
type ModeStore struct {
	backing []float64 // Owns the allocation, data is a view into it
	data    []float64
	offset  int
	nm      int
	padded  int
}

func NewModeStore(modes []Mode) (ms *ModeStore, err error) {
	var (
		nm     = len(modes)
		padded = utils.AlignSize(nm, LaneWidth)
	)
	if nm == 0 {
		err = fmt.Errorf("%w: no modes to store", ErrInsufficientModes)
		return
	}
	if padded > (math.MaxInt-LaneWidth)/int(nColumns) {
		err = fmt.Errorf("%w: %d modes overflows the column layout", ErrAllocation, nm)
		return
	}
	// LaneWidth-1 spare elements always hold an aligned start
	ms = &ModeStore{
		backing: make([]float64, int(nColumns)*padded+LaneWidth-1),
		nm:      nm,
		padded:  padded,
	}
	var ok bool
	if ms.offset, ok = utils.AlignOffset(ms.backing, Alignment); !ok {
		ms = nil
		err = fmt.Errorf("%w: no %d byte boundary in buffer", ErrAllocation, Alignment)
		return
	}
	ms.data = ms.backing[ms.offset : ms.offset+int(nColumns)*padded]
	for i, m := range modes {
		ms.col(colPolX)[i] = m.Polarization.X
		ms.col(colPolY)[i] = m.Polarization.Y
		ms.col(colPolZ)[i] = m.Polarization.Z
		ms.col(colDirX)[i] = m.Direction.X
		ms.col(colDirY)[i] = m.Direction.Y
		ms.col(colDirZ)[i] = m.Direction.Z
		ms.col(colAmplitude)[i] = m.Amplitude
		ms.col(colK)[i] = m.K
		ms.col(colPhase)[i] = m.Phase
	}
	return
}

func (ms *ModeStore) col(c column) []float64 {
	return ms.data[int(c)*ms.padded : (int(c)+1)*ms.padded]
}

// Len is the number of genuine modes.
func (ms *ModeStore) Len() int { return ms.nm }

// Padded is the column length, a multiple of LaneWidth.
func (ms *ModeStore) Padded() int { return ms.padded }

// Offset is the element offset of the aligned view within the allocation.
func (ms *ModeStore) Offset() int { return ms.offset }

// Aligned reports whether every column starts on an Alignment boundary.
func (ms *ModeStore) Aligned() bool {
	for c := colPolX; c < nColumns; c++ {
		if !utils.IsAligned(ms.col(c), Alignment) {
			return false
		}
	}
	return true
}
