// Package cpu reports the vector width the host can use for packed field arithmetic.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features lists the CPU capabilities relevant to lane width selection.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasASIMD     bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasASIMD:     cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// LaneWidth is the number of 64-bit words per vector register: 8 with AVX-512,
// 4 with AVX2 or ARM ASIMD pairs, 1 otherwise.
func (f Features) LaneWidth() int {
	switch {
	case f.HasAVX512:
		return 8
	case f.HasAVX2, f.HasASIMD:
		return 4
	default:
		return 1
	}
}

// LaneWidth is DetectFeatures().LaneWidth().
func LaneWidth() int {
	return DetectFeatures().LaneWidth()
}
