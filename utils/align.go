package utils

import (
	"unsafe"
)

// AlignSize rounds size up to the next multiple of align, which must be a
// power of two.
func AlignSize(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// AlignOffset returns the number of float64 elements to skip from the
// start of buf so that the address of buf[offset] is a multiple of align
// bytes. ok is false when no such element exists within buf.
func AlignOffset(buf []float64, align int) (offset int, ok bool) {
	const (
		elSize = int(unsafe.Sizeof(float64(0)))
	)
	if len(buf) == 0 || align < elSize || align&(align-1) != 0 {
		return 0, false
	}
	var (
		addr = uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
		miss = int(addr % uintptr(align))
	)
	if miss == 0 {
		return 0, true
	}
	if (align-miss)%elSize != 0 {
		return 0, false
	}
	offset = (align - miss) / elSize
	if offset >= len(buf) {
		return 0, false
	}
	return offset, true
}

// IsAligned reports whether the first element of buf sits on an align byte
// boundary.
func IsAligned(buf []float64, align int) bool {
	if len(buf) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%uintptr(align) == 0
}
