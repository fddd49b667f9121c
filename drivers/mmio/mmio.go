// Package mmio provides 32-bit memory-mapped register access for bring-up
// code, including the hi-word write-enable convention used by the GRF/PMU
// register blocks.
//
// A hi-word masked register takes the upper 16 bits of a store as a
// per-bit write enable for the lower 16 bits. Bits whose enable is clear keep
// their current value, so the store is safe against other agents sharing the
// register and needs no read.
package mmio

// Bus is the raw register access capability. Implementations perform exactly
// one bus access per call.
type Bus interface {
	Read32(addr uintptr) uint32
	Write32(addr uintptr, v uint32)
}

// HiWord composes a masked store: mask in the upper half, the masked value
// in the lower half.
func HiWord(mask, value uint16) uint32 {
	return uint32(mask)<<16 | uint32(value&mask)
}

// Writer issues register stores on a Bus. It never reads.
type Writer struct {
	bus Bus
}

func NewWriter(bus Bus) Writer { return Writer{bus: bus} }

// Masked updates the bits selected by mask to value in one store.
func (w Writer) Masked(addr uintptr, mask, value uint16) {
	w.bus.Write32(addr, HiWord(mask, value))
}

// Write32 stores v verbatim.
func (w Writer) Write32(addr uintptr, v uint32) {
	w.bus.Write32(addr, v)
}

// Field describes a bitfield inside the lower half of a hi-word register.
type Field struct {
	Shift uint8
	Width uint8
}

// Mask returns the field's bits in place.
func (f Field) Mask() uint16 {
	return uint16((1<<f.Width)-1) << f.Shift
}

// Value places v into the field, dropping bits that do not fit.
func (f Field) Value(v uint16) uint16 {
	return (v << f.Shift) & f.Mask()
}
