package types

// ------------------------
// SerDes (multi-PHY) lanes
// ------------------------

type PhyMode uint8

const (
	PhyModeUSB3 PhyMode = iota + 1
	PhyModePCIe
	PhyModeSATA
)

func (m PhyMode) String() string {
	switch m {
	case PhyModeUSB3:
		return "usb3"
	case PhyModePCIe:
		return "pcie"
	case PhyModeSATA:
		return "sata"
	default:
		return "invalid"
	}
}

// LaneMode is one lane selection.
type LaneMode struct {
	Lane int
	Mode PhyMode
}
