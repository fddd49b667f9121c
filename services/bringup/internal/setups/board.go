package setups

import (
	"boardinit-go/drivers/rk809"
	"boardinit-go/types"
)

// Board is the complete, compile-time bring-up description of one board
// revision. Nothing in it is discovered at run time.
type Board struct {
	Name      string
	GPIOBanks uint8

	Domains        []types.DomainSetting
	SkippedDomains []types.SkippedDomain

	PMIC PMIC

	ClockGates []RegWrite
	CorePLL    MaskedWrite

	USB3Lanes []types.LaneMode
	SDMMC     types.PinGroup
	EMMC      types.PinGroup

	PCIe PCIe
}

// PMIC wiring and register values.
type PMIC struct {
	Bus      string // diagnostic only, e.g. "i2c0"
	Address  uint16
	ChipName uint16
	// Pins routes the bus controller to its pads; applied before the
	// first transaction.
	Pins     types.PinGroup
	Settings rk809.Settings
}

// PCIe describes two links sharing one SerDes lane and one iomux select register.
type PCIe struct {
	Lane   int
	Groups []types.PinGroup
	// ClkReqSoC lines are driven high as plain GPIO outputs after the groups.
	ClkReqSoC []GPIOLine
	IomuxSel  MaskedWrite
}

// RegWrite is a full-width 32-bit store.
type RegWrite struct {
	Name  string
	Addr  uintptr
	Value uint32
}

// MaskedWrite is a hi-word masked store.
type MaskedWrite struct {
	Name  string
	Addr  uintptr
	Mask  uint16
	Value uint16
}

type GPIOLine struct {
	Name string
	Bank uint8
	Pin  types.Pin
}
