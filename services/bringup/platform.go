package bringup

import (
	"boardinit-go/drivers/mmio"
	"boardinit-go/errcode"
	"boardinit-go/types"

	"tinygo.org/x/drivers"
)

// ---- Injected capabilities ----

// PinController configures pads and drives plain GPIO lines.
type PinController interface {
	ConfigurePin(d types.PinDescriptor) error
	SetDirection(bank uint8, pin types.Pin, dir types.Direction) error
	WritePin(bank uint8, pin types.Pin, high bool) error
}

// PhySelector selects the protocol a SerDes lane runs.
type PhySelector interface {
	SelectLaneMode(lane int, mode types.PhyMode) error
}

// DomainSetter maps an I/O voltage domain onto its SoC register setting.
type DomainSetter interface {
	SetDomainVoltage(d types.VoltageDomain, level types.VoltageLevel) error
}

// Platform carries every hardware capability bring-up touches. The caller
// owns all of them exclusively for the duration of Run.
type Platform struct {
	MMIO    mmio.Bus
	I2C     drivers.I2C // bus the PMIC sits on
	Pins    PinController
	PHY     PhySelector
	Domains DomainSetter

	// Log is optional; nil logs to the console.
	Log Logger
}

func (p Platform) validate() error {
	missing := ""
	switch {
	case p.MMIO == nil:
		missing = "mmio"
	case p.I2C == nil:
		missing = "i2c"
	case p.Pins == nil:
		missing = "pins"
	case p.PHY == nil:
		missing = "phy"
	case p.Domains == nil:
		missing = "domains"
	}
	if missing != "" {
		return &errcode.E{C: errcode.InvalidParams, Op: "bringup", Msg: "missing capability " + missing}
	}
	return nil
}
