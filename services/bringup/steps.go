package bringup

import (
	"errors"

	"boardinit-go/drivers/mmio"
	"boardinit-go/drivers/rk809"
	"boardinit-go/errcode"
	"boardinit-go/x/conv"
)

// Step names, in plan order.
const (
	StepVoltageDomains = "voltage-domains"
	StepPMIC           = "pmic"
	StepClockGating    = "clock-gating"
	StepCorePLL        = "core-pvtpll"
	StepUSB3Phy        = "usb3-phy"
	StepSDMMCPins      = "sdmmc0-pins"
	StepEMMCPins       = "emmc-pins"
	StepPCIe           = "pcie"
)

// BoardPlan returns the bring-up plan for the board this build targets.
func BoardPlan() Plan {
	return Plan{
		{Name: StepVoltageDomains, Uses: []Capability{CapDomains}, run: setVoltageDomains},
		{Name: StepPMIC, Uses: []Capability{CapPins, CapI2C}, Requires: []string{StepVoltageDomains}, run: programPMIC},
		{Name: StepClockGating, Uses: []Capability{CapMMIO}, Requires: []string{StepVoltageDomains, StepPMIC}, run: enableClockGating},
		{Name: StepCorePLL, Uses: []Capability{CapMMIO}, Requires: []string{StepVoltageDomains}, run: tuneCorePLL},
		{Name: StepUSB3Phy, Uses: []Capability{CapPHY}, run: selectUSB3},
		{Name: StepSDMMCPins, Uses: []Capability{CapPins}, Requires: []string{StepVoltageDomains}, run: sdmmcPins},
		{Name: StepEMMCPins, Uses: []Capability{CapPins}, Requires: []string{StepVoltageDomains}, run: emmcPins},
		{Name: StepPCIe, Uses: []Capability{CapPHY, CapPins, CapMMIO}, Requires: []string{StepVoltageDomains}, run: bringUpPCIe},
	}
}

func setVoltageDomains(s *session) error {
	for _, sk := range s.board.SkippedDomains {
		s.log.Log("warn", "domain "+sk.Domain.String()+" skipped: "+sk.Reason)
	}
	for _, d := range s.board.Domains {
		if err := s.p.Domains.SetDomainVoltage(d.Domain, d.Level); err != nil {
			return &errcode.E{C: errcode.DomainFailure, Msg: d.Domain.String() + " " + d.Level.String(), Err: err}
		}
	}
	return nil
}

// regulator returns the PMIC driver once its bus pads are routed.
func (s *session) regulator() (*rk809.Device, error) {
	cfg := s.board.PMIC
	if !s.pins.Applied(cfg.Pins.Name) {
		return nil, &errcode.E{C: errcode.OrderViolation, Msg: cfg.Bus + " pins not configured"}
	}
	return rk809.New(s.p.I2C, rk809.Config{Address: cfg.Address, ChipName: cfg.ChipName}), nil
}

func programPMIC(s *session) error {
	cfg := s.board.PMIC
	if err := s.applyPins(cfg.Pins); err != nil {
		return err
	}
	dev, err := s.regulator()
	if err != nil {
		return err
	}
	id, err := dev.Identify()
	if err != nil {
		return pmicError(err)
	}
	s.log.Log("info", "PMIC: detected "+id.String()+" at "+cfg.Bus+"/"+conv.Hex8(uint8(dev.Address())))
	if err := dev.Program(cfg.Settings); err != nil {
		return pmicError(err)
	}
	return nil
}

func pmicError(err error) error {
	c := errcode.BusFailure
	if errors.Is(err, rk809.ErrUnexpectedChip) {
		c = errcode.ChipMismatch
	}
	return &errcode.E{C: c, Msg: "rk809", Err: err}
}

func enableClockGating(s *session) error {
	for _, w := range s.board.ClockGates {
		s.regs.Write32(w.Addr, w.Value)
		s.log.Log("info", w.Name+" = "+conv.Hex32(w.Value))
	}
	return nil
}

func tuneCorePLL(s *session) error {
	w := s.board.CorePLL
	s.regs.Masked(w.Addr, w.Mask, w.Value)
	s.log.Log("info", w.Name+" = "+conv.Hex32(mmio.HiWord(w.Mask, w.Value)))
	return nil
}

func selectUSB3(s *session) error {
	for _, lm := range s.board.USB3Lanes {
		if err := s.selectLane(lm.Lane, lm.Mode); err != nil {
			return err
		}
	}
	return nil
}

func sdmmcPins(s *session) error { return s.applyPins(s.board.SDMMC) }

func emmcPins(s *session) error { return s.applyPins(s.board.EMMC) }
