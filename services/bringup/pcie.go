package bringup

import (
	"boardinit-go/errcode"
	"boardinit-go/types"
)

// bringUpPCIe routes both PCIe links to the M.2 connector. It selects the
// shared lane, applies both pin groups, drives the CLKREQ-to-SoC lines high
// and sets both iomux selects in one masked store. Link training is left to
// later firmware.
func bringUpPCIe(s *session) error {
	cfg := s.board.PCIe
	if err := s.selectLane(cfg.Lane, types.PhyModePCIe); err != nil {
		return err
	}
	for _, g := range cfg.Groups {
		if err := s.applyPins(g); err != nil {
			return err
		}
	}
	for _, l := range cfg.ClkReqSoC {
		if err := s.p.Pins.SetDirection(l.Bank, l.Pin, types.DirOutput); err != nil {
			return &errcode.E{C: errcode.PinFailure, Msg: l.Name + " direction", Err: err}
		}
		if err := s.p.Pins.WritePin(l.Bank, l.Pin, true); err != nil {
			return &errcode.E{C: errcode.PinFailure, Msg: l.Name + " write", Err: err}
		}
	}
	s.regs.Masked(cfg.IomuxSel.Addr, cfg.IomuxSel.Mask, cfg.IomuxSel.Value)
	return nil
}
