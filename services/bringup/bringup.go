// Package bringup sequences board bring-up from reset to a state where
// general firmware can run: I/O voltage domains, PMIC, clock gating, core
// PLL tuning, SerDes lane modes, storage pin groups and PCIe routing.
//
// The sequence is a fixed Plan executed once. All hardware access goes
// through the capabilities in Platform.
package bringup

import (
	"boardinit-go/errcode"
	"boardinit-go/services/bringup/internal/setups"
)

// Run executes BoardPlan against p. It returns nil once every step has
// completed, or the first fatal step error. There is no rollback: hardware
// is left as the completed steps configured it.
func Run(p Platform) error {
	return run(BoardPlan(), &setups.RHOS, p)
}

func run(pl Plan, board *setups.Board, p Platform) error {
	if err := p.validate(); err != nil {
		return err
	}
	s := newSession(p, board)
	s.log.Log("info", "board "+board.Name+": bring-up start")
	if err := pl.execute(s); err != nil {
		return err
	}
	s.log.Log("info", "board "+board.Name+": bring-up done")
	return nil
}

// Status maps the result of Run to its stable code.
func Status(err error) errcode.Code { return errcode.Of(err) }

// BoardName returns the name of the board this build targets.
func BoardName() string { return setups.RHOS.Name }

// MaskedRegisters returns the addresses bring-up writes with hi-word masking.
func MaskedRegisters() []uintptr {
	return []uintptr{setups.RHOS.CorePLL.Addr, setups.RHOS.PCIe.IomuxSel.Addr}
}
