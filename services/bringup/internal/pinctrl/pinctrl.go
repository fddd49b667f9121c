// Package pinctrl applies named pin groups to the pad controller. A group is
// validated as a whole before its first pin is touched, then applied in
// order.
package pinctrl

import (
	"boardinit-go/errcode"
	"boardinit-go/types"
	"boardinit-go/x/conv"
)

// Controller is the per-pad primitive: mux function, pull, drive, input mode.
type Controller interface {
	ConfigurePin(d types.PinDescriptor) error
}

// LaneState reports whether a SerDes lane has had its mode selected.
type LaneState interface {
	LaneSelected(lane int) bool
}

type Configurator struct {
	ctl     Controller
	banks   uint8
	lanes   LaneState
	applied map[string]bool
}

func New(ctl Controller, banks uint8, lanes LaneState) *Configurator {
	return &Configurator{
		ctl:     ctl,
		banks:   banks,
		lanes:   lanes,
		applied: make(map[string]bool),
	}
}

// Validate checks every descriptor of g without touching hardware.
func (c *Configurator) Validate(g types.PinGroup) error {
	if g.Name == "" || len(g.Pins) == 0 {
		return &errcode.E{C: errcode.InvalidParams, Msg: "empty group " + g.Name}
	}
	for _, d := range g.Pins {
		if msg := checkDescriptor(d, c.banks); msg != "" {
			return &errcode.E{C: errcode.InvalidParams, Msg: g.Name + "/" + d.Name + ": " + msg}
		}
	}
	return nil
}

func checkDescriptor(d types.PinDescriptor, banks uint8) string {
	switch {
	case d.Bank >= banks:
		return "bank " + conv.Dec(int(d.Bank)) + " out of range"
	case d.Pin >= types.PinsPerBank:
		return "pin " + conv.Dec(int(d.Pin)) + " out of range"
	case d.Func > types.FuncMax:
		return "function " + conv.Dec(int(d.Func)) + " out of range"
	case d.Pull > types.PullDown:
		return "invalid pull"
	case d.Drive > types.DriveMax:
		return "invalid drive"
	case d.Input > types.InputSchmitt:
		return "invalid input mode"
	}
	return ""
}

// Apply validates g, checks that its SerDes lane (if any) is selected, then
// configures each pin in order. A group is applied at most once.
func (c *Configurator) Apply(g types.PinGroup) error {
	if err := c.Validate(g); err != nil {
		return err
	}
	if c.applied[g.Name] {
		return &errcode.E{C: errcode.OrderViolation, Msg: "group " + g.Name + " already applied"}
	}
	if g.Lane != types.NoLane && (c.lanes == nil || !c.lanes.LaneSelected(g.Lane)) {
		return &errcode.E{
			C:   errcode.OrderViolation,
			Msg: "group " + g.Name + " routes to lane " + conv.Dec(g.Lane) + " before its mode is selected",
		}
	}
	for _, d := range g.Pins {
		if err := c.ctl.ConfigurePin(d); err != nil {
			return &errcode.E{C: errcode.PinFailure, Msg: g.Name + "/" + d.Name, Err: err}
		}
	}
	c.applied[g.Name] = true
	return nil
}

// Applied reports whether the named group has been fully applied.
func (c *Configurator) Applied(name string) bool { return c.applied[name] }
