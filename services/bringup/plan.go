package bringup

import (
	"strings"

	"boardinit-go/drivers/mmio"
	"boardinit-go/errcode"
	"boardinit-go/services/bringup/internal/pinctrl"
	"boardinit-go/services/bringup/internal/setups"
	"boardinit-go/types"
	"boardinit-go/x/conv"
)

// Capability names a Platform field a step consumes.
type Capability uint8

const (
	CapMMIO Capability = iota
	CapI2C
	CapPins
	CapPHY
	CapDomains
)

func (c Capability) String() string {
	switch c {
	case CapMMIO:
		return "mmio"
	case CapI2C:
		return "i2c"
	case CapPins:
		return "pins"
	case CapPHY:
		return "phy"
	case CapDomains:
		return "domains"
	default:
		return "unknown"
	}
}

// Policy decides what a step failure does to the rest of the plan.
type Policy uint8

const (
	// Fatal aborts the plan on failure.
	Fatal Policy = iota
	// LogAndContinue logs the failure and runs the remaining steps; later
	// steps must not rely on anything the failed step would have set up.
	LogAndContinue
)

func (p Policy) String() string {
	if p == LogAndContinue {
		return "log-and-continue"
	}
	return "fatal"
}

// Step is one named unit of the bring-up plan.
type Step struct {
	Name   string
	Uses   []Capability
	Policy Policy
	// Requires lists steps that must have completed successfully first.
	Requires []string

	run func(*session) error
}

// Plan is the ordered list of steps. Order is the only sequencing mechanism.
type Plan []Step

// Describe renders one line per step for audit.
func (pl Plan) Describe() string {
	var b strings.Builder
	for i, st := range pl {
		b.WriteString(conv.Dec(i + 1))
		b.WriteString(". ")
		b.WriteString(st.Name)
		b.WriteString(" uses=")
		for j, c := range st.Uses {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(c.String())
		}
		if len(st.Requires) > 0 {
			b.WriteString(" after=")
			b.WriteString(strings.Join(st.Requires, ","))
		}
		b.WriteString(" policy=")
		b.WriteString(st.Policy.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// session is the state shared by the steps of one run.
type session struct {
	p     Platform
	board *setups.Board
	log   Logger
	regs  mmio.Writer
	pins  *pinctrl.Configurator
	lanes map[int]types.PhyMode
	done  map[string]bool
}

func newSession(p Platform, board *setups.Board) *session {
	s := &session{
		p:     p,
		board: board,
		log:   p.Log,
		regs:  mmio.NewWriter(p.MMIO),
		lanes: make(map[int]types.PhyMode),
		done:  make(map[string]bool),
	}
	if s.log == nil {
		s.log = consoleLogger{}
	}
	s.pins = pinctrl.New(p.Pins, board.GPIOBanks, s)
	return s
}

// LaneSelected implements pinctrl.LaneState.
func (s *session) LaneSelected(lane int) bool {
	_, ok := s.lanes[lane]
	return ok
}

// selectLane selects a lane's mode exactly once.
func (s *session) selectLane(lane int, mode types.PhyMode) error {
	if prev, ok := s.lanes[lane]; ok {
		return &errcode.E{
			C:   errcode.OrderViolation,
			Msg: "lane " + conv.Dec(lane) + " already selected as " + prev.String(),
		}
	}
	if err := s.p.PHY.SelectLaneMode(lane, mode); err != nil {
		return &errcode.E{C: errcode.PhyFailure, Msg: "lane " + conv.Dec(lane) + " " + mode.String(), Err: err}
	}
	s.lanes[lane] = mode
	s.log.Log("info", "phy lane "+conv.Dec(lane)+" -> "+mode.String())
	return nil
}

func (s *session) applyPins(g types.PinGroup) error {
	if err := s.pins.Apply(g); err != nil {
		return err
	}
	s.log.Log("info", "pins "+g.Name+" applied ("+conv.Dec(len(g.Pins))+")")
	return nil
}

// execute runs the plan in order and returns the first fatal failure.
func (pl Plan) execute(s *session) error {
	for _, st := range pl {
		err := s.checkRequires(st)
		if err == nil {
			s.log.Log("info", "step "+st.Name)
			err = st.run(s)
		}
		if err == nil {
			s.done[st.Name] = true
			continue
		}
		err = stepError(st.Name, err)
		if st.Policy == LogAndContinue {
			s.log.Log("warn", err.Error())
			continue
		}
		s.log.Log("err", err.Error())
		return err
	}
	return nil
}

func (s *session) checkRequires(st Step) error {
	for _, r := range st.Requires {
		if !s.done[r] {
			return &errcode.E{C: errcode.OrderViolation, Msg: "requires " + r}
		}
	}
	return nil
}

// stepError tags err with the step name, keeping its code.
func stepError(step string, err error) error {
	if e, ok := err.(*errcode.E); ok && e.Op == "" {
		e.Op = step
		return e
	}
	return errcode.Wrap(errcode.Of(err), step, err)
}
