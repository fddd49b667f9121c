// Package sim is a host-side model of the bring-up hardware: a 32-bit
// register space with optional hi-word write-enable semantics, an RK809-like
// byte register file on the two-wire bus, a pad controller, SerDes lanes and
// I/O voltage domains. Every primitive call is appended to one ordered trace.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"boardinit-go/types"
)

var (
	ErrInjected = errors.New("injected fault")
	ErrNoDevice = errors.New("no device at address")
)

// EventKind classifies trace entries.
type EventKind uint8

const (
	EvDomain EventKind = iota + 1
	EvI2CRead
	EvI2CWrite
	EvMMIORead
	EvMMIOWrite
	EvPhy
	EvPinMux
	EvPinDir
	EvPinWrite
)

var kindNames = [...]string{
	EvDomain:    "domain",
	EvI2CRead:   "i2c-read",
	EvI2CWrite:  "i2c-write",
	EvMMIORead:  "mmio-read",
	EvMMIOWrite: "mmio-write",
	EvPhy:       "phy",
	EvPinMux:    "pinmux",
	EvPinDir:    "pin-dir",
	EvPinWrite:  "pin-write",
}

func (k EventKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Event is one primitive call. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	Addr  uintptr // mmio
	Value uint32  // mmio value, i2c data byte

	Dev uint16 // i2c device address
	Reg byte   // i2c register

	Bank uint8
	Pin  types.Pin
	Name string // pin descriptor name
	Dir  types.Direction
	High bool

	Lane int
	Mode types.PhyMode

	Domain types.VoltageDomain
	Level  types.VoltageLevel
}

func (e Event) String() string {
	switch e.Kind {
	case EvDomain:
		return fmt.Sprintf("domain %s=%s", e.Domain, e.Level)
	case EvI2CRead:
		return fmt.Sprintf("i2c read  %#02x[%#02x] -> %#02x", e.Dev, e.Reg, e.Value)
	case EvI2CWrite:
		return fmt.Sprintf("i2c write %#02x[%#02x] = %#02x", e.Dev, e.Reg, e.Value)
	case EvMMIORead:
		return fmt.Sprintf("mmio read  %#08x -> %#08x", e.Addr, e.Value)
	case EvMMIOWrite:
		return fmt.Sprintf("mmio write %#08x = %#08x", e.Addr, e.Value)
	case EvPhy:
		return fmt.Sprintf("phy lane %d %s", e.Lane, e.Mode)
	case EvPinMux:
		return fmt.Sprintf("pinmux %s gpio%d %s", e.Name, e.Bank, e.Pin)
	case EvPinDir:
		return fmt.Sprintf("gpio%d %s dir %s", e.Bank, e.Pin, e.Dir)
	case EvPinWrite:
		level := "low"
		if e.High {
			level = "high"
		}
		return fmt.Sprintf("gpio%d %s = %s", e.Bank, e.Pin, level)
	}
	return e.Kind.String()
}

type pinKey struct {
	bank uint8
	pin  types.Pin
}

// PinState is the modelled state of one pad.
type PinState struct {
	Desc   types.PinDescriptor
	Muxed  bool
	Dir    types.Direction
	High   bool
	Driven bool
}

type fault struct {
	nth int // 1-based occurrence of the kind to fail
	err error
}

// Board is the simulated hardware. The zero value is not usable; use New.
type Board struct {
	mu sync.Mutex

	trace  []Event
	counts map[EventKind]int
	faults map[EventKind]fault

	regs   map[uintptr]uint32
	hiword map[uintptr]bool

	i2cAddr uint16
	i2cRegs map[byte]byte

	pins    map[pinKey]*PinState
	lanes   map[int]types.PhyMode
	domains map[types.VoltageDomain]types.VoltageLevel
}

// Option configures a Board.
type Option func(*Board)

// WithPMIC places the byte register file at addr with the given
// identification register values.
func WithPMIC(addr uint16, chipName, chipVer byte) Option {
	return func(b *Board) {
		b.i2cAddr = addr
		b.i2cRegs[0xED] = chipName
		b.i2cRegs[0xEE] = chipVer
	}
}

// WithHiWord marks registers that take the upper 16 bits as a write enable.
func WithHiWord(addrs ...uintptr) Option {
	return func(b *Board) {
		for _, a := range addrs {
			b.hiword[a] = true
		}
	}
}

// WithRegister presets a register value.
func WithRegister(addr uintptr, v uint32) Option {
	return func(b *Board) { b.regs[addr] = v }
}

// New returns a board at reset with an RK809 (name 0x809, version 0xF) at 0x20.
func New(opts ...Option) *Board {
	b := &Board{
		counts:  make(map[EventKind]int),
		faults:  make(map[EventKind]fault),
		regs:    make(map[uintptr]uint32),
		hiword:  make(map[uintptr]bool),
		i2cRegs: make(map[byte]byte),
		pins:    make(map[pinKey]*PinState),
		lanes:   make(map[int]types.PhyMode),
		domains: make(map[types.VoltageDomain]types.VoltageLevel),
	}
	WithPMIC(0x20, 0x80, 0x9F)(b)
	for _, o := range opts {
		o(b)
	}
	return b
}

// FailOn makes the nth call (1-based) of kind fail with err. MMIO has no
// error path and cannot be failed.
func (b *Board) FailOn(kind EventKind, nth int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	b.faults[kind] = fault{nth: nth, err: err}
}

// record appends ev and returns the injected error for this occurrence, if any.
// Callers hold b.mu.
func (b *Board) record(ev Event) error {
	b.trace = append(b.trace, ev)
	b.counts[ev.Kind]++
	if f, ok := b.faults[ev.Kind]; ok && f.nth == b.counts[ev.Kind] {
		return f.err
	}
	return nil
}

// Trace returns a copy of all events so far.
func (b *Board) Trace() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.trace...)
}
