package bringup

import (
	"errors"
	"strings"
	"testing"

	"boardinit-go/drivers/rk809"
	"boardinit-go/errcode"
	"boardinit-go/services/bringup/internal/setups"
	"boardinit-go/services/bringup/sim"
	"boardinit-go/types"
)

// ---- Helpers ----

type logLines []string

func (l *logLines) logger() Logger {
	return LoggerFunc(func(level, msg string) { *l = append(*l, level+": "+msg) })
}

func (l logLines) contains(s string) bool {
	for _, line := range l {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func platformFor(b *sim.Board, log Logger) Platform {
	return Platform{MMIO: b, I2C: b, Pins: b, PHY: b, Domains: b, Log: log}
}

// sig is a compact, comparable rendering of one trace event.
type sig struct {
	kind sim.EventKind
	key  uint64
	val  uint32
}

func sigOf(ev sim.Event) sig {
	switch ev.Kind {
	case sim.EvDomain:
		return sig{ev.Kind, uint64(ev.Domain), uint32(ev.Level)}
	case sim.EvI2CRead:
		return sig{ev.Kind, uint64(ev.Dev)<<8 | uint64(ev.Reg), 0}
	case sim.EvI2CWrite:
		return sig{ev.Kind, uint64(ev.Dev)<<8 | uint64(ev.Reg), ev.Value}
	case sim.EvMMIOWrite, sim.EvMMIORead:
		return sig{ev.Kind, uint64(ev.Addr), ev.Value}
	case sim.EvPhy:
		return sig{ev.Kind, uint64(ev.Lane), uint32(ev.Mode)}
	case sim.EvPinMux, sim.EvPinDir, sim.EvPinWrite:
		v := uint32(ev.Dir)
		if ev.High {
			v = 1
		}
		return sig{ev.Kind, uint64(ev.Bank)<<8 | uint64(ev.Pin), v}
	}
	return sig{kind: ev.Kind}
}

func expectedTrace(bd *setups.Board) []sig {
	var want []sig
	for _, d := range bd.Domains {
		want = append(want, sig{sim.EvDomain, uint64(d.Domain), uint32(d.Level)})
	}
	pins := func(g types.PinGroup) {
		for _, p := range g.Pins {
			want = append(want, sig{sim.EvPinMux, uint64(p.Bank)<<8 | uint64(p.Pin), 0})
		}
	}
	pins(bd.PMIC.Pins)
	dev := uint64(bd.PMIC.Address) << 8
	want = append(want,
		sig{sim.EvI2CRead, dev | 0xED, 0},
		sig{sim.EvI2CRead, dev | 0xEE, 0},
	)
	for i, v := range bd.PMIC.Settings.LDOOnVsel {
		want = append(want, sig{sim.EvI2CWrite, dev | uint64(rk809.LDOOnVselReg(i+1)), uint32(v)})
	}
	for i, v := range bd.PMIC.Settings.PowerEn {
		want = append(want, sig{sim.EvI2CWrite, dev | uint64(rk809.EnableBankReg(i+1)), uint32(v)})
	}
	want = append(want,
		sig{sim.EvI2CWrite, dev | 0xDE, uint32(bd.PMIC.Settings.Buck5SW1Config0)},
		sig{sim.EvI2CWrite, dev | 0xDF, uint32(bd.PMIC.Settings.Buck5Config1)},
		sig{sim.EvMMIOWrite, setups.PMUNocAutoCon0, 0xFFFFFFFF},
		sig{sim.EvMMIOWrite, setups.PMUNocAutoCon1, 0x000F000F},
		sig{sim.EvMMIOWrite, setups.GRFCPUCorePVTPLL0, 0x00FB002B},
		sig{sim.EvPhy, 0, uint32(types.PhyModeUSB3)},
		sig{sim.EvPhy, 1, uint32(types.PhyModeUSB3)},
	)
	pins(bd.SDMMC)
	pins(bd.EMMC)
	want = append(want, sig{sim.EvPhy, 2, uint32(types.PhyModePCIe)})
	for _, g := range bd.PCIe.Groups {
		pins(g)
	}
	want = append(want,
		sig{sim.EvPinDir, 1<<8 | uint64(types.PA4), uint32(types.DirOutput)},
		sig{sim.EvPinWrite, 1<<8 | uint64(types.PA4), 1},
		sig{sim.EvPinDir, 4<<8 | uint64(types.PC6), uint32(types.DirOutput)},
		sig{sim.EvPinWrite, 4<<8 | uint64(types.PC6), 1},
		sig{sim.EvMMIOWrite, setups.GRFIOFuncSel5, 0x00CC0088},
	)
	return want
}

// ---- End to end ----

func TestRunEndToEndTrace(t *testing.T) {
	b := sim.New()
	var lines logLines
	if err := Run(platformFor(b, lines.logger())); err != nil {
		t.Fatalf("run: %v", err)
	}
	if Status(nil) != errcode.OK {
		t.Fatalf("status of success")
	}

	got := b.Trace()
	want := expectedTrace(&setups.RHOS)
	if len(got) != len(want) {
		t.Fatalf("trace has %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if s := sigOf(got[i]); s != want[i] {
			t.Fatalf("event %d: got %v (%+v) want %+v", i, got[i], s, want[i])
		}
	}

	// Group counts in the order the board applies them.
	if n := len(setups.RHOS.Domains); n != 8 {
		t.Fatalf("board programs %d domains", n)
	}
	if !lines.contains("PMIC: detected RK809 ver 0xF") {
		t.Fatalf("missing PMIC identity log: %v", lines)
	}
	if !lines.contains("PMU_NOC_AUTO_CON0 = 0xFFFFFFFF") || !lines.contains("CPU_GRF_COREPVTPLL_CON0 = 0x00FB002B") {
		t.Fatalf("register stores not logged: %v", lines)
	}
	if !lines.contains("domain PMUIO1 skipped") {
		t.Fatalf("skipped domain not logged: %v", lines)
	}
	if _, ok := b.DomainLevel(types.DomainPMUIO1); ok {
		t.Fatalf("PMUIO1 must not be programmed")
	}
}

func TestRunNeverReadsRegisters(t *testing.T) {
	b := sim.New()
	if err := Run(platformFor(b, LoggerFunc(func(string, string) {}))); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, ev := range b.Trace() {
		if ev.Kind == sim.EvMMIORead {
			t.Fatalf("unexpected register read: %v", ev)
		}
	}
}

// ---- Ordering properties ----

func TestRegulatorAccessAfterBusPins(t *testing.T) {
	b := sim.New()
	if err := Run(platformFor(b, LoggerFunc(func(string, string) {}))); err != nil {
		t.Fatalf("run: %v", err)
	}
	busPins := map[string]bool{}
	for _, p := range setups.RHOS.PMIC.Pins.Pins {
		busPins[p.Name] = true
	}
	seen := 0
	for _, ev := range b.Trace() {
		switch ev.Kind {
		case sim.EvPinMux:
			if busPins[ev.Name] {
				seen++
			}
		case sim.EvI2CRead, sim.EvI2CWrite:
			if seen != len(busPins) {
				t.Fatalf("PMIC accessed after %d of %d bus pins: %v", seen, len(busPins), ev)
			}
		}
	}
}

func TestLaneSelectedBeforeRoutedPins(t *testing.T) {
	b := sim.New()
	if err := Run(platformFor(b, LoggerFunc(func(string, string) {}))); err != nil {
		t.Fatalf("run: %v", err)
	}
	laneOf := map[string]int{}
	for _, g := range []types.PinGroup{setups.RHOS.SDMMC, setups.RHOS.EMMC, setups.RHOS.PMIC.Pins} {
		for _, p := range g.Pins {
			laneOf[p.Name] = g.Lane
		}
	}
	for _, g := range setups.RHOS.PCIe.Groups {
		for _, p := range g.Pins {
			laneOf[p.Name] = g.Lane
		}
	}
	selected := map[int]int{}
	for _, ev := range b.Trace() {
		switch ev.Kind {
		case sim.EvPhy:
			selected[ev.Lane]++
		case sim.EvPinMux:
			lane, ok := laneOf[ev.Name]
			if !ok {
				t.Fatalf("unknown pin %q", ev.Name)
			}
			if lane != types.NoLane && selected[lane] == 0 {
				t.Fatalf("pin %s configured before lane %d", ev.Name, lane)
			}
		}
	}
	for lane, n := range selected {
		if n != 1 {
			t.Fatalf("lane %d selected %d times", lane, n)
		}
	}
}

func TestTrimsBeforeEnables(t *testing.T) {
	b := sim.New()
	if err := Run(platformFor(b, LoggerFunc(func(string, string) {}))); err != nil {
		t.Fatalf("run: %v", err)
	}
	trims := 0
	for _, ev := range b.Trace() {
		if ev.Kind != sim.EvI2CWrite {
			continue
		}
		switch {
		case ev.Reg >= 0xCC && ev.Reg <= 0xDC:
			trims++
		case ev.Reg >= 0xB2 && ev.Reg <= 0xB4:
			if trims != rk809.NumLDO {
				t.Fatalf("enable %#x written after only %d trims", ev.Reg, trims)
			}
		}
	}
}

func TestMaskedWritesPreserveOtherBits(t *testing.T) {
	pll, iomux := setups.RHOS.CorePLL, setups.RHOS.PCIe.IomuxSel
	for _, initial := range []uint32{0x0000, 0xFFFF, 0xA5A5, 0x0104} {
		b := sim.New(
			sim.WithHiWord(pll.Addr, iomux.Addr),
			sim.WithRegister(pll.Addr, initial),
			sim.WithRegister(iomux.Addr, initial),
		)
		if err := Run(platformFor(b, LoggerFunc(func(string, string) {}))); err != nil {
			t.Fatalf("run: %v", err)
		}
		for _, w := range []setups.MaskedWrite{pll, iomux} {
			got := b.Reg(w.Addr)
			m := uint32(w.Mask)
			if got&^m != initial&^m {
				t.Fatalf("%s initial=%#x: unmasked bits changed, got %#x", w.Name, initial, got)
			}
			if got&m != uint32(w.Value)&m {
				t.Fatalf("%s initial=%#x: field %#x want %#x", w.Name, initial, got&m, w.Value)
			}
		}
	}
}

func TestPCIeRouting(t *testing.T) {
	b := sim.New(sim.WithHiWord(setups.GRFIOFuncSel5))
	if err := Run(platformFor(b, LoggerFunc(func(string, string) {}))); err != nil {
		t.Fatalf("run: %v", err)
	}
	if b.LaneMode(2) != types.PhyModePCIe {
		t.Fatalf("lane 2 mode %v", b.LaneMode(2))
	}
	for _, l := range setups.RHOS.PCIe.ClkReqSoC {
		st := b.Pin(l.Bank, l.Pin)
		if !st.Muxed || st.Dir != types.DirOutput || !st.High {
			t.Fatalf("%s state %+v", l.Name, st)
		}
	}
	if got := b.Reg(setups.GRFIOFuncSel5); got != 0x88 {
		t.Fatalf("iomux sel = %#x want M2 for both links", got)
	}
}

// ---- Failures ----

func TestFailures(t *testing.T) {
	cases := []struct {
		name     string
		kind     sim.EventKind
		nth      int
		opts     []sim.Option
		code     errcode.Code
		step     string
		lastKind sim.EventKind
	}{
		{name: "domain", kind: sim.EvDomain, nth: 3, code: errcode.DomainFailure, step: StepVoltageDomains, lastKind: sim.EvDomain},
		{name: "chip name read", kind: sim.EvI2CRead, nth: 1, code: errcode.BusFailure, step: StepPMIC, lastKind: sim.EvI2CRead},
		{name: "trim write", kind: sim.EvI2CWrite, nth: 5, code: errcode.BusFailure, step: StepPMIC, lastKind: sim.EvI2CWrite},
		{name: "wrong chip", opts: []sim.Option{sim.WithPMIC(0x20, 0x81, 0x7F)}, code: errcode.ChipMismatch, step: StepPMIC, lastKind: sim.EvI2CRead},
		{name: "usb3 phy", kind: sim.EvPhy, nth: 2, code: errcode.PhyFailure, step: StepUSB3Phy, lastKind: sim.EvPhy},
		{name: "pcie phy", kind: sim.EvPhy, nth: 3, code: errcode.PhyFailure, step: StepPCIe, lastKind: sim.EvPhy},
		{name: "emmc pad", kind: sim.EvPinMux, nth: 2 + 8 + 1, code: errcode.PinFailure, step: StepEMMCPins, lastKind: sim.EvPinMux},
		{name: "clkreq dir", kind: sim.EvPinDir, nth: 2, code: errcode.PinFailure, step: StepPCIe, lastKind: sim.EvPinDir},
	}
	for _, c := range cases {
		b := sim.New(c.opts...)
		if c.kind != 0 {
			b.FailOn(c.kind, c.nth, nil)
		}
		var lines logLines
		err := Run(platformFor(b, lines.logger()))
		if Status(err) != c.code {
			t.Fatalf("%s: status %q want %q (err=%v)", c.name, Status(err), c.code, err)
		}
		var e *errcode.E
		if !errors.As(err, &e) || e.Op != c.step {
			t.Fatalf("%s: want error from step %q, got %v", c.name, c.step, err)
		}
		if c.kind != 0 && !errors.Is(err, sim.ErrInjected) {
			t.Fatalf("%s: cause lost: %v", c.name, err)
		}
		tr := b.Trace()
		if last := tr[len(tr)-1]; last.Kind != c.lastKind {
			t.Fatalf("%s: bring-up continued past the failure, last event %v", c.name, last)
		}
		if !lines.contains("err: " + c.step) {
			t.Fatalf("%s: failure not logged: %v", c.name, lines)
		}
	}
}

func TestWrongChipWritesNothing(t *testing.T) {
	b := sim.New(sim.WithPMIC(0x20, 0x80, 0x8F))
	err := Run(platformFor(b, LoggerFunc(func(string, string) {})))
	if !errors.Is(err, rk809.ErrUnexpectedChip) {
		t.Fatalf("want ErrUnexpectedChip, got %v", err)
	}
	for _, ev := range b.Trace() {
		if ev.Kind == sim.EvI2CWrite || ev.Kind == sim.EvMMIOWrite {
			t.Fatalf("write after mismatch: %v", ev)
		}
	}
}

func TestMissingCapability(t *testing.T) {
	b := sim.New()
	p := platformFor(b, nil)
	p.PHY = nil
	err := Run(p)
	if Status(err) != errcode.InvalidParams || !strings.Contains(err.Error(), "phy") {
		t.Fatalf("want invalid_params naming phy, got %v", err)
	}
	if len(b.Trace()) != 0 {
		t.Fatalf("hardware touched with an incomplete platform")
	}
}
