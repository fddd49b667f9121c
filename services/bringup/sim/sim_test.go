package sim

import (
	"errors"
	"testing"

	"boardinit-go/types"
)

func TestHiWordRegister(t *testing.T) {
	const a = 0x1000
	b := New(WithHiWord(a), WithRegister(a, 0x1234))
	b.Write32(a, 0x00FF00AB)
	if got := b.Reg(a); got != 0x12AB {
		t.Fatalf("reg=%#x want 0x12AB", got)
	}
	b.Write32(0x2000, 0xDEADBEEF)
	if got := b.Reg(0x2000); got != 0xDEADBEEF {
		t.Fatalf("plain reg=%#x", got)
	}
	tr := b.Trace()
	if len(tr) != 2 || tr[0].Kind != EvMMIOWrite {
		t.Fatalf("trace=%v", tr)
	}
}

func TestPMICRegisterFile(t *testing.T) {
	b := New()
	var r [1]byte
	if err := b.Tx(0x20, []byte{0xED}, r[:]); err != nil || r[0] != 0x80 {
		t.Fatalf("read chip name: %v %#x", err, r[0])
	}
	if err := b.Tx(0x20, []byte{0xCC, 0x0c}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.PMICReg(0xCC) != 0x0c {
		t.Fatalf("write not stored")
	}
	if err := b.Tx(0x21, []byte{0xED}, r[:]); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("want ErrNoDevice, got %v", err)
	}
}

func TestFailOn(t *testing.T) {
	b := New()
	b.FailOn(EvPhy, 2, nil)
	if err := b.SelectLaneMode(0, types.PhyModeUSB3); err != nil {
		t.Fatalf("first select: %v", err)
	}
	if err := b.SelectLaneMode(1, types.PhyModeUSB3); !errors.Is(err, ErrInjected) {
		t.Fatalf("second select: %v", err)
	}
	if b.LaneMode(1) != 0 {
		t.Fatalf("failed select changed state")
	}
	if b.LaneMode(0) != types.PhyModeUSB3 {
		t.Fatalf("lane 0 not selected")
	}
}

func TestPinsAndDomains(t *testing.T) {
	b := New()
	d := types.PinDescriptor{Name: "x", Bank: 1, Pin: types.PA4}
	if err := b.ConfigurePin(d); err != nil {
		t.Fatal(err)
	}
	_ = b.SetDirection(1, types.PA4, types.DirOutput)
	_ = b.WritePin(1, types.PA4, true)
	st := b.Pin(1, types.PA4)
	if !st.Muxed || st.Dir != types.DirOutput || !st.High || !st.Driven {
		t.Fatalf("pin state %+v", st)
	}
	_ = b.SetDomainVoltage(types.DomainVCCIO3, types.Vcc3V3)
	if lv, ok := b.DomainLevel(types.DomainVCCIO3); !ok || lv != types.Vcc3V3 {
		t.Fatalf("domain level %v %v", lv, ok)
	}
	if _, ok := b.DomainLevel(types.DomainPMUIO1); ok {
		t.Fatalf("unset domain reported")
	}
	want := []string{"pinmux x gpio1 PA4", "gpio1 PA4 dir out", "gpio1 PA4 = high", "domain VCCIO3=3.3V"}
	for i, ev := range b.Trace() {
		if ev.String() != want[i] {
			t.Fatalf("event %d %q want %q", i, ev.String(), want[i])
		}
	}
}
