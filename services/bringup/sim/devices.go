package sim

import "boardinit-go/types"

// ---- MMIO (mmio.Bus) ----

func (b *Board) Read32(addr uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := b.regs[addr]
	_ = b.record(Event{Kind: EvMMIORead, Addr: addr, Value: v})
	return v
}

func (b *Board) Write32(addr uintptr, v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_ = b.record(Event{Kind: EvMMIOWrite, Addr: addr, Value: v})
	if b.hiword[addr] {
		mask := v >> 16
		cur := b.regs[addr] & 0xFFFF
		b.regs[addr] = (cur &^ mask) | (v & mask & 0xFFFF)
		return
	}
	b.regs[addr] = v
}

// Reg returns the current register value without tracing.
func (b *Board) Reg(addr uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.regs[addr]
}

// ---- Two-wire bus (drivers.I2C) ----

// Tx supports the byte-register protocol: w=[reg], len(r)=1 reads;
// w=[reg, val], r empty writes.
func (b *Board) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(w) == 0 {
		return ErrNoDevice
	}
	if len(w) >= 2 {
		ev := Event{Kind: EvI2CWrite, Dev: addr, Reg: w[0], Value: uint32(w[1])}
		if err := b.record(ev); err != nil {
			return err
		}
		if addr != b.i2cAddr {
			return ErrNoDevice
		}
		b.i2cRegs[w[0]] = w[1]
		return nil
	}
	v := b.i2cRegs[w[0]]
	ev := Event{Kind: EvI2CRead, Dev: addr, Reg: w[0], Value: uint32(v)}
	if err := b.record(ev); err != nil {
		return err
	}
	if addr != b.i2cAddr {
		return ErrNoDevice
	}
	if len(r) > 0 {
		r[0] = v
	}
	return nil
}

// PMICReg returns a byte register of the simulated PMIC without tracing.
func (b *Board) PMICReg(reg byte) byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.i2cRegs[reg]
}

// ---- Pads and GPIO ----

func (b *Board) pin(bank uint8, p types.Pin) *PinState {
	k := pinKey{bank, p}
	st := b.pins[k]
	if st == nil {
		st = &PinState{}
		b.pins[k] = st
	}
	return st
}

func (b *Board) ConfigurePin(d types.PinDescriptor) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	ev := Event{Kind: EvPinMux, Bank: d.Bank, Pin: d.Pin, Name: d.Name}
	if err := b.record(ev); err != nil {
		return err
	}
	st := b.pin(d.Bank, d.Pin)
	st.Desc = d
	st.Muxed = true
	return nil
}

func (b *Board) SetDirection(bank uint8, p types.Pin, dir types.Direction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(Event{Kind: EvPinDir, Bank: bank, Pin: p, Dir: dir}); err != nil {
		return err
	}
	b.pin(bank, p).Dir = dir
	return nil
}

func (b *Board) WritePin(bank uint8, p types.Pin, high bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(Event{Kind: EvPinWrite, Bank: bank, Pin: p, High: high}); err != nil {
		return err
	}
	st := b.pin(bank, p)
	st.High = high
	st.Driven = true
	return nil
}

// Pin returns a copy of a pad's state.
func (b *Board) Pin(bank uint8, p types.Pin) PinState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st := b.pins[pinKey{bank, p}]; st != nil {
		return *st
	}
	return PinState{}
}

// ---- SerDes lanes ----

func (b *Board) SelectLaneMode(lane int, mode types.PhyMode) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(Event{Kind: EvPhy, Lane: lane, Mode: mode}); err != nil {
		return err
	}
	b.lanes[lane] = mode
	return nil
}

// LaneMode returns the selected mode of a lane, or 0.
func (b *Board) LaneMode(lane int) types.PhyMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lanes[lane]
}

// ---- Voltage domains ----

func (b *Board) SetDomainVoltage(d types.VoltageDomain, level types.VoltageLevel) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(Event{Kind: EvDomain, Domain: d, Level: level}); err != nil {
		return err
	}
	b.domains[d] = level
	return nil
}

// DomainLevel returns the programmed level of d and whether it was set.
func (b *Board) DomainLevel(d types.VoltageDomain) (types.VoltageLevel, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.domains[d]
	return v, ok
}
