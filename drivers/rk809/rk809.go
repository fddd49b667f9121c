// Package rk809 provides a minimal driver for the RK809 power-management IC,
// limited to what board bring-up needs: identification and one-shot
// programming of the LDO trims, output enables and BUCK5/switch config.
//
// Design notes (datasheet references):
// • I2C, 8-bit register address, 8-bit data.
// • Default 7-bit address = 0x20.
// • CHIP_NAME is 12 bits split across 0xED and the high nibble of 0xEE.
// • ON_VSEL must hold a valid level before the matching POWER_EN bit is set.
package rk809

import "tinygo.org/x/drivers"

// Settings are the per-board register values written by Program.
type Settings struct {
	// LDOOnVsel[i] is written to LDO(i+1)_ON_VSEL.
	LDOOnVsel [NumLDO]byte
	// PowerEn[i] is written to POWER_EN(i+1).
	PowerEn [NumEnableBanks]byte

	Buck5SW1Config0 byte
	Buck5Config1    byte
}

type Config struct {
	Address uint16
	// ChipName is the expected decoded CHIP_NAME; 0 selects the RK809.
	ChipName uint16
}

type Device struct {
	i2c  drivers.I2C
	addr uint16
	want uint16

	id         ID
	identified bool

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte
}

func New(i2c drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	want := cfg.ChipName
	if want == 0 {
		want = ChipNameRK809
	}
	return &Device{i2c: i2c, addr: addr, want: want}
}

// Address returns the 7-bit bus address in use.
func (d *Device) Address() uint16 { return d.addr }

// Identify reads CHIP_NAME then CHIP_VER and validates the decoded name.
// Any transaction failure or mismatch leaves the device unidentified.
func (d *Device) Identify() (ID, error) {
	d.identified = false
	name, err := d.readReg(regChipName)
	if err != nil {
		return ID{}, err
	}
	ver, err := d.readReg(regChipVer)
	if err != nil {
		return ID{}, err
	}
	id := DecodeID(name, ver)
	if err := id.ValidateAgainst(d.want); err != nil {
		return id, err
	}
	d.id = id
	d.identified = true
	return id, nil
}

// Program writes every LDO trim, then every enable bank, then the BUCK5
// configuration. It stops at the first failed write; earlier writes stay
// applied. Identify must have succeeded first.
func (d *Device) Program(s Settings) error {
	if !d.identified {
		return ErrNotIdentified
	}
	for i, v := range s.LDOOnVsel {
		if err := d.writeReg(LDOOnVselReg(i+1), v); err != nil {
			return err
		}
	}
	for i, v := range s.PowerEn {
		if err := d.writeReg(EnableBankReg(i+1), v); err != nil {
			return err
		}
	}
	if err := d.writeReg(regBuck5SW1Config0, s.Buck5SW1Config0); err != nil {
		return err
	}
	return d.writeReg(regBuck5Config1, s.Buck5Config1)
}
