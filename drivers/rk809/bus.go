package rk809

import "boardinit-go/x/conv"

// RegError reports a failed transaction on one register.
type RegError struct {
	Op  string // "read" or "write"
	Reg byte
	Err error
}

func (e *RegError) Error() string {
	return "rk809 " + e.Op + " reg " + conv.Hex8(e.Reg) + ": " + e.Err.Error()
}
func (e *RegError) Unwrap() error { return e.Err }

// I2C 8-bit register operations: one address byte, one data byte.

func (d *Device) readReg(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, &RegError{Op: "read", Reg: reg, Err: err}
	}
	return d.r[0], nil
}

func (d *Device) writeReg(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	if err := d.i2c.Tx(d.addr, d.w[:2], nil); err != nil {
		return &RegError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}
