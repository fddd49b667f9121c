//go:build linux

// Package linuxhost provides bring-up capabilities backed by Linux userspace
// interfaces, for exercising drivers against real hardware from a running
// system.
package linuxhost

import (
	"errors"

	"github.com/platinasystems/i2c"
)

var ErrUnsupportedTx = errors.New("unsupported i2c transfer shape")

// I2C implements tinygo drivers.I2C on /dev/i2c-N using SMBus byte-data
// transfers. Each Tx opens the adapter, selects the slave and closes it again.
type I2C struct {
	index int
}

func NewI2C(index int) *I2C { return &I2C{index: index} }

// Tx supports w=[reg] with one byte read, and w=[reg, val] with no read.
func (b *I2C) Tx(addr uint16, w, r []byte) error {
	var (
		rw   i2c.RW
		data i2c.SMBusData
	)
	switch {
	case len(w) == 1 && len(r) == 1:
		rw = i2c.Read
	case len(w) == 2 && len(r) == 0:
		rw = i2c.Write
		data[0] = w[1]
	default:
		return ErrUnsupportedTx
	}

	var bus i2c.Bus
	if err := bus.Open(b.index); err != nil {
		return err
	}
	defer bus.Close()
	if err := bus.ForceSlaveAddress(int(addr)); err != nil {
		return err
	}
	if err := bus.Do(rw, w[0], i2c.ByteData, &data); err != nil {
		return err
	}
	if rw == i2c.Read {
		r[0] = data[0]
	}
	return nil
}
