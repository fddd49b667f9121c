package rk809

import (
	"errors"

	"boardinit-go/x/conv"
)

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrUnexpectedChip = errors.New("unexpected PMIC chip name")
	ErrNotIdentified  = errors.New("PMIC not identified")
)

// ID is the decoded identity of the PMIC.
type ID struct {
	Name    uint16 // 12 bits, e.g. 0x809
	Version uint8  // 4 bits
}

// DecodeID combines the CHIP_NAME and CHIP_VER register values.
func DecodeID(name, ver byte) ID {
	return ID{
		Name:    uint16(name)<<4 | uint16(ver>>4),
		Version: ver & 0x0F,
	}
}

// String renders the identity as "RK809 ver 0xF".
func (id ID) String() string {
	return "RK" + conv.HexN(uint64(id.Name), 3) + " ver 0x" + conv.HexN(uint64(id.Version), 1)
}

// MismatchError carries the decoded identity that failed validation.
type MismatchError struct {
	Got  ID
	Want uint16
}

func (e *MismatchError) Error() string {
	return ErrUnexpectedChip.Error() + ": got " + e.Got.String()
}
func (e *MismatchError) Unwrap() error { return ErrUnexpectedChip }

// ValidateAgainst checks the decoded chip name against the expected one.
func (id ID) ValidateAgainst(want uint16) error {
	if id.Name != want {
		return &MismatchError{Got: id, Want: want}
	}
	return nil
}
