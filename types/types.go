package types

// ------------------------
// Pin addressing
// ------------------------

// Pin is a pin index within a GPIO bank. Banks are split into four ports
// (A..D) of eight pins each, so PB2 is pin 10.
type Pin uint8

const (
	PA0 Pin = iota
	PA1
	PA2
	PA3
	PA4
	PA5
	PA6
	PA7
	PB0
	PB1
	PB2
	PB3
	PB4
	PB5
	PB6
	PB7
	PC0
	PC1
	PC2
	PC3
	PC4
	PC5
	PC6
	PC7
	PD0
	PD1
	PD2
	PD3
	PD4
	PD5
	PD6
	PD7
)

// PinsPerBank is the number of addressable pins in one GPIO bank.
const PinsPerBank = 32

// String renders the port-relative name, e.g. "PC6".
func (p Pin) String() string {
	if p >= PinsPerBank {
		return "P??"
	}
	return string([]byte{'P', 'A' + byte(p/8), '0' + byte(p%8)})
}

// Direction of a pin driven as plain GPIO.
type Direction uint8

const (
	DirInput Direction = iota
	DirOutput
)

func (d Direction) String() string {
	if d == DirOutput {
		return "out"
	}
	return "in"
}
