package types

// ------------------------
// Pin descriptors (iomux)
// ------------------------

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	case PullNone:
		return "none"
	default:
		return "invalid"
	}
}

// Drive is a pad drive-strength level. DriveDefault leaves the reset value.
type Drive uint8

const (
	DriveDefault Drive = iota
	Drive0
	Drive1
	Drive2
	Drive3
	Drive4
	Drive5
)

// DriveMax is the strongest level the pad controller accepts.
const DriveMax = Drive5

func (d Drive) String() string {
	if d == DriveDefault {
		return "default"
	}
	if d > DriveMax {
		return "invalid"
	}
	return string([]byte{'d', 'r', 'i', 'v', 'e', '0' + byte(d-Drive0)})
}

// InputMode selects the pad input buffer.
type InputMode uint8

const (
	InputDefault InputMode = iota
	InputSchmitt
)

// FuncGPIO is the mux selector for plain GPIO on every bank.
const FuncGPIO = 0

// FuncMax is the highest mux selector the iomux registers encode.
const FuncMax = 7

// PinDescriptor configures one pad. Name is diagnostic only.
type PinDescriptor struct {
	Name  string
	Bank  uint8
	Pin   Pin
	Func  uint8
	Pull  Pull
	Drive Drive
	Input InputMode
}

// NoLane marks a pin group that is not routed to a SerDes lane.
const NoLane = -1

// PinGroup is an ordered set of descriptors applied as one unit. Lane names
// the SerDes lane the group's functions route to, or NoLane.
type PinGroup struct {
	Name string
	Lane int
	Pins []PinDescriptor
}
