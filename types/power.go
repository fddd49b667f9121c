package types

// ------------------------
// Voltage domains
// ------------------------

// VoltageDomain identifies an SoC I/O supply rail.
type VoltageDomain uint8

const (
	DomainPMUIO1 VoltageDomain = iota
	DomainPMUIO2
	DomainVCCIO1
	DomainVCCIO2
	DomainVCCIO3
	DomainVCCIO4
	DomainVCCIO5
	DomainVCCIO6
	DomainVCCIO7
)

var domainNames = [...]string{
	DomainPMUIO1: "PMUIO1",
	DomainPMUIO2: "PMUIO2",
	DomainVCCIO1: "VCCIO1",
	DomainVCCIO2: "VCCIO2",
	DomainVCCIO3: "VCCIO3",
	DomainVCCIO4: "VCCIO4",
	DomainVCCIO5: "VCCIO5",
	DomainVCCIO6: "VCCIO6",
	DomainVCCIO7: "VCCIO7",
}

func (d VoltageDomain) String() string {
	if int(d) < len(domainNames) {
		return domainNames[d]
	}
	return "UNKNOWN"
}

// VoltageLevel is the I/O voltage a domain is set to.
type VoltageLevel uint8

const (
	Vcc1V8 VoltageLevel = iota + 1
	Vcc3V3
)

func (v VoltageLevel) String() string {
	switch v {
	case Vcc1V8:
		return "1.8V"
	case Vcc3V3:
		return "3.3V"
	default:
		return "invalid"
	}
}

// DomainSetting pairs a domain with its target level.
type DomainSetting struct {
	Domain VoltageDomain
	Level  VoltageLevel
}

// SkippedDomain documents a domain deliberately left unprogrammed.
type SkippedDomain struct {
	Domain VoltageDomain
	Reason string
}
