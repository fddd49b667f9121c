// Package rk809 constants: register sub-addresses and fixed identity values.
package rk809

const (
	// 7-bit I2C address.
	AddressDefault = 0x20

	// Decoded CHIP_NAME for the RK809.
	ChipNameRK809 = 0x809

	// --- Identification (read-only) ---
	regChipName = 0xED // R, CHIP_NAME[11:4]
	regChipVer  = 0xEE // R, CHIP_NAME[3:0] in 7:4, version in 3:0

	// --- Output enable banks ---
	regPowerEn1 = 0xB2 // R/W, LDO1..LDO4
	regPowerEn2 = 0xB3 // R/W, LDO5..LDO8
	regPowerEn3 = 0xB4 // R/W, LDO9, SW1, SW2, BUCK5

	// --- LDO on-voltage select (ON_VSEL), stride 2 ---
	regLDO1OnVsel = 0xCC
	regLDO9OnVsel = 0xDC

	// --- BUCK5 / switch configuration ---
	regBuck5SW1Config0 = 0xDE
	regBuck5Config1    = 0xDF
)

// NumLDO is the number of LDO outputs with an ON_VSEL register.
const NumLDO = 9

// NumEnableBanks is the number of POWER_EN registers.
const NumEnableBanks = 3

// LDOOnVselReg returns the ON_VSEL register of LDO n (1-based).
func LDOOnVselReg(n int) byte {
	return byte(regLDO1OnVsel + 2*(n-1))
}

// EnableBankReg returns POWER_EN register n (1-based).
func EnableBankReg(n int) byte {
	return byte(regPowerEn1 + (n - 1))
}

// Register addresses exported for trace inspection and simulation.
const (
	RegChipName       = regChipName
	RegChipVer        = regChipVer
	RegBuck5SW1Config = regBuck5SW1Config0
	RegBuck5Config1   = regBuck5Config1
)
