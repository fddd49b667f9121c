package setups

import (
	"boardinit-go/drivers/mmio"
	"boardinit-go/drivers/rk809"
	"boardinit-go/types"
)

// Register blocks.
const (
	cpuGRF  = 0xFDC30000
	sysGRF  = 0xFDC60000
	pmuBase = 0xFDD90000
)

const (
	PMUNocAutoCon0     = pmuBase + 0x0070
	PMUNocAutoCon1     = pmuBase + 0x0074
	GRFCPUCorePVTPLL0  = cpuGRF + 0x0010
	GRFIOFuncSel5      = sysGRF + 0x0314
	pvtpllStart        = 1 << 0
	pvtpllOscEn        = 1 << 1
	pcie20IomuxSelM2   = 1 << 3
	pcie30x2IomuxSelM2 = 1 << 7
	pcie20IomuxMask    = 0x3 << 2
	pcie30x2IomuxMask  = 0x3 << 6
	pvtpllRingLength   = 5
)

var pvtpllRingLengthSel = mmio.Field{Shift: 3, Width: 5}

// PCIe links route to SerDes lane 2.
const pcieLane = 2

var sdmmc0Pins = types.PinGroup{
	Name: "sdmmc0",
	Lane: types.NoLane,
	Pins: []types.PinDescriptor{
		{Name: "sdmmc0_d0", Bank: 1, Pin: types.PD5, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "sdmmc0_d1", Bank: 1, Pin: types.PD6, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "sdmmc0_d2", Bank: 1, Pin: types.PD7, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "sdmmc0_d3", Bank: 2, Pin: types.PA0, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "sdmmc0_cmd", Bank: 2, Pin: types.PA1, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "sdmmc0_clk", Bank: 2, Pin: types.PA2, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "sdmmc0_pwr", Bank: 2, Pin: types.PB0, Func: types.FuncGPIO, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "sdmmc0_1v8en", Bank: 2, Pin: types.PB7, Func: types.FuncGPIO, Pull: types.PullUp, Drive: types.Drive2},
	},
}

var emmcPins = types.PinGroup{
	Name: "emmc",
	Lane: types.NoLane,
	Pins: []types.PinDescriptor{
		{Name: "emmc_d0", Bank: 1, Pin: types.PB4, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_d1", Bank: 1, Pin: types.PB5, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_d2", Bank: 1, Pin: types.PB6, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_d3", Bank: 1, Pin: types.PB7, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_d4", Bank: 1, Pin: types.PC0, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_d5", Bank: 1, Pin: types.PC1, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_d6", Bank: 1, Pin: types.PC2, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_d7", Bank: 1, Pin: types.PC3, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_rstn", Bank: 1, Pin: types.PC7, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_cmd", Bank: 1, Pin: types.PC4, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_clk", Bank: 1, Pin: types.PC5, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
		{Name: "emmc_dsk", Bank: 1, Pin: types.PC6, Func: 1, Pull: types.PullUp, Drive: types.Drive2},
	},
}

var pcie30x2Pins = types.PinGroup{
	Name: "pcie30x2",
	Lane: pcieLane,
	Pins: []types.PinDescriptor{
		{Name: "pcie30x2_clkreqnm2", Bank: 4, Pin: types.PC2, Func: 4, Pull: types.PullNone},
		{Name: "pcie30x2_perstnm2", Bank: 4, Pin: types.PC4, Func: 4, Pull: types.PullNone},
		{Name: "pcie30x2_wakenm2", Bank: 4, Pin: types.PC3, Func: 4, Pull: types.PullNone},
		{Name: "pcie30x2_clkreqsoc", Bank: 4, Pin: types.PC6, Func: types.FuncGPIO, Pull: types.PullUp, Drive: types.Drive2},
	},
}

var pcie20Pins = types.PinGroup{
	Name: "pcie20",
	Lane: pcieLane,
	Pins: []types.PinDescriptor{
		{Name: "pcie20_clkreqnm2", Bank: 1, Pin: types.PB0, Func: 4, Pull: types.PullNone},
		{Name: "pcie20_perstnm2", Bank: 1, Pin: types.PB2, Func: 4, Pull: types.PullNone},
		{Name: "pcie20_wakenm2", Bank: 1, Pin: types.PB1, Func: 4, Pull: types.PullNone},
		{Name: "pcie20_clkreqsoc", Bank: 1, Pin: types.PA4, Func: types.FuncGPIO, Pull: types.PullUp, Drive: types.Drive2},
	},
}

var i2c0Pins = types.PinGroup{
	Name: "i2c0",
	Lane: types.NoLane,
	Pins: []types.PinDescriptor{
		{Name: "i2c0_scl", Bank: 0, Pin: types.PB1, Func: 1, Pull: types.PullNone, Input: types.InputSchmitt},
		{Name: "i2c0_sda", Bank: 0, Pin: types.PB2, Func: 1, Pull: types.PullNone, Input: types.InputSchmitt},
	},
}

// RHOS is the RK3568 RHOS carrier board.
var RHOS = Board{
	Name:      "rk3568-rhos",
	GPIOBanks: 5,

	// Eight rails: PMUIO2 and VCCIO1..7. PMUIO1 is listed under SkippedDomains.
	Domains: []types.DomainSetting{
		{Domain: types.DomainPMUIO2, Level: types.Vcc1V8},
		{Domain: types.DomainVCCIO1, Level: types.Vcc1V8},
		{Domain: types.DomainVCCIO2, Level: types.Vcc1V8},
		{Domain: types.DomainVCCIO3, Level: types.Vcc3V3},
		{Domain: types.DomainVCCIO4, Level: types.Vcc1V8},
		{Domain: types.DomainVCCIO5, Level: types.Vcc1V8},
		{Domain: types.DomainVCCIO6, Level: types.Vcc1V8},
		{Domain: types.DomainVCCIO7, Level: types.Vcc1V8},
	},
	SkippedDomains: []types.SkippedDomain{
		{Domain: types.DomainPMUIO1, Reason: "identifier undefined on this board revision"},
	},

	PMIC: PMIC{
		Bus:      "i2c0",
		Address:  rk809.AddressDefault,
		ChipName: rk809.ChipNameRK809,
		Pins:     i2c0Pins,
		Settings: rk809.Settings{
			LDOOnVsel: [rk809.NumLDO]byte{
				0x0c, // LDO1 0.9V vdda0v9_image
				0x0c, // LDO2 0.9V vdda_0v9
				0x0c, // LDO3 0.9V vdd0v9_pmu
				0x6c, // LDO4 3.3V vccio_acodec
				0x6c, // LDO5 3.3V sdmmc1_vio
				0x6c, // LDO6 3.3V vcc3v3_pmu
				0x30, // LDO7 1.8V vcca_1v8
				0x30, // LDO8 1.8V vcca1v8_pmu
				0x30, // LDO9 1.8V vcca1v8_image
			},
			PowerEn:         [rk809.NumEnableBanks]byte{0xff, 0xff, 0xff},
			Buck5SW1Config0: 0x09, // BUCK5 1.8V@3A, SWOUT1@1A
			Buck5Config1:    0x31, // BUCK5 sleep 1.8V, SWOUT2@4A
		},
	},

	ClockGates: []RegWrite{
		{Name: "PMU_NOC_AUTO_CON0", Addr: PMUNocAutoCon0, Value: 0xFFFFFFFF},
		{Name: "PMU_NOC_AUTO_CON1", Addr: PMUNocAutoCon1, Value: 0x000F000F},
	},
	CorePLL: MaskedWrite{
		Name:  "CPU_GRF_COREPVTPLL_CON0",
		Addr:  GRFCPUCorePVTPLL0,
		Mask:  pvtpllRingLengthSel.Mask() | pvtpllOscEn | pvtpllStart,
		Value: pvtpllRingLengthSel.Value(pvtpllRingLength) | pvtpllOscEn | pvtpllStart,
	},

	USB3Lanes: []types.LaneMode{
		{Lane: 0, Mode: types.PhyModeUSB3},
		{Lane: 1, Mode: types.PhyModeUSB3},
	},
	SDMMC: sdmmc0Pins,
	EMMC:  emmcPins,

	PCIe: PCIe{
		Lane:   pcieLane,
		Groups: []types.PinGroup{pcie20Pins, pcie30x2Pins},
		ClkReqSoC: []GPIOLine{
			{Name: "pcie20_clkreqsoc", Bank: 1, Pin: types.PA4},
			{Name: "pcie30x2_clkreqsoc", Bank: 4, Pin: types.PC6},
		},
		IomuxSel: MaskedWrite{
			Name:  "GRF_IOFUNC_SEL5",
			Addr:  GRFIOFuncSel5,
			Mask:  pcie20IomuxMask | pcie30x2IomuxMask,
			Value: pcie20IomuxSelM2 | pcie30x2IomuxSelM2,
		},
	},
}
