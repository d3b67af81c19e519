// internal/frame/constants.go
package frame

// MCP47X6 wire protocol constants.
// These values are device-defined and MUST NOT be configurable.

// ---- COMMAND SELECTORS ----

// Command codes occupy the top 3 bits of the first command byte.
const (
	CmdWriteVolatileReg    uint8 = 0b000 // volatile DAC register only
	CmdWriteVolatileMemory uint8 = 0b010 // volatile config + value
	CmdWriteAllMemory      uint8 = 0b011 // volatile + EEPROM
	CmdWriteVolatileConfig uint8 = 0b100 // volatile config bits only
)

// ---- COMMAND BYTE FIELD POSITIONS ----

const (
	cmdShift     = 5 // command selector, bits 7:5
	cmdVRefShift = 3 // reference selector, bits 4:3
	cmdGainShift = 2 // gain flag, bit 2
)

// ---- VOLTAGE REFERENCE SELECTORS ----

const (
	VRefVDD        uint8 = 0b00 // VDD is the reference, gain ignored
	VRefUnbuffered uint8 = 0b10 // VREF pin, unbuffered
	VRefBuffered   uint8 = 0b11 // VREF pin, buffered
)

// ---- POWER-DOWN MODES ----

// Modes other than normal tie VOUT to ground through the named resistor.
const (
	PowerdownNormal uint8 = 0b00
	Powerdown1K     uint8 = 0b01
	Powerdown125K   uint8 = 0b10
	Powerdown640K   uint8 = 0b11
)

// ---- GAIN ----

const (
	Gain1X uint8 = 0
	Gain2X uint8 = 1 // only meaningful with a VREF pin reference
)

// ---- ADDRESSING ----

// BaseAddr is the factory base of the 7-bit address range (0x60-0x67).
// The address select bits are fixed per SKU, not pin-strapped.
const BaseAddr uint16 = 0x60
