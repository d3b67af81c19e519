// internal/frame/status.go
package frame

// Status codec.
// Pure byte mapping: no IO, no semantic validation. Reserved or illegal bit
// patterns pass through untouched.

// ---- CONFIG BYTE BIT POSITIONS ----
// LSB-first as emitted by the device.

const (
	readyBit = 0
	porBit   = 1
	// bit 2 unused
	vrefShift = 3
	vrefMask  = 0b11
	pdShift   = 5
	pdMask    = 0b11
	gainBit   = 7
)

// ConfigStatus is the unpacked configuration/status byte. The device carries
// two copies: the volatile registers and the EEPROM image.
type ConfigStatus struct {
	Ready     uint8 // 1 = idle, 0 = EEPROM write in progress
	POR       uint8 // 1 = stable, 0 = power-on reset in progress
	VRef      uint8 // 2-bit reference selector
	Powerdown uint8 // 2-bit power-down mode
	Gain      uint8 // 0 = 1x, 1 = 2x
}

// DecodeConfig unpacks a raw config byte.
func DecodeConfig(b byte) ConfigStatus {
	return ConfigStatus{
		Ready:     b >> readyBit & 1,
		POR:       b >> porBit & 1,
		VRef:      b >> vrefShift & vrefMask,
		Powerdown: b >> pdShift & pdMask,
		Gain:      b >> gainBit & 1,
	}
}

// Encode packs the fields back into byte form. Inverse of DecodeConfig for
// every legal field value; fields are masked to their bit widths.
func (c ConfigStatus) Encode() byte {
	return (c.Ready&1)<<readyBit |
		(c.POR&1)<<porBit |
		(c.VRef&vrefMask)<<vrefShift |
		(c.Powerdown&pdMask)<<pdShift |
		(c.Gain&1)<<gainBit
}

// DeviceStatus is the model-independent status record. The two value fields
// use 16 bits for every model; the 8-bit MCP4706 values are zero-extended,
// never scaled.
type DeviceStatus struct {
	Volatile         ConfigStatus
	VolatileValue    uint16
	NonVolatile      ConfigStatus
	NonVolatileValue uint16
}

// DecodeStatus decodes a raw status frame for the given model.
//
// Wide frames (6 bytes): [config][value-hi][value-lo] twice, volatile copy
// first. Narrow frames (4 bytes, MCP4706): [config][value] twice.
//
// raw MUST be exactly m.StatusLen() bytes. The transport is trusted to
// deliver the requested length; there is no error path here.
func DecodeStatus(m Model, raw []byte) DeviceStatus {
	if m.StatusLen() == 4 {
		return DeviceStatus{
			Volatile:         DecodeConfig(raw[0]),
			VolatileValue:    uint16(raw[1]),
			NonVolatile:      DecodeConfig(raw[2]),
			NonVolatileValue: uint16(raw[3]),
		}
	}
	return DeviceStatus{
		Volatile:         DecodeConfig(raw[0]),
		VolatileValue:    uint16(raw[1])<<8 | uint16(raw[2]),
		NonVolatile:      DecodeConfig(raw[3]),
		NonVolatileValue: uint16(raw[4])<<8 | uint16(raw[5]),
	}
}
