// internal/frame/command.go
package frame

// Command encoder.
// Pure byte building: no IO. Layout is device-locked.

// WriteRequest is one logical write to the DAC.
type WriteRequest struct {
	VRef    uint8  // 2-bit reference selector
	Gain    uint8  // any nonzero value selects 2x gain
	Value   uint16 // output count, truncated to the model width
	Persist bool   // also program the EEPROM image
}

// EncodeWrite builds the command frame for req: 2 bytes for the MCP4706,
// 3 bytes otherwise.
//
// Byte 0 carries command selector (bits 7:5), reference selector (4:3) and
// the gain flag (2). The value is left-aligned into the trailing bytes:
//
//	mcp4706: value in byte 1
//	mcp4716: bits 9:2 in byte 1, bits 1:0 in byte 2 bits 7:6
//	mcp4726: bits 11:4 in byte 1, bits 3:0 in byte 2 bits 7:4
//
// Values wider than the model resolution are truncated, never rejected.
// Range checking belongs to the caller.
func EncodeWrite(m Model, req WriteRequest) []byte {
	cmd := CmdWriteVolatileMemory
	if req.Persist {
		cmd = CmdWriteAllMemory
	}

	b0 := cmd<<cmdShift | (req.VRef&vrefMask)<<cmdVRefShift
	if req.Gain != 0 {
		b0 |= 1 << cmdGainShift
	}

	switch m {
	case MCP4706:
		return []byte{b0, byte(req.Value)}
	case MCP4716:
		return []byte{b0, byte(req.Value >> 2), byte(req.Value << 6)}
	default: // MCP4726
		return []byte{b0, byte(req.Value >> 4), byte(req.Value << 4)}
	}
}

// EncodeVolatileConfig builds the single-byte command that rewrites the
// volatile config bits without touching the output value. Field order
// matches the write command: reference (4:3), gain flag (2), power-down
// mode (1:0).
func EncodeVolatileConfig(vref, gain, powerdown uint8) []byte {
	b := CmdWriteVolatileConfig<<cmdShift | (vref&vrefMask)<<cmdVRefShift
	if gain != 0 {
		b |= 1 << cmdGainShift
	}
	b |= powerdown & pdMask
	return []byte{b}
}
