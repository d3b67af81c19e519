// internal/frame/model.go
package frame

import "fmt"

// Model identifies one member of the MCP47X6 DAC family. The family shares
// one command set; models differ in value width and status frame length.
type Model uint8

const (
	MCP4706 Model = iota // 8-bit
	MCP4716              // 10-bit
	MCP4726              // 12-bit
)

// geometry is the per-model wire geometry.
type geometry struct {
	name      string
	bits      uint // DAC resolution
	statusLen int  // raw status frame length
}

var geometries = [...]geometry{
	MCP4706: {name: "mcp4706", bits: 8, statusLen: 4},
	MCP4716: {name: "mcp4716", bits: 10, statusLen: 6},
	MCP4726: {name: "mcp4726", bits: 12, statusLen: 6},
}

// Bits returns the DAC resolution.
func (m Model) Bits() uint {
	return geometries[m].bits
}

// StatusLen returns the raw status frame length in bytes. This is also the
// exact read size the device expects: reads have no register address, the
// device just emits its full status.
func (m Model) StatusLen() int {
	return geometries[m].statusLen
}

// MaxCount returns the largest output value the model can represent.
func (m Model) MaxCount() uint16 {
	return uint16(1)<<m.Bits() - 1
}

func (m Model) String() string {
	return geometries[m].name
}

// ParseModel maps a config-file model name to its Model.
func ParseModel(s string) (Model, error) {
	for i, g := range geometries {
		if g.name == s {
			return Model(i), nil
		}
	}
	return 0, fmt.Errorf("unknown model %q (want mcp4706, mcp4716 or mcp4726)", s)
}
