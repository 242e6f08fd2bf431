package trisum

import (
	"github.com/hupe1980/trisum/internal/crc32c"
	"github.com/hupe1980/trisum/internal/tmr"
)

// Channels is the number of redundant channels every checksum runs on.
const Channels = tmr.Channels

// Engine identifies a checksum engine implementation.
type Engine uint8

const (
	// EngineSoftware is the table-driven engine. It works on every
	// platform and gives each redundant channel its own lookup table.
	EngineSoftware Engine = iota
	// EngineHardware uses the CPU CRC32 instruction (SSE4.2 on x86-64,
	// the CRC extension on ARM64) once per redundant channel.
	EngineHardware
)

// String returns the string representation of an Engine.
func (e Engine) String() string {
	switch e {
	case EngineSoftware:
		return "software"
	case EngineHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseEngine parses a string into an Engine value.
func ParseEngine(s string) (Engine, bool) {
	kind, ok := crc32c.ParseKind(s)
	return kindToEngine(kind), ok
}

func (e Engine) kind() crc32c.Kind {
	switch e {
	case EngineHardware:
		return crc32c.KindHardware
	default:
		return crc32c.KindSoftware
	}
}

func kindToEngine(k crc32c.Kind) Engine {
	switch k {
	case crc32c.KindHardware:
		return EngineHardware
	default:
		return EngineSoftware
	}
}

// ActiveEngine returns the engine selected at startup. Setting
// TRISUM_ENGINE=software or TRISUM_ENGINE=hardware overrides the
// automatic selection; an override naming an unavailable engine falls
// back to auto-detection.
func ActiveEngine() Engine {
	return kindToEngine(crc32c.Active())
}

// EngineAvailable reports whether e can run on this CPU.
func EngineAvailable(e Engine) bool {
	return crc32c.Available(e.kind())
}

// EngineOverridden reports whether TRISUM_ENGINE forced the selection.
func EngineOverridden() bool {
	return crc32c.Overridden()
}

// HardwareAvailable reports whether the CPU CRC32 instruction is usable.
func HardwareAvailable() bool {
	return crc32c.HardwareAvailable()
}
