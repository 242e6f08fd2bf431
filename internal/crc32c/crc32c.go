package crc32c

import (
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/trisum/internal/tmr"
)

// Poly is the reflected form of the Castagnoli polynomial (0x1EDC6F41).
const Poly uint32 = 0x82F63B78

// MaxInput is the largest input accepted by a single Checksum call.
// Longer data must be chained through the seed parameter.
const MaxInput = 1 << 20

// Kind identifies a checksum engine implementation.
type Kind uint8

const (
	// KindSoftware is the table-driven engine. It works on every
	// platform and gives each redundant channel its own table.
	KindSoftware Kind = iota
	// KindHardware is the CPU CRC32 instruction engine (SSE4.2 on
	// x86-64, the CRC extension on ARM64).
	KindHardware
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindSoftware:
		return "software"
	case KindHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind value.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "software":
		return KindSoftware, true
	case "hardware":
		return KindHardware, true
	default:
		return KindSoftware, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeKind is the selected engine.
	activeKind Kind

	// hasOverride is true if TRISUM_ENGINE was set.
	hasOverride bool

	// hwAvailable is true if the CPU CRC32 instruction is usable
	// (set by platform-specific init).
	hwAvailable bool
)

// initEngine is called from platform-specific init functions after CPU
// features are detected.
func initEngine() {
	// Check for environment override
	if override := os.Getenv("TRISUM_ENGINE"); override != "" {
		if kind, ok := ParseKind(override); ok {
			hasOverride = true
			// Validate the override is available
			if Available(kind) {
				activeKind = kind
				return
			}
			// Unavailable override - fall through to auto-detection
		}
	}

	// Auto-select best engine
	activeKind = selectBest()
}

// Available checks if an engine kind is usable on this CPU.
func Available(k Kind) bool {
	switch k {
	case KindSoftware:
		return true
	case KindHardware:
		return hwAvailable
	default:
		return false
	}
}

// selectBest chooses the optimal engine for the current platform.
func selectBest() Kind {
	if hwAvailable {
		return KindHardware
	}
	return KindSoftware
}

// Active returns the currently active engine kind.
func Active() Kind {
	return activeKind
}

// Overridden returns true if TRISUM_ENGINE was set.
func Overridden() bool {
	return hasOverride
}

// HardwareAvailable returns true if the CPU CRC32 instruction is usable.
func HardwareAvailable() bool {
	return hwAvailable
}

// ErrInputTooLarge indicates an input exceeding the per-call size cap.
type ErrInputTooLarge struct {
	Size int
	Max  int
}

func (e *ErrInputTooLarge) Error() string {
	return fmt.Sprintf("crc32c: input size %d exceeds maximum %d", e.Size, e.Max)
}

// Checksum computes the CRC32C of data under triple modular redundancy
// using the given engine kind. The seed chains calls together: pass 0
// for the first block and the previous result for each following block.
//
// The raw per-channel results are returned alongside the majority value
// so callers can report them on a voting fault. The returned error is
// either *ErrInputTooLarge or *tmr.ErrNoMajority.
func Checksum(kind Kind, seed uint32, data []byte, parallel bool) (uint32, [tmr.Channels]uint32, error) {
	if len(data) > MaxInput {
		return 0, [tmr.Channels]uint32{}, &ErrInputTooLarge{Size: len(data), Max: MaxInput}
	}

	var fn tmr.Func

	switch kind {
	case KindHardware:
		fn = func(int) uint32 { return archUpdate(seed, data) }
	default:
		fn = func(ch int) uint32 { return swChecksum(ch, seed, data) }
	}

	if parallel {
		return tmr.DoParallel(fn)
	}

	return tmr.Do(fn)
}
