package trisum

import "time"

// Worst-case per-channel cost estimates, in CPU cycles per input byte.
// The figures are static configuration values for capacity-planning and
// real-time-budget tooling; they are deliberately conservative
// (cache-cold tables, no speculation wins) and have no effect on the
// checksum result.

// SoftwareCyclesPerByte is the worst-case cost of one software channel.
const SoftwareCyclesPerByte = 27.0

// HardwareCyclesPerByte is the worst-case cost of one hardware channel.
const HardwareCyclesPerByte = 3.0

// CyclesPerByte returns the worst-case per-channel cycles-per-byte
// figure for e.
func CyclesPerByte(e Engine) float64 {
	if e == EngineHardware {
		return HardwareCyclesPerByte
	}
	return SoftwareCyclesPerByte
}

// WorstCaseDuration estimates an upper bound on the time a checksum of
// size bytes takes on e at the given CPU frequency, across all
// redundant channels. Size watchdog timeouts with a margin on top.
func WorstCaseDuration(e Engine, size int, cpuHz float64) time.Duration {
	if size <= 0 || cpuHz <= 0 {
		return 0
	}

	cycles := CyclesPerByte(e) * float64(size) * Channels

	return time.Duration(cycles / cpuHz * float64(time.Second))
}
