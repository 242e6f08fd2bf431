// Package crc32c computes CRC-32 checksums with the Castagnoli
// polynomial under triple modular redundancy.
//
// # Engines
//
// Two engine kinds cover every platform:
//
//   - KindSoftware: byte-at-a-time table lookups against three
//     independently generated channel tables.
//   - KindHardware: the CPU CRC32 instruction (SSE4.2 on x86-64, the
//     CRC extension on ARM64), executed once per redundant channel.
//
// The best available engine is selected at package init. Setting
// TRISUM_ENGINE=software or TRISUM_ENGINE=hardware overrides the
// selection; an override naming an unavailable engine falls back to
// auto-detection.
//
// # Redundancy
//
// Every checksum runs on three channels and the majority result wins.
// The software engine gives each channel its own lookup table, so a
// corrupted table entry is outvoted by the remaining two channels. The
// hardware engine repeats the same instruction sequence per channel,
// which masks transient faults but not a defective execution unit.
//
// # Limits
//
// Inputs are capped at MaxInput (1 MiB) per call. Longer data is
// checksummed by chaining: feed the result of one call as the seed of
// the next.
package crc32c
