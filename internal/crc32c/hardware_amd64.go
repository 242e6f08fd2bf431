//go:build amd64

package crc32c

import (
	"hash/crc32"

	"golang.org/x/sys/cpu"
)

// stdTable routes hash/crc32 to its Castagnoli path, which issues the
// SSE4.2 CRC32 instruction when the CPU supports it.
var stdTable = crc32.MakeTable(crc32.Castagnoli)

func init() {
	hwAvailable = cpu.X86.HasSSE42
	initEngine()
}

func archUpdate(crc uint32, p []byte) uint32 {
	return crc32.Update(crc, stdTable, p)
}
