//go:build !amd64 && !arm64

package crc32c

func init() {
	initEngine()
}

// archUpdate must never be reached here: hwAvailable stays false on
// architectures without a CRC32 instruction, so the hardware engine is
// never selected.
func archUpdate(uint32, []byte) uint32 {
	panic("crc32c: hardware engine not available on this architecture")
}
