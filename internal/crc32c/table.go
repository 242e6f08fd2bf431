package crc32c

import (
	"fmt"

	"github.com/hupe1980/trisum/internal/tmr"
)

// tables holds one lookup table per redundant channel. All three are
// generated independently and cross-checked before use; a mismatch
// means generation itself was corrupted.
var tables = makeTables()

func makeTables() [tmr.Channels][256]uint32 {
	var t [tmr.Channels][256]uint32
	for ch := range t {
		buildTable(&t[ch])
	}

	if err := verify(&t); err != nil {
		panic(err)
	}

	return t
}

// buildTable fills tab with the byte-indexed remainders of the
// reflected Castagnoli polynomial.
func buildTable(tab *[256]uint32) {
	for i := range tab {
		crc := uint32(i)
		for range 8 {
			if crc&1 == 1 {
				crc = crc>>1 ^ Poly
			} else {
				crc >>= 1
			}
		}
		tab[i] = crc
	}
}

// verify cross-checks the redundant tables entry by entry and anchors
// them against a known fixed point: index 128 reduces to the bare
// polynomial after its eight shifts.
func verify(t *[tmr.Channels][256]uint32) error {
	if t[0][128] != Poly {
		return fmt.Errorf("crc32c: table anchor entry 128 is 0x%08x, want 0x%08x", t[0][128], Poly)
	}

	for ch := 1; ch < tmr.Channels; ch++ {
		for i := range t[0] {
			if t[ch][i] != t[0][i] {
				return fmt.Errorf("crc32c: table channel %d entry %d is 0x%08x, channel 0 has 0x%08x",
					ch, i, t[ch][i], t[0][i])
			}
		}
	}

	return nil
}

// VerifyTables re-runs the cross-channel table check on the live
// tables. Self tests call it to detect corruption after init.
func VerifyTables() error {
	return verify(&tables)
}
