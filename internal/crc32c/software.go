package crc32c

// swChecksum computes the checksum on one redundant channel using that
// channel's own lookup table, one byte at a time.
func swChecksum(channel int, seed uint32, data []byte) uint32 {
	tab := &tables[channel]

	crc := ^seed
	for _, b := range data {
		crc = crc>>8 ^ tab[byte(crc)^b]
	}

	return ^crc
}
