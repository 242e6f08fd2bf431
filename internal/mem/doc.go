// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides cache-line (64-byte) aligned allocation so that values written by
// concurrent goroutines never share a line.
package mem
