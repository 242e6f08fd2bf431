// Package tmr implements triple modular redundancy: the same computation
// runs on three independent channels and a majority vote over the three
// results masks a fault in any single channel.
package tmr
