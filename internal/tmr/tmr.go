package tmr

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/trisum/internal/mem"
)

// Channels is the number of redundant compute channels.
const Channels = 3

// laneStride is the number of uint32 slots per channel lane. Each lane
// spans a full cache line so concurrent channels never share one.
const laneStride = mem.Alignment / 4

// Func computes the result of a single redundant channel. The channel
// index selects channel-local state such as a lookup table; all channels
// must observe the same input.
type Func func(channel int) uint32

// ErrNoMajority indicates that all redundant channels disagreed, so no
// two-of-three majority could be formed.
type ErrNoMajority struct {
	Results [Channels]uint32
}

func (e *ErrNoMajority) Error() string {
	return fmt.Sprintf("tmr: no majority among channel results [0x%08x 0x%08x 0x%08x]",
		e.Results[0], e.Results[1], e.Results[2])
}

// Do runs fn once per channel, sequentially, and votes on the results.
// The raw per-channel results are returned alongside the winner so
// callers can report them on a voting fault.
func Do(fn Func) (uint32, [Channels]uint32, error) {
	var results [Channels]uint32
	for ch := range Channels {
		results[ch] = fn(ch)
	}

	winner, err := Vote(results)

	return winner, results, err
}

// DoParallel runs fn once per channel on separate goroutines and votes
// on the results. Each channel writes into its own cache line.
func DoParallel(fn Func) (uint32, [Channels]uint32, error) {
	lanes := mem.AllocAlignedUint32(Channels * laneStride)

	var g errgroup.Group

	for ch := range Channels {
		g.Go(func() error {
			lanes[ch*laneStride] = fn(ch)
			return nil
		})
	}

	// Channel funcs never return an error; Wait only synchronizes.
	_ = g.Wait()

	var results [Channels]uint32
	for ch := range Channels {
		results[ch] = lanes[ch*laneStride]
	}

	winner, err := Vote(results)

	return winner, results, err
}

// Vote picks the two-of-three majority value. If all channels disagree
// it returns ErrNoMajority carrying the raw channel results.
func Vote(results [Channels]uint32) (uint32, error) {
	switch {
	case results[0] == results[1] || results[0] == results[2]:
		return results[0], nil
	case results[1] == results[2]:
		return results[1], nil
	default:
		return 0, &ErrNoMajority{Results: results}
	}
}
