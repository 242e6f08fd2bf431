package trisum

import (
	"errors"
	"fmt"

	"github.com/hupe1980/trisum/internal/crc32c"
	"github.com/hupe1980/trisum/internal/tmr"
)

// ErrInputTooLarge indicates an input exceeding MaxInputSize. Longer
// data must be chained through the seed parameter.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInputTooLarge struct {
	Size  int
	Max   int
	cause error
}

func (e *ErrInputTooLarge) Error() string {
	return fmt.Sprintf("input size %d exceeds maximum %d", e.Size, e.Max)
}

func (e *ErrInputTooLarge) Unwrap() error { return e.cause }

// ErrNoMajority indicates that all redundant channels disagreed, so no
// result can be trusted. It carries the raw per-channel results for
// fault analysis.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNoMajority struct {
	Engine  Engine
	Results [Channels]uint32
	cause   error
}

func (e *ErrNoMajority) Error() string {
	return fmt.Sprintf("no majority among %s channel results [0x%08x 0x%08x 0x%08x]",
		e.Engine, e.Results[0], e.Results[1], e.Results[2])
}

func (e *ErrNoMajority) Unwrap() error { return e.cause }

// ErrEngineUnavailable indicates a requested engine that cannot run on
// this CPU.
type ErrEngineUnavailable struct {
	Engine Engine
}

func (e *ErrEngineUnavailable) Error() string {
	return fmt.Sprintf("engine %q not available on this CPU", e.Engine)
}

func translateError(engine Engine, err error) error {
	if err == nil {
		return nil
	}

	var tooLarge *crc32c.ErrInputTooLarge
	if errors.As(err, &tooLarge) {
		return &ErrInputTooLarge{Size: tooLarge.Size, Max: tooLarge.Max, cause: err}
	}

	var noMajority *tmr.ErrNoMajority
	if errors.As(err, &noMajority) {
		return &ErrNoMajority{Engine: engine, Results: noMajority.Results, cause: err}
	}

	return err
}
