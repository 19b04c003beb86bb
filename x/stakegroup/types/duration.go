package types

import (
	"fmt"
	"math"
	"time"

	errorsmod "cosmossdk.io/errors"
)

// Duration is a span measured either in blocks or in seconds of block time.
// Exactly one field is set.
type Duration struct {
	Height *uint64 `json:"height,omitempty"`
	Time   *uint64 `json:"time,omitempty"`
}

// HeightDuration is a duration of n blocks.
func HeightDuration(blocks uint64) Duration { return Duration{Height: &blocks} }

// TimeDuration is a duration of n seconds.
func TimeDuration(seconds uint64) Duration { return Duration{Time: &seconds} }

// MaxDurationSeconds is the longest time duration that still fits in a
// time.Duration.
const MaxDurationSeconds = uint64(math.MaxInt64 / int64(time.Second))

func (d Duration) Validate() error {
	if (d.Height == nil) == (d.Time == nil) {
		return errorsmod.Wrap(ErrInvalidConfig, "duration must set exactly one of height or time")
	}
	if d.Time != nil && *d.Time > MaxDurationSeconds {
		return errorsmod.Wrapf(ErrInvalidConfig, "time duration %ds exceeds %ds", *d.Time, MaxDurationSeconds)
	}
	return nil
}

// After returns the expiration that lies d after the given block. It fails
// when the expiration cannot be represented.
func (d Duration) After(height uint64, blockTime time.Time) (Expiration, error) {
	switch {
	case d.Height != nil:
		if *d.Height > math.MaxUint64-height {
			return Expiration{}, errorsmod.Wrapf(ErrInvalidConfig, "expiration height %d + %d overflows", height, *d.Height)
		}
		return AtHeight(height + *d.Height), nil
	case d.Time != nil:
		if *d.Time > MaxDurationSeconds {
			return Expiration{}, errorsmod.Wrapf(ErrInvalidConfig, "time duration %ds exceeds %ds", *d.Time, MaxDurationSeconds)
		}
		return AtTime(blockTime.Add(time.Duration(*d.Time) * time.Second)), nil
	default:
		return Expiration{}, errorsmod.Wrap(ErrInvalidConfig, "empty duration")
	}
}

func (d Duration) String() string {
	if d.Height != nil {
		return fmt.Sprintf("height: %d", *d.Height)
	}
	if d.Time != nil {
		return fmt.Sprintf("time: %ds", *d.Time)
	}
	return "never"
}

// Expiration is the block height or block time at which something matures.
type Expiration struct {
	AtHeight *uint64    `json:"at_height,omitempty"`
	AtTime   *time.Time `json:"at_time,omitempty"`
}

func AtHeight(height uint64) Expiration { return Expiration{AtHeight: &height} }

func AtTime(t time.Time) Expiration {
	t = t.UTC()
	return Expiration{AtTime: &t}
}

// IsExpired reports whether the block described by height and blockTime is at
// or past the expiration.
func (e Expiration) IsExpired(height uint64, blockTime time.Time) bool {
	switch {
	case e.AtHeight != nil:
		return height >= *e.AtHeight
	case e.AtTime != nil:
		return !blockTime.Before(*e.AtTime)
	default:
		return false
	}
}

// Equal compares two expirations by value.
func (e Expiration) Equal(o Expiration) bool {
	switch {
	case e.AtHeight != nil && o.AtHeight != nil:
		return *e.AtHeight == *o.AtHeight
	case e.AtTime != nil && o.AtTime != nil:
		return e.AtTime.Equal(*o.AtTime)
	default:
		return e.AtHeight == nil && o.AtHeight == nil && e.AtTime == nil && o.AtTime == nil
	}
}

func (e Expiration) String() string {
	switch {
	case e.AtHeight != nil:
		return fmt.Sprintf("expiration height: %d", *e.AtHeight)
	case e.AtTime != nil:
		return fmt.Sprintf("expiration time: %s", e.AtTime.Format(time.RFC3339Nano))
	default:
		return "expiration: never"
	}
}
