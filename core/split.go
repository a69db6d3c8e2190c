package core

import (
	"fmt"

	"github.com/synthcast/synthcast/schema"
)

// SplitAt partitions a series into a training prefix [0, splitTime) and a
// validation suffix [splitTime, T). Both halves share the underlying
// arrays; the series is read-only by convention so this is safe.
func SplitAt(s schema.Series, splitTime int) (schema.SplitSeries, error) {
	if splitTime <= 0 || splitTime >= s.Len() {
		return schema.SplitSeries{}, fmt.Errorf("%w: split=%d, length=%d", ErrSplitOutOfRange, splitTime, s.Len())
	}

	return schema.SplitSeries{
		SplitTime: splitTime,
		Train: schema.Series{
			Time:   s.Time[:splitTime],
			Values: s.Values[:splitTime],
		},
		Valid: schema.Series{
			Time:   s.Time[splitTime:],
			Values: s.Values[splitTime:],
		},
	}, nil
}
