package bigmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceAccumulator_AverageOfConstantPrice(t *testing.T) {
	var acc PriceAccumulator
	acc.Accumulate(100, 10)
	acc.Accumulate(100, 10)
	assert.EqualValues(t, 100, acc.Average(20))
}

func TestPriceAccumulator_AverageZeroSlots(t *testing.T) {
	var acc PriceAccumulator
	assert.EqualValues(t, 0, acc.Average(0))
}

func TestPriceAccumulator_WeightedAverage(t *testing.T) {
	var acc PriceAccumulator
	acc.Accumulate(100, 1) // held briefly at 100
	acc.Accumulate(200, 9) // held much longer at 200
	avg := acc.Average(10)
	assert.EqualValues(t, 190, avg)
}
