// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake_test

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlab/stakecalc/daily"
	"github.com/hexlab/stakecalc/stake"
)

// constantDays builds n days all carrying the same totals.
func constantDays(n int, shares, payout int64) []daily.Record {
	days := make([]daily.Record, n)
	for i := range days {
		days[i] = daily.Record{
			SharesTotal: big.NewInt(shares),
			PayoutTotal: big.NewInt(payout),
		}
	}
	return days
}

// randomDays builds n days with random non-zero share totals.
func randomDays(rng *rand.Rand, n int) []daily.Record {
	days := make([]daily.Record, n)
	for i := range days {
		days[i] = daily.Record{
			SharesTotal: new(big.Int).SetUint64(rng.Uint64() | 1),
			PayoutTotal: new(big.Int).SetUint64(rng.Uint64()),
		}
	}
	return days
}

func TestAccumulate(t *testing.T) {
	days := constantDays(10, 1000, 100)
	shares := big.NewInt(500)

	payout, err := stake.Accumulate(days, shares, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(50), payout)

	payout, err = stake.Accumulate(days, shares, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(500), payout)

	// empty range accumulates nothing
	payout, err = stake.Accumulate(days, shares, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, payout.Sign())

	// floor division, never fractional
	payout, err = stake.Accumulate(constantDays(1, 3, 100), big.NewInt(1), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(33), payout)
}

func TestAccumulateAdditivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0)) //#nosec G404
	days := randomDays(rng, 64)

	for range 20 {
		shares := new(big.Int).SetUint64(rng.Uint64())
		begin := uint32(rng.IntN(32))
		end := begin + 2 + uint32(rng.IntN(30))
		mid := begin + 1 + uint32(rng.IntN(int(end-begin-1)))

		whole, err := stake.Accumulate(days, shares, begin, end)
		require.NoError(t, err)
		left, err := stake.Accumulate(days, shares, begin, mid)
		require.NoError(t, err)
		right, err := stake.Accumulate(days, shares, mid, end)
		require.NoError(t, err)

		assert.Equal(t, whole, left.Add(left, right), "begin %d mid %d end %d", begin, mid, end)
	}
}

func TestAccumulateErrors(t *testing.T) {
	days := constantDays(5, 1000, 100)
	shares := big.NewInt(1)

	_, err := stake.Accumulate(days, shares, 4, 3)
	assert.ErrorIs(t, err, stake.ErrInvalidRange)

	_, err = stake.Accumulate(days, shares, 0, 6)
	assert.ErrorIs(t, err, stake.ErrInvalidRange)

	days[2].SharesTotal = new(big.Int)
	_, err = stake.Accumulate(days, shares, 0, 5)
	assert.ErrorIs(t, err, stake.ErrZeroShareTotal)

	// zero-share day outside the range stays harmless
	_, err = stake.Accumulate(days, shares, 0, 2)
	assert.NoError(t, err)
}

func TestAccumulateNoPrecisionLoss(t *testing.T) {
	// both halves near 2^128 - 1 must survive without truncation
	max128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	days := []daily.Record{{SharesTotal: new(big.Int).Set(max128), PayoutTotal: new(big.Int).Set(max128)}}

	payout, err := stake.Accumulate(days, max128, 0, 1)
	require.NoError(t, err)
	// payout * shares / sharesTotal with shares == sharesTotal
	assert.Equal(t, max128, payout)
}

func TestEstimateSingleDay(t *testing.T) {
	days := constantDays(3, 1000, 100)

	// the live day's pool does not yet include the evaluated shares
	estimate, err := stake.EstimateSingleDay(days, big.NewInt(500), 0)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(33), estimate) // 100*500/(1000+500)

	_, err = stake.EstimateSingleDay(days, big.NewInt(500), 3)
	assert.ErrorIs(t, err, stake.ErrInvalidRange)

	days[1].SharesTotal = new(big.Int)
	_, err = stake.EstimateSingleDay(days, new(big.Int), 1)
	assert.ErrorIs(t, err, stake.ErrZeroShareTotal)
}
