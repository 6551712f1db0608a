// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stake recomputes, off-chain, the reward and penalty amounts
// the staking protocol assigns to a stake position. All functions are
// pure over the supplied daily data and reproduce the protocol's
// floor-division arithmetic exactly.
package stake

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hexlab/stakecalc/daily"
)

// Errors reported on malformed accumulation input.
// Both indicate bad caller input, never a transient condition.
var (
	// ErrZeroShareTotal means a referenced day carries a zero share
	// total, leaving the payout division undefined.
	ErrZeroShareTotal = errors.New("zero day share total")

	// ErrInvalidRange means a day range is inverted or exceeds the
	// supplied daily data.
	ErrInvalidRange = errors.New("invalid day range")
)

// Accumulate sums the stake's proportional payout over days
// [beginDay, endDay). Each day contributes
// payoutTotal * stakeShares / sharesTotal, floor divided.
func Accumulate(dailyData []daily.Record, stakeShares *big.Int, beginDay, endDay uint32) (*big.Int, error) {
	if beginDay > endDay {
		return nil, errors.WithMessagef(ErrInvalidRange, "begin day %d > end day %d", beginDay, endDay)
	}
	if uint64(endDay) > uint64(len(dailyData)) {
		return nil, errors.WithMessagef(ErrInvalidRange, "end day %d exceeds %d days of data", endDay, len(dailyData))
	}

	payout := new(big.Int)
	reward := new(big.Int)
	for day := beginDay; day < endDay; day++ {
		rec := &dailyData[day]
		if rec.SharesTotal.Sign() == 0 {
			return nil, errors.WithMessagef(ErrZeroShareTotal, "day %d", day)
		}
		reward.Mul(rec.PayoutTotal, stakeShares)
		reward.Div(reward, rec.SharesTotal)
		payout.Add(payout, reward)
	}
	return payout, nil
}

// EstimateSingleDay estimates the stake's reward for a day whose stored
// share total does not yet include stakeShares (a live, unsettled day).
// The shares are therefore added to the denominator, unlike Accumulate
// which divides by settled totals that already include them.
func EstimateSingleDay(dailyData []daily.Record, stakeShares *big.Int, day uint32) (*big.Int, error) {
	if uint64(day) >= uint64(len(dailyData)) {
		return nil, errors.WithMessagef(ErrInvalidRange, "day %d exceeds %d days of data", day, len(dailyData))
	}

	rec := &dailyData[day]
	divisor := new(big.Int).Add(rec.SharesTotal, stakeShares)
	if divisor.Sign() == 0 {
		return nil, errors.WithMessagef(ErrZeroShareTotal, "day %d", day)
	}
	reward := new(big.Int).Mul(rec.PayoutTotal, stakeShares)
	return reward.Div(reward, divisor), nil
}
