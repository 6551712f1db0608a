// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hexlab/stakecalc/daily"
)

// LatePenalty computes the penalty for staying pooled beyond the
// committed term plus the grace window. The penalty ramps linearly
// from zero to the whole stake return over LatePenaltyScaleDays, and
// keeps growing past it; the caller caps it at the return.
func LatePenalty(stakedDays, unpooledDays uint32, rawStakeReturn *big.Int) *big.Int {
	grace := uint64(stakedDays) + LatePenaltyGraceDays
	if uint64(unpooledDays) <= grace {
		return new(big.Int)
	}

	lateDays := new(big.Int).SetUint64(uint64(unpooledDays) - grace)
	penalty := new(big.Int).Mul(rawStakeReturn, lateDays)
	return penalty.Div(penalty, big.NewInt(LatePenaltyScaleDays))
}

// EarlyPenaltyAndPayout computes the accumulated payout of an early
// unstake together with the penalty covering the minimum-commitment
// window. Three cases:
//   - nothing served: fabricate a representative day reward from the day
//     before pooling and charge it for the whole penalty window;
//   - served past the window: split the served range at the window end,
//     the part before the split is the penalty;
//   - served short of the window: scale the served payout up to what the
//     full window would have cost.
func EarlyPenaltyAndPayout(dailyData []daily.Record, pooledDay, stakedDays, servedDays uint32, stakeShares *big.Int) (payout, penalty *big.Int, err error) {
	penaltyDays := (uint64(stakedDays) + 1) / 2
	if penaltyDays < EarlyPenaltyMinDays {
		penaltyDays = EarlyPenaltyMinDays
	}

	if servedDays == 0 {
		if pooledDay == 0 {
			return nil, nil, errors.WithMessage(ErrInvalidRange, "no day precedes pooled day 0")
		}
		estimate, err := EstimateSingleDay(dailyData, stakeShares, pooledDay-1)
		if err != nil {
			return nil, nil, err
		}
		penalty = estimate.Mul(estimate, new(big.Int).SetUint64(penaltyDays))
		return new(big.Int), penalty, nil
	}

	servedEndDay := uint64(pooledDay) + uint64(servedDays)
	if servedEndDay > uint64(len(dailyData)) {
		return nil, nil, errors.WithMessagef(ErrInvalidRange, "served end day %d exceeds %d days of data", servedEndDay, len(dailyData))
	}

	if penaltyDays < uint64(servedDays) {
		penaltyEndDay := pooledDay + uint32(penaltyDays)
		penalty, err = Accumulate(dailyData, stakeShares, pooledDay, penaltyEndDay)
		if err != nil {
			return nil, nil, err
		}
		delta, err := Accumulate(dailyData, stakeShares, penaltyEndDay, uint32(servedEndDay))
		if err != nil {
			return nil, nil, err
		}
		payout = new(big.Int).Add(penalty, delta)
		return payout, penalty, nil
	}

	payout, err = Accumulate(dailyData, stakeShares, pooledDay, uint32(servedEndDay))
	if err != nil {
		return nil, nil, err
	}
	if penaltyDays == uint64(servedDays) {
		penalty = new(big.Int).Set(payout)
	} else {
		// scale the observed average up to the full penalty window
		penalty = new(big.Int).Mul(payout, new(big.Int).SetUint64(penaltyDays))
		penalty.Div(penalty, new(big.Int).SetUint64(uint64(servedDays)))
	}
	return payout, penalty, nil
}
