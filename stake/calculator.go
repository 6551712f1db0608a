// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hexlab/stakecalc/daily"
)

// CalcStakeReturn computes the final amount returned for a stake that
// exited the pool after servedDays. The result is never negative.
//
// On an early exit the penalty is already embedded in the interval-split
// payout and is not subtracted again. On a full-term or later exit a
// separate late penalty applies, capped at the whole return.
func CalcStakeReturn(dailyData []daily.Record, rec *Record, servedDays uint32) (*big.Int, error) {
	stakeShares := rec.StakeShares.ToBig()
	stakedHearts := rec.StakedHearts.ToBig()

	if servedDays < rec.StakedDays {
		payout, _, err := EarlyPenaltyAndPayout(dailyData, rec.PooledDay, rec.StakedDays, servedDays, stakeShares)
		if err != nil {
			return nil, err
		}
		return payout.Add(payout, stakedHearts), nil
	}

	if rec.UnpooledDay < rec.PooledDay {
		return nil, errors.WithMessagef(ErrInvalidRange, "unpooled day %d precedes pooled day %d", rec.UnpooledDay, rec.PooledDay)
	}

	payout, err := Accumulate(dailyData, stakeShares, rec.PooledDay, rec.PooledDay+servedDays)
	if err != nil {
		return nil, err
	}
	stakeReturn := payout.Add(payout, stakedHearts)

	penalty := LatePenalty(rec.StakedDays, rec.UnpooledDay-rec.PooledDay, stakeReturn)
	if penalty.Sign() > 0 {
		if penalty.Cmp(stakeReturn) > 0 {
			// would underflow; the protocol clamps to zero
			return new(big.Int), nil
		}
		stakeReturn.Sub(stakeReturn, penalty)
	}
	return stakeReturn, nil
}
