// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"math/big"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hexlab/stakecalc/daily"
)

// Query pairs a stake record with the days it actually served.
type Query struct {
	Record     *Record
	ServedDays uint32
}

// CalcStakeReturns evaluates independent queries concurrently over
// shared read-only daily data. Results keep query order; the first
// error aborts the batch.
func CalcStakeReturns(dailyData []daily.Record, queries []Query) ([]*big.Int, error) {
	results := make([]*big.Int, len(queries))

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i, q := range queries {
		group.Go(func() error {
			stakeReturn, err := CalcStakeReturn(dailyData, q.Record, q.ServedDays)
			if err != nil {
				return errors.WithMessagef(err, "query %d", i)
			}
			results[i] = stakeReturn
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
