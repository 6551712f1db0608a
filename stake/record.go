// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import "github.com/hexlab/stakecalc/bn"

// Record describes one stake position, as supplied by the caller from
// external position storage.
type Record struct {
	PooledDay    uint32 `json:"pooledDay"`    // day the stake entered the reward pool
	StakedDays   uint32 `json:"stakedDays"`   // committed duration
	UnpooledDay  uint32 `json:"unpooledDay"`  // day the stake exited the pool
	StakeShares  bn.Int `json:"stakeShares"`  // proportional claim weight
	StakedHearts bn.Int `json:"stakedHearts"` // principal, in hearts
}
