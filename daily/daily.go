// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package daily decodes packed per-day aggregate totals of the staking
// protocol.
package daily

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Record holds the two aggregate totals of one protocol day.
// Immutable once decoded.
type Record struct {
	SharesTotal *big.Int // total stake shares pooled on the day
	PayoutTotal *big.Int // total payout distributed on the day
}

// mask of the low 128 bits of a day word.
var mask128 = func() uint256.Int {
	var m uint256.Int
	m.SetAllOne()
	m.Rsh(&m, 128)
	return m
}()

// DecodeDay unpacks one 256-bit day word. The high 128 bits hold the
// day's share total, the low 128 bits its payout total.
func DecodeDay(raw *uint256.Int) Record {
	var shares, payout uint256.Int
	shares.Rsh(raw, 128)
	payout.And(raw, &mask128)
	return Record{
		SharesTotal: shares.ToBig(),
		PayoutTotal: payout.ToBig(),
	}
}

// DecodeRange unpacks a day word sequence, preserving order.
// Any 256-bit value is a valid word.
func DecodeRange(raws []*uint256.Int) []Record {
	records := make([]Record, len(raws))
	for i, raw := range raws {
		records[i] = DecodeDay(raw)
	}
	return records
}
