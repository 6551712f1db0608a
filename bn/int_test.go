// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bn_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexlab/stakecalc/bn"
)

func TestInt(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bn.FromBig(big.NewInt(1)).ToBig(), big.NewInt(1))

	i := bn.Int{}
	i.SetBig(big.NewInt(1))
	assert.Equal(i, bn.FromBig(big.NewInt(1)))

	assert.True(bn.Int{}.IsZero())
	assert.True(bn.FromBig(new(big.Int)).IsZero())

	{
		tests := []struct {
			v1     bn.Int
			v2     bn.Int
			expect int
		}{
			{bn.Int{}, bn.Int{}, 0},
			{bn.Int{}, bn.FromBig(big.NewInt(1)), -1},
			{bn.FromBig(big.NewInt(1)), bn.Int{}, 1},
			{bn.FromBig(big.NewInt(1)), bn.FromBig(big.NewInt(2)), -1},
			{bn.FromBig(big.NewInt(2)), bn.FromBig(big.NewInt(2)), 0},
		}
		for _, test := range tests {
			assert.Equal(test.expect, test.v1.Cmp(test.v2))
		}
	}
	{
		tests := []struct {
			v1     bn.Int
			v2     *big.Int
			expect int
		}{
			{bn.Int{}, big.NewInt(0), 0},
			{bn.Int{}, big.NewInt(1), -1},
			{bn.FromBig(big.NewInt(1)), big.NewInt(0), 1},
		}
		for _, test := range tests {
			assert.Equal(test.expect, test.v1.CmpBig(test.v2))
		}
	}
}

func TestIntEncoding(t *testing.T) {
	tests := []struct {
		v    bn.Int
		json string
	}{
		{bn.Int{}, "0"},
		{bn.FromBig(big.NewInt(12345)), "12345"},
		{bn.FromBig(new(big.Int).Lsh(big.NewInt(1), 200)), new(big.Int).Lsh(big.NewInt(1), 200).String()},
	}

	for _, test := range tests {
		data, err := json.Marshal(test.v)
		assert.NoError(t, err)
		assert.Equal(t, test.json, string(data))

		var decoded bn.Int
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, 0, decoded.Cmp(test.v))
	}
}

func TestIntRejectNegative(t *testing.T) {
	var i bn.Int
	assert.Error(t, i.UnmarshalJSON([]byte("-1")))
	assert.Error(t, i.UnmarshalText([]byte("-12345")))
}
