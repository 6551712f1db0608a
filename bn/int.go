// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bn provides a non-negative big integer amount type.
package bn

import (
	"math/big"

	"github.com/pkg/errors"
)

var big0 = new(big.Int)

// Int wraps big.Int as a non-negative amount.
// It can be used as a value without state sharing; the zero value
// presents amount zero.
type Int struct {
	value *big.Int
}

// FromBig create a bn.Int object from big.Int.
// The input must be non-negative.
func FromBig(bi *big.Int) Int {
	i := Int{}
	i.SetBig(bi)
	return i
}

// ToBig convert to big.Int.
func (i Int) ToBig() *big.Int {
	if i.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.value)
}

// SetBig set big.Int.
func (i *Int) SetBig(bi *big.Int) {
	if bi.Sign() == 0 {
		i.value = nil
		return
	}
	i.value = new(big.Int).Set(bi)
}

// IsZero returns true if bn.Int presents a zero amount.
func (i Int) IsZero() bool {
	return i.value == nil || i.value.Sign() == 0
}

// Cmp compares with another bn.Int.
// Returns:
//
//	-1 if i <  other
//	 0 if i == other
//	+1 if i >  other
func (i Int) Cmp(other Int) int {
	if i.value == nil {
		if other.value == nil {
			return 0
		}
		return -other.value.Sign()
	}

	if other.value == nil {
		return i.value.Sign()
	}
	return i.value.Cmp(other.value)
}

// CmpBig compares with big.Int value.
func (i Int) CmpBig(bi *big.Int) int {
	if i.value == nil {
		return -bi.Sign()
	}
	return i.value.Cmp(bi)
}

// String implements Stringer, in decimal.
func (i Int) String() string {
	if i.value == nil {
		return big0.String()
	}
	return i.value.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (i Int) MarshalText() (text []byte, err error) {
	if i.value == nil {
		return big0.MarshalText()
	}
	return i.value.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Negative amounts are rejected.
func (i *Int) UnmarshalText(text []byte) error {
	bi := new(big.Int)
	if err := bi.UnmarshalText(text); err != nil {
		return err
	}
	return i.setChecked(bi)
}

// MarshalJSON implements the json.Marshaler interface.
func (i Int) MarshalJSON() ([]byte, error) {
	if i.value == nil {
		return big0.MarshalJSON()
	}
	return i.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Negative amounts are rejected.
func (i *Int) UnmarshalJSON(data []byte) error {
	bi := new(big.Int)
	if err := bi.UnmarshalJSON(data); err != nil {
		return err
	}
	return i.setChecked(bi)
}

func (i *Int) setChecked(bi *big.Int) error {
	if bi.Sign() < 0 {
		return errors.Errorf("negative amount %s", bi)
	}
	if bi.Sign() == 0 {
		i.value = nil
	} else {
		i.value = bi
	}
	return nil
}
