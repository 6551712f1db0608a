// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package abi

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// Function describes one function entry of a contract interface.
type Function struct {
	name    string
	inputs  ethabi.Arguments
	outputs ethabi.Arguments
}

// Name returns function name.
func (f *Function) Name() string {
	return f.name
}

// Inputs returns the function's input field list.
func (f *Function) Inputs() ethabi.Arguments {
	return f.inputs
}

// Outputs returns the function's output field list.
func (f *Function) Outputs() ethabi.Arguments {
	return f.outputs
}
