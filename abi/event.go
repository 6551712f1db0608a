// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package abi

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// Event describes one event entry of a contract interface.
type Event struct {
	name      string
	anonymous bool
	inputs    ethabi.Arguments
}

// Name returns event name.
func (e *Event) Name() string {
	return e.name
}

// Anonymous returns if the event is anonymous.
func (e *Event) Anonymous() bool {
	return e.anonymous
}

// Fields returns the event's field list.
func (e *Event) Fields() ethabi.Arguments {
	return e.inputs
}

// IndexedFields returns the subset of fields usable as log topics.
func (e *Event) IndexedFields() ethabi.Arguments {
	var indexed ethabi.Arguments
	for _, arg := range e.inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}
