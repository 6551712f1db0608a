// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package abi reduces a contract interface descriptor to the event and
// function subset a caller cares about.
package abi

import (
	"encoding/json"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// ABI holds information about events and functions of a contract
// interface.
type ABI struct {
	nameToEvent    map[string]*Event
	nameToFunction map[string]*Function
}

// FunctionIO groups a function's input and output field lists.
type FunctionIO struct {
	Inputs  ethabi.Arguments
	Outputs ethabi.Arguments
}

// New create an ABI instance from a JSON interface descriptor list.
// Entries other than events and functions (constructor, fallback, ...)
// are ignored.
func New(data []byte) (*ABI, error) {
	var fields []struct {
		Type      string
		Name      string
		Anonymous bool
		Inputs    []ethabi.Argument
		Outputs   []ethabi.Argument
	}

	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.WithMessage(err, "parse interface descriptor")
	}

	abi := &ABI{
		nameToEvent:    make(map[string]*Event),
		nameToFunction: make(map[string]*Function),
	}

	for _, field := range fields {
		switch field.Type {
		// empty defaults to function according to the abi spec
		case "function", "":
			abi.nameToFunction[field.Name] = &Function{
				name:    field.Name,
				inputs:  field.Inputs,
				outputs: field.Outputs,
			}
		case "event":
			abi.nameToEvent[field.Name] = &Event{
				name:      field.Name,
				anonymous: field.Anonymous,
				inputs:    field.Inputs,
			}
		}
	}
	return abi, nil
}

// EventByName find event for the given name.
func (a *ABI) EventByName(name string) (*Event, bool) {
	ev, found := a.nameToEvent[name]
	return ev, found
}

// FunctionByName find function for the given name.
func (a *ABI) FunctionByName(name string) (*Function, bool) {
	fn, found := a.nameToFunction[name]
	return fn, found
}

// Filter restricts the interface to the named subset, returning the
// field lists of the selected events and functions keyed by name.
// A nil allow-list selects every entry of its category; names absent
// from the interface are skipped.
func (a *ABI) Filter(events, functions []string) (map[string]ethabi.Arguments, map[string]FunctionIO) {
	filteredEvents := make(map[string]ethabi.Arguments)
	if events == nil {
		for name, ev := range a.nameToEvent {
			filteredEvents[name] = ev.inputs
		}
	} else {
		for _, name := range events {
			if ev, found := a.nameToEvent[name]; found {
				filteredEvents[name] = ev.inputs
			}
		}
	}

	filteredFunctions := make(map[string]FunctionIO)
	if functions == nil {
		for name, fn := range a.nameToFunction {
			filteredFunctions[name] = FunctionIO{fn.inputs, fn.outputs}
		}
	} else {
		for _, name := range functions {
			if fn, found := a.nameToFunction[name]; found {
				filteredFunctions[name] = FunctionIO{fn.inputs, fn.outputs}
			}
		}
	}
	return filteredEvents, filteredFunctions
}
