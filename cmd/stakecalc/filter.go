// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/hexlab/stakecalc/abi"
)

type fieldJSON struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed,omitempty"`
}

type functionJSON struct {
	Inputs  []fieldJSON `json:"inputs"`
	Outputs []fieldJSON `json:"outputs"`
}

func filterABIAction(ctx *cli.Context) error {
	data, err := os.ReadFile(ctx.String(abiFileFlag.Name))
	if err != nil {
		return errors.WithMessage(err, "read interface file")
	}
	parsed, err := abi.New(data)
	if err != nil {
		return err
	}

	events, functions := parsed.Filter(
		nameList(ctx, eventsFlag.Name),
		nameList(ctx, functionsFlag.Name),
	)
	log.Debug("filtered interface", "events", len(events), "functions", len(functions))

	out := struct {
		Events    map[string][]fieldJSON  `json:"events"`
		Functions map[string]functionJSON `json:"functions"`
	}{
		Events:    make(map[string][]fieldJSON, len(events)),
		Functions: make(map[string]functionJSON, len(functions)),
	}
	for name, fields := range events {
		out.Events[name] = toFieldJSON(fields)
	}
	for name, io := range functions {
		out.Functions[name] = functionJSON{
			Inputs:  toFieldJSON(io.Inputs),
			Outputs: toFieldJSON(io.Outputs),
		}
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

// nameList turns a comma separated flag into an allow-list.
// An unset flag means nil, i.e. keep everything of the category.
func nameList(ctx *cli.Context, flagName string) []string {
	if !ctx.IsSet(flagName) {
		return nil
	}
	names := []string{}
	for _, name := range strings.Split(ctx.String(flagName), ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func toFieldJSON(args ethabi.Arguments) []fieldJSON {
	fields := make([]fieldJSON, 0, len(args))
	for _, arg := range args {
		fields = append(fields, fieldJSON{
			Name:    arg.Name,
			Type:    arg.Type.String(),
			Indexed: arg.Indexed,
		})
	}
	return fields
}
