// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"github.com/inconshreveable/log15"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	dailyDataFlag = cli.StringFlag{
		Name:  "daily-data",
		Usage: "path to the packed daily data JSON file (array of 256-bit hex words)",
	}
	stakeFlag = cli.StringFlag{
		Name:  "stake",
		Usage: "path to the stake record JSON file",
	}
	servedDaysFlag = cli.Uint64Flag{
		Name:  "served-days",
		Usage: "number of days the stake actually stayed pooled",
	}
	abiFileFlag = cli.StringFlag{
		Name:  "abi",
		Usage: "path to the contract interface JSON file",
	}
	eventsFlag = cli.StringFlag{
		Name:  "events",
		Usage: "comma separated event names to keep (default: all)",
	}
	functionsFlag = cli.StringFlag{
		Name:  "functions",
		Usage: "comma separated function names to keep (default: all)",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: int(log15.LvlInfo),
		Usage: "log verbosity (0-9)",
	}
)
