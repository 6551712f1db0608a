// Copyright (c) 2025 The stakecalc developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/holiman/uint256"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/hexlab/stakecalc/daily"
	"github.com/hexlab/stakecalc/stake"
)

var (
	version   string
	gitCommit string
	gitTag    string
	log       = log15.New()
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "stakecalc",
		Usage:     "off-chain stake return calculator",
		Copyright: "2025 The stakecalc developers",
		Flags: []cli.Flag{
			verbosityFlag,
		},
		Before: func(ctx *cli.Context) error {
			initLogger(ctx)
			return nil
		},
		Commands: []cli.Command{
			{
				Name:  "calc",
				Usage: "compute the stake return of one position",
				Flags: []cli.Flag{
					dailyDataFlag,
					stakeFlag,
					servedDaysFlag,
				},
				Action: calcAction,
			},
			{
				Name:   "filter-abi",
				Usage:  "reduce a contract interface to selected events and functions",
				Flags:  []cli.Flag{abiFileFlag, eventsFlag, functionsFlag},
				Action: filterABIAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(ctx *cli.Context) {
	logLevel := ctx.Int(verbosityFlag.Name)
	log15.Root().SetHandler(log15.LvlFilterHandler(log15.Lvl(logLevel), log15.StderrHandler))
}

func calcAction(ctx *cli.Context) error {
	var words []*uint256.Int
	if err := loadJSON(ctx.String(dailyDataFlag.Name), &words); err != nil {
		return errors.WithMessage(err, "load daily data")
	}
	dailyData := daily.DecodeRange(words)
	log.Debug("decoded daily data", "days", len(dailyData))

	var rec stake.Record
	if err := loadJSON(ctx.String(stakeFlag.Name), &rec); err != nil {
		return errors.WithMessage(err, "load stake record")
	}

	servedDays := ctx.Uint64(servedDaysFlag.Name)
	if servedDays > math.MaxUint32 {
		return errors.New("served-days out of range")
	}

	stakeReturn, err := stake.CalcStakeReturn(dailyData, &rec, uint32(servedDays))
	if err != nil {
		return errors.WithMessage(err, "calc stake return")
	}

	fmt.Println(stakeReturn.String())
	return nil
}

func loadJSON(path string, v any) error {
	if path == "" {
		return errors.New("file path required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
