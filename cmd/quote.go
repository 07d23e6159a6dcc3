// Copyright 2024-2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/peridot-quant/pq-api/data"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(quoteCmd)
}

var quoteCmd = &cobra.Command{
	Use:   "quote <ticker>",
	Short: "Print current quote statistics for a ticker",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		security, err := data.NewSecurity(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", args[0]).Msg("invalid ticker")
		}

		quote, err := data.NewYahoo().Quote(context.Background(), security)
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", security.Ticker).Msg("could not retrieve quote")
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Statistic", "Value"})
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")

		table.Append([]string{"Current Price", fmtFloat(quote.CurrentPrice)})
		table.Append([]string{"Previous Close", fmtFloat(quote.PreviousClose)})
		table.Append([]string{"Open", fmtFloat(quote.Open)})
		table.Append([]string{"Day Low", fmtFloat(quote.DayLow)})
		table.Append([]string{"Day High", fmtFloat(quote.DayHigh)})
		table.Append([]string{"52 Week Low", fmtFloat(quote.FiftyTwoWeekLow)})
		table.Append([]string{"52 Week High", fmtFloat(quote.FiftyTwoWeekHigh)})
		table.Append([]string{"Beta", fmtFloat(quote.Beta)})
		table.Append([]string{"Trailing P/E", fmtFloat(quote.TrailingPE)})
		table.Append([]string{"Forward P/E", fmtFloat(quote.ForwardPE)})
		table.Append([]string{"Volume", strconv.FormatInt(quote.Volume, 10)})
		table.Append([]string{"Regular Market Volume", strconv.FormatInt(quote.RegularMarketVolume, 10)})
		table.Append([]string{"Avg Daily Volume (10d)", strconv.FormatInt(quote.AverageDailyVolume10Day, 10)})
		table.Append([]string{"Overall Risk", strconv.FormatFloat(quote.OverallRisk, 'f', 0, 64)})
		table.Render()
	},
}

func fmtFloat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
