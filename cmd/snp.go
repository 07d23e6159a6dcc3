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
	"os"

	"github.com/peridot-quant/pq-api/snp"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	snpSector      string
	snpTickersOnly bool
)

func init() {
	snpCmd.Flags().StringVar(&snpSector, "sector", "", "Only list tickers in the named GICS sector")
	snpCmd.Flags().BoolVar(&snpTickersOnly, "tickers", false, "Print ticker symbols only")
	rootCmd.AddCommand(snpCmd)
}

var snpCmd = &cobra.Command{
	Use:   "snp",
	Short: "List the current S&P 500 constituents",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		constituentsClient := snp.NewClient()

		if snpSector != "" {
			tickers, err := constituentsClient.TickersBySector(ctx, snpSector)
			if err != nil {
				log.Fatal().Err(err).Str("Sector", snpSector).Msg("could not list sector constituents")
			}
			for _, ticker := range tickers {
				fmt.Println(ticker)
			}
			return
		}

		if snpTickersOnly {
			tickers, err := constituentsClient.Tickers(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("could not list constituents")
			}
			for _, ticker := range tickers {
				fmt.Println(ticker)
			}
			return
		}

		constituents, err := constituentsClient.Constituents(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not list constituents")
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Ticker", "Company", "Sector", "Sub-Industry"})
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		for _, constituent := range constituents {
			table.Append([]string{constituent.Ticker, constituent.Company, constituent.Sector, constituent.SubIndustry})
		}
		table.Render()
	},
}
