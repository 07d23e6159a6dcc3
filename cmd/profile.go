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
	"strconv"

	"github.com/peridot-quant/pq-api/data"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile <ticker>",
	Short: "Print the company profile behind a ticker",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		security, err := data.NewSecurity(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", args[0]).Msg("invalid ticker")
		}

		profile, err := data.NewYahoo().Profile(context.Background(), security)
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", security.Ticker).Msg("could not retrieve company profile")
		}

		fmt.Printf("%s (%s)\n", profile.Name, security.Ticker)
		fmt.Printf("Sector:    %s\n", profile.Sector)
		fmt.Printf("Industry:  %s\n", profile.Industry)
		fmt.Printf("Employees: %d\n\n", profile.Employees)
		fmt.Println(profile.Summary)

		if len(profile.Officers) > 0 {
			fmt.Println()
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Officer", "Age", "Title", "Total Pay"})
			table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
			table.SetCenterSeparator("|")
			for _, officer := range profile.Officers {
				table.Append([]string{
					officer.Name,
					strconv.Itoa(officer.Age),
					officer.Title,
					fmtFloat(officer.TotalPay),
				})
			}
			table.Render()
		}
	},
}
