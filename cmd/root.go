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
	"fmt"
	"os"

	"github.com/peridot-quant/pq-api/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Logging configuration
	viper.BindEnv("log.level", "PQ_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.output", "PQ_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.PersistentFlags().Bool("log-pretty", false, "Print logs in human readable console format")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))

	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	// Market data provider
	viper.BindEnv("yahoo.base_url", "PQ_YAHOO_BASE_URL")
	rootCmd.PersistentFlags().String("yahoo-base-url", "", "Override the market data provider base URL")
	viper.BindPFlag("yahoo.base_url", rootCmd.PersistentFlags().Lookup("yahoo-base-url"))
}

var rootCmd = &cobra.Command{
	Use:     "pqapi",
	Version: common.CurrentVersion.String(),
	Short:   "Peridot Quant is a market data convenience toolkit",
	Long: `A thin convenience layer over public market data: ticker lookup, price
history retrieval, company profiles, quote statistics, S&P 500 membership and
elementary technical indicators.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
