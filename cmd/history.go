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
	"strings"
	"time"

	"github.com/peridot-quant/pq-api/common"
	"github.com/peridot-quant/pq-api/data"
	"github.com/peridot-quant/pq-api/dataframe"
	"github.com/peridot-quant/pq-api/indicators"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	historyPeriod   string
	historyInterval string
	historyBegin    string
	historyEnd      string
	historyMetric   string
	historyFreq     string
	historySMA      int
	historyRSI      int
	historyChart    bool
	historyLast     bool
)

func init() {
	historyCmd.Flags().StringVar(&historyPeriod, "period", "", "Trailing period to retrieve (e.g. 1mo, 1y, max)")
	historyCmd.Flags().StringVar(&historyInterval, "interval", "", "Quote interval (e.g. 1h, 1d, 1wk)")
	historyCmd.Flags().StringVar(&historyBegin, "begin", "", "Range start date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyEnd, "end", "", "Range end date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyMetric, "metric", string(data.MetricAdjustedClose), "Metric column for indicators and charting")
	historyCmd.Flags().StringVar(&historyFreq, "freq", "", "Resample quotes to the last row of each period: daily, weekly, monthly or annually")
	historyCmd.Flags().IntVar(&historySMA, "sma", 0, "Append a simple moving average column with the given window")
	historyCmd.Flags().IntVar(&historyRSI, "rsi", 0, "Append a relative strength index column with the given period")
	historyCmd.Flags().BoolVar(&historyChart, "chart", false, "Render the metric column as an ascii chart")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Only print the most recent row")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <ticker>",
	Short: "Retrieve a price history for a ticker",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		security, err := data.NewSecurity(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", args[0]).Msg("invalid ticker")
		}

		req, err := buildHistoryRequest()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid history request")
		}

		df, err := data.NewYahoo().History(context.Background(), security, req)
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", security.Ticker).Msg("could not retrieve price history")
		}
		log.Debug().Time("Begin", df.Start()).Time("End", df.End()).Int("NumRows", df.Len()).Msg("retrieved price history")

		if historyFreq != "" {
			df = df.Frequency(parseFrequency(historyFreq))
		}

		metric := df.Col(historyMetric)
		if metric == nil {
			log.Fatal().Err(data.ErrUnsupportedMetric).Str("Metric", historyMetric).Strs("Available", df.ColNames).Msg("unknown metric column")
		}

		if historySMA > 0 {
			sma, err := indicators.SimpleMovingAverage(metric, historySMA)
			if err != nil {
				log.Fatal().Err(err).Int("Window", historySMA).Msg("could not compute moving average")
			}
			df.Insert(fmt.Sprintf("SMA(%d)", historySMA), padFront(sma, df.Len()))
		}

		if historyRSI > 0 {
			rsi, err := indicators.RSI(metric, historyRSI)
			if err != nil {
				log.Fatal().Err(err).Int("Period", historyRSI).Msg("could not compute relative strength index")
			}
			df.Insert(fmt.Sprintf("RSI(%d)", historyRSI), padFront(rsi, df.Len()))
		}

		if historyChart {
			fmt.Println(asciigraph.Plot(metric,
				asciigraph.Height(15),
				asciigraph.Caption(fmt.Sprintf("%s %s", security.Ticker, historyMetric))))
			return
		}

		if historyLast {
			df = df.Last()
		}

		fmt.Println(df.Table())
	},
}

func parseFrequency(freq string) dataframe.Frequency {
	switch strings.ToLower(freq) {
	case "daily":
		return dataframe.Daily
	case "weekly":
		return dataframe.Weekly
	case "monthly":
		return dataframe.Monthly
	case "annually":
		return dataframe.Annually
	}
	log.Fatal().Str("Frequency", freq).Msg("unknown frequency")
	return dataframe.Daily
}

func buildHistoryRequest() (*data.HistoryRequest, error) {
	req := data.NewHistoryRequest().Interval(historyInterval)

	switch {
	case historyBegin != "" || historyEnd != "":
		tz := common.GetTimezone()
		begin, err := time.ParseInLocation("2006-01-02", historyBegin, tz)
		if err != nil {
			return nil, err
		}
		end, err := time.ParseInLocation("2006-01-02", historyEnd, tz)
		if err != nil {
			return nil, err
		}
		req.Between(begin, end)
	case historyPeriod != "":
		req.Period(historyPeriod)
	default:
		req.Period("1y")
	}

	return req, nil
}

// padFront left-pads an indicator series with NaN so it aligns with a
// dataframe of n rows
func padFront(series []float64, n int) []float64 {
	if len(series) >= n {
		return series
	}
	padded := make([]float64, n)
	offset := n - len(series)
	for idx := 0; idx < offset; idx++ {
		padded[idx] = math.NaN()
	}
	copy(padded[offset:], series)
	return padded
}
