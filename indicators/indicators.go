// Copyright 2024-2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package indicators implements technical indicator math over an ordered
// price series. Unlike the dataframe rolling helpers, functions here trim
// the warm-up period from the output and report invalid arguments as errors.
package indicators

import (
	"errors"
)

var (
	ErrInvalidWindow    = errors.New("window must be: 0 < window <= len(series)")
	ErrInsufficientData = errors.New("series too short for requested period")
)

// SimpleMovingAverage computes the arithmetic mean over a trailing window of
// the given size. The result has length len(series)-window+1; element i is
// the mean of series[i : i+window].
func SimpleMovingAverage(series []float64, window int) ([]float64, error) {
	if window <= 0 || window > len(series) {
		return nil, ErrInvalidWindow
	}

	res := make([]float64, 0, len(series)-window+1)
	roll := 0.0
	for idx, v := range series {
		roll += v
		if idx >= window {
			roll -= series[idx-window]
		}
		if idx >= window-1 {
			res = append(res, roll/float64(window))
		}
	}

	return res, nil
}

// RSI computes the Wilder-smoothed relative strength index over a trailing
// window of the given period. The first output corresponds to series[period]
// so the result has length len(series)-period; every value lies in [0, 100].
// Requires at least period+1 points.
func RSI(series []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidWindow
	}
	if len(series) < period+1 {
		return nil, ErrInsufficientData
	}

	// Initial average gain/loss over the first `period` changes
	var avgGain, avgLoss float64
	for idx := 1; idx <= period; idx++ {
		change := series[idx] - series[idx-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	res := make([]float64, 0, len(series)-period)
	res = append(res, rsiValue(avgGain, avgLoss))

	// Wilder smoothing for the remaining points
	for idx := period + 1; idx < len(series); idx++ {
		change := series[idx] - series[idx-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		res = append(res, rsiValue(avgGain, avgLoss))
	}

	return res, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
