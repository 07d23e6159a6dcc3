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

package dataframe

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SMA computes the simple moving average of all the columns in df for the specified
// lookback period. The length of the resulting dataframe equals that of the input
// with NaNs during the warm-up period. Invalid lookback periods result in a dataframe
// of all NaN.
// NOTE: lookback is in terms of date periods. if the dataframe is sampled monthly
// then SMA is monthly
func (df *DataFrame) SMA(lookback int) *DataFrame {
	// check that lookback is a valid period
	if (lookback > df.Len()) || (lookback <= 0) {
		log.Error().Stack().Int("Lookback", lookback).Int("NRows", df.Len()).Msg("lookback must be: 0 < lookback <= NRows")
		nullDf := &DataFrame{
			Dates:    df.Dates,
			Vals:     make([][]float64, df.ColCount()),
			ColNames: df.ColNames,
		}
		for colIdx := range nullDf.Vals {
			nullDf.Vals[colIdx] = make([]float64, df.Len())
			for rowIdx := range nullDf.Vals[colIdx] {
				nullDf.Vals[colIdx][rowIdx] = math.NaN()
			}
		}
		return nullDf
	}

	filterBank := make([][]float64, df.ColCount())
	for idx := range filterBank {
		filterBank[idx] = make([]float64, lookback)
	}

	smaVals := make([][]float64, df.ColCount())
	for idx := range smaVals {
		smaVals[idx] = make([]float64, df.Len())
	}

	warmup := true

	for rowIdx := range df.Dates {
		// if we have seen at least lookback rows then we are out of the warmup period
		// NOTE: row is 0 based, lookback is 1 based; hence the test applied below
		if rowIdx == (lookback - 1) {
			warmup = false
		}

		filterBankIdx := rowIdx % lookback

		for colIdx := range df.Vals {
			filterBank[colIdx][filterBankIdx] = df.Vals[colIdx][rowIdx]
			if warmup {
				smaVals[colIdx][rowIdx] = math.NaN()
			} else {
				smaVals[colIdx][rowIdx] = stat.Mean(filterBank[colIdx], nil)
			}
		}
	}

	return &DataFrame{
		Dates:    df.Dates,
		Vals:     smaVals,
		ColNames: df.ColNames,
	}
}

// Fill patches NaN holes in every column and returns a new dataframe. FillForward
// carries the previous value forward; FillBackward carries the next value back.
// An edge value with no neighbor to copy from is set to the column mean of the
// remaining values.
func (df *DataFrame) Fill(method FillMethod) (*DataFrame, error) {
	if method != FillForward && method != FillBackward {
		return nil, ErrUnknownFillMethod
	}

	df = df.Copy()

	for colIdx := range df.Vals {
		col := df.Vals[colIdx]
		mean := nanMean(col)

		switch method {
		case FillForward:
			if len(col) > 0 && math.IsNaN(col[0]) {
				col[0] = mean
			}
			for rowIdx := 1; rowIdx < len(col); rowIdx++ {
				if math.IsNaN(col[rowIdx]) {
					col[rowIdx] = col[rowIdx-1]
				}
			}
		case FillBackward:
			if len(col) > 0 && math.IsNaN(col[len(col)-1]) {
				col[len(col)-1] = mean
			}
			for rowIdx := len(col) - 2; rowIdx >= 0; rowIdx-- {
				if math.IsNaN(col[rowIdx]) {
					col[rowIdx] = col[rowIdx+1]
				}
			}
		}
	}

	return df, nil
}

// Normalize rescales every column and returns a new dataframe. NormalizeMinMax maps
// values onto [0, 1]; NormalizeZScore centers on the column mean in units of the
// sample standard deviation.
func (df *DataFrame) Normalize(method NormalizeMethod) (*DataFrame, error) {
	if df.Len() == 0 {
		return nil, ErrEmptyDataFrame
	}

	df = df.Copy()

	for colIdx := range df.Vals {
		col := df.Vals[colIdx]
		switch method {
		case NormalizeMinMax:
			minVal := floats.Min(col)
			maxVal := floats.Max(col)
			span := maxVal - minVal
			for rowIdx := range col {
				col[rowIdx] = (col[rowIdx] - minVal) / span
			}
		case NormalizeZScore:
			mean, stdDev := stat.MeanStdDev(col, nil)
			for rowIdx := range col {
				col[rowIdx] = (col[rowIdx] - mean) / stdDev
			}
		default:
			return nil, ErrUnknownNormalize
		}
	}

	return df, nil
}

func nanMean(col []float64) float64 {
	sum := 0.0
	cnt := 0
	for _, v := range col {
		if !math.IsNaN(v) {
			sum += v
			cnt++
		}
	}
	if cnt == 0 {
		return math.NaN()
	}
	return sum / float64(cnt)
}
