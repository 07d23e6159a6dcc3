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

// Package stats provides basic sample statistics over a numeric sample.
// Every function rejects an empty sample with ErrEmptySample.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptySample = errors.New("empty sample")

// Mean returns the sample mean
func Mean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return math.NaN(), ErrEmptySample
	}
	return stat.Mean(sample, nil), nil
}

// Variance returns the unbiased sample variance (n-1 denominator)
func Variance(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return math.NaN(), ErrEmptySample
	}
	return stat.Variance(sample, nil), nil
}

// StdDev returns the sample standard deviation
func StdDev(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return math.NaN(), ErrEmptySample
	}
	return stat.StdDev(sample, nil), nil
}

// Sup returns the maximum of the sample
func Sup(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return math.NaN(), ErrEmptySample
	}
	return floats.Max(sample), nil
}

// Inf returns the minimum of the sample
func Inf(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return math.NaN(), ErrEmptySample
	}
	return floats.Min(sample), nil
}

// Range returns Sup(sample) - Inf(sample)
func Range(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return math.NaN(), ErrEmptySample
	}
	return floats.Max(sample) - floats.Min(sample), nil
}
