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

package indicators_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peridot-quant/pq-api/indicators"
)

var _ = Describe("When computing a simple moving average", func() {
	series := []float64{1.0, 2.0, 3.0, 4.0, 5.0}

	It("averages each trailing window", func() {
		sma, err := indicators.SimpleMovingAverage(series, 2)
		Expect(err).To(BeNil())
		Expect(sma).To(Equal([]float64{1.5, 2.5, 3.5, 4.5}))
	})

	It("is the identity for a window of 1", func() {
		sma, err := indicators.SimpleMovingAverage(series, 1)
		Expect(err).To(BeNil())
		Expect(sma).To(Equal(series))
	})

	It("collapses to the full mean when the window covers the series", func() {
		sma, err := indicators.SimpleMovingAverage(series, 5)
		Expect(err).To(BeNil())
		Expect(sma).To(Equal([]float64{3.0}))
	})

	DescribeTable("rejecting invalid windows",
		func(window int) {
			_, err := indicators.SimpleMovingAverage(series, window)
			Expect(err).To(MatchError(indicators.ErrInvalidWindow))
		},
		Entry("when the window is zero", 0),
		Entry("when the window is negative", -1),
		Entry("when the window exceeds the series", 6),
	)
})

var _ = Describe("When computing the relative strength index", func() {
	It("matches a hand-computed series", func() {
		series := []float64{44.0, 45.0, 44.0, 46.0, 45.0, 47.0}
		rsi, err := indicators.RSI(series, 3)
		Expect(err).To(BeNil())
		Expect(rsi).To(HaveLen(3))
		Expect(rsi[0]).To(BeNumerically("~", 75.0, 1e-9))
		Expect(rsi[1]).To(BeNumerically("~", 54.545454545, 1e-6))
		Expect(rsi[2]).To(BeNumerically("~", 75.0, 1e-9))
	})

	It("saturates at 100 for a monotonically rising series", func() {
		series := []float64{1.0, 2.0, 3.0, 4.0, 5.0, 6.0}
		rsi, err := indicators.RSI(series, 3)
		Expect(err).To(BeNil())
		for _, v := range rsi {
			Expect(v).To(Equal(100.0))
		}
	})

	It("saturates at 0 for a monotonically falling series", func() {
		series := []float64{6.0, 5.0, 4.0, 3.0, 2.0, 1.0}
		rsi, err := indicators.RSI(series, 3)
		Expect(err).To(BeNil())
		for _, v := range rsi {
			Expect(v).To(Equal(0.0))
		}
	})

	It("stays within [0, 100]", func() {
		series := []float64{10, 12, 9, 14, 13, 11, 15, 16, 12, 18}
		rsi, err := indicators.RSI(series, 4)
		Expect(err).To(BeNil())
		Expect(rsi).To(HaveLen(6))
		for _, v := range rsi {
			Expect(v).To(BeNumerically(">=", 0.0))
			Expect(v).To(BeNumerically("<=", 100.0))
		}
	})

	It("rejects an invalid period", func() {
		_, err := indicators.RSI([]float64{1, 2, 3}, 0)
		Expect(err).To(MatchError(indicators.ErrInvalidWindow))
	})

	It("rejects a series shorter than period+1", func() {
		_, err := indicators.RSI([]float64{1, 2, 3}, 3)
		Expect(err).To(MatchError(indicators.ErrInsufficientData))
	})
})
