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

package stats_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peridot-quant/pq-api/stats"
)

var _ = Describe("When computing sample statistics", func() {
	sample := []float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}

	It("computes the mean", func() {
		mean, err := stats.Mean(sample)
		Expect(err).To(BeNil())
		Expect(mean).To(Equal(5.0))
	})

	It("computes the unbiased sample variance", func() {
		variance, err := stats.Variance(sample)
		Expect(err).To(BeNil())
		// sum of squared deviations is 32; n-1 is 7
		Expect(variance).To(BeNumerically("~", 32.0/7.0, 1e-9))
	})

	It("computes the sample standard deviation", func() {
		stdDev, err := stats.StdDev(sample)
		Expect(err).To(BeNil())
		Expect(stdDev).To(BeNumerically("~", math.Sqrt(32.0/7.0), 1e-9))
	})

	It("computes the supremum and infimum", func() {
		sup, err := stats.Sup(sample)
		Expect(err).To(BeNil())
		Expect(sup).To(Equal(9.0))

		inf, err := stats.Inf(sample)
		Expect(err).To(BeNil())
		Expect(inf).To(Equal(2.0))

		Expect(sup).To(BeNumerically(">=", inf))
	})

	It("computes the range", func() {
		sampleRange, err := stats.Range(sample)
		Expect(err).To(BeNil())
		Expect(sampleRange).To(Equal(7.0))
	})

	It("handles a single element sample", func() {
		single := []float64{3.14}

		mean, err := stats.Mean(single)
		Expect(err).To(BeNil())
		Expect(mean).To(Equal(3.14))

		sampleRange, err := stats.Range(single)
		Expect(err).To(BeNil())
		Expect(sampleRange).To(Equal(0.0))
	})

	DescribeTable("rejecting an empty sample",
		func(fn func([]float64) (float64, error)) {
			v, err := fn(nil)
			Expect(err).To(MatchError(stats.ErrEmptySample))
			Expect(math.IsNaN(v)).To(BeTrue())
		},
		Entry("for the mean", stats.Mean),
		Entry("for the variance", stats.Variance),
		Entry("for the standard deviation", stats.StdDev),
		Entry("for the supremum", stats.Sup),
		Entry("for the infimum", stats.Inf),
		Entry("for the range", stats.Range),
	)
})
