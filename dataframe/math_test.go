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

package dataframe_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peridot-quant/pq-api/common"
	"github.com/peridot-quant/pq-api/dataframe"
)

var _ = Describe("When computing the SMA", func() {
	Context("with 5 values", func() {
		var (
			df1 *dataframe.DataFrame
			tz  *time.Location
		)

		BeforeEach(func() {
			tz = common.GetTimezone()

			df1 = &dataframe.DataFrame{
				Dates: []time.Time{
					time.Date(2021, time.January, 1, 0, 0, 0, 0, tz),
					time.Date(2021, time.February, 1, 0, 0, 0, 0, tz),
					time.Date(2021, time.March, 1, 0, 0, 0, 0, tz),
					time.Date(2021, time.April, 1, 0, 0, 0, 0, tz),
					time.Date(2021, time.May, 1, 0, 0, 0, 0, tz),
				},
				Vals:     [][]float64{{1.0, 2.0, 3.0, 4.0, 5.0}},
				ColNames: []string{"test"},
			}
		})

		It("yields all NaN for lookback of 0", func() {
			sma := df1.SMA(0)
			Expect(sma.Len()).To(Equal(5))

			col1 := sma.Vals[0]
			for idx := range col1 {
				Expect(math.IsNaN(col1[idx])).Should(BeTrue())
			}
		})

		It("yields correct results for lookback of 2", func() {
			sma := df1.SMA(2)
			Expect(sma.Len()).To(Equal(5))
			Expect(sma.Dates).To(Equal(df1.Dates))

			col1 := sma.Vals[0]
			Expect(math.IsNaN(col1[0])).Should(BeTrue())
			Expect(col1[1]).Should(Equal(1.5))
			Expect(col1[2]).Should(Equal(2.5))
			Expect(col1[3]).Should(Equal(3.5))
			Expect(col1[4]).Should(Equal(4.5))
		})

		It("yields correct results for lookback of 3", func() {
			sma := df1.SMA(3)
			Expect(sma.Len()).To(Equal(5))

			col1 := sma.Vals[0]
			Expect(math.IsNaN(col1[0])).Should(BeTrue())
			Expect(math.IsNaN(col1[1])).Should(BeTrue())
			Expect(col1[2]).Should(Equal(2.0))
			Expect(col1[3]).Should(Equal(3.0))
			Expect(col1[4]).Should(Equal(4.0))
		})

		It("yields correct results for lookback of 5", func() {
			sma := df1.SMA(5)
			Expect(sma.Len()).To(Equal(5))

			col1 := sma.Vals[0]
			Expect(math.IsNaN(col1[0])).Should(BeTrue())
			Expect(math.IsNaN(col1[1])).Should(BeTrue())
			Expect(math.IsNaN(col1[2])).Should(BeTrue())
			Expect(math.IsNaN(col1[3])).Should(BeTrue())
			Expect(col1[4]).Should(Equal(3.0))
		})

		It("yields all NaN for lookback of 6", func() {
			sma := df1.SMA(6)
			Expect(sma.Len()).To(Equal(5))

			col1 := sma.Vals[0]
			for idx := range col1 {
				Expect(math.IsNaN(col1[idx])).Should(BeTrue())
			}
		})
	})
})

var _ = Describe("When filling NaN values", func() {
	var (
		df1 *dataframe.DataFrame
		tz  *time.Location
	)

	BeforeEach(func() {
		tz = common.GetTimezone()

		df1 = &dataframe.DataFrame{
			Dates: []time.Time{
				time.Date(2021, time.January, 1, 0, 0, 0, 0, tz),
				time.Date(2021, time.January, 4, 0, 0, 0, 0, tz),
				time.Date(2021, time.January, 5, 0, 0, 0, 0, tz),
				time.Date(2021, time.January, 6, 0, 0, 0, 0, tz),
			},
			Vals:     [][]float64{{1.0, math.NaN(), math.NaN(), 4.0}},
			ColNames: []string{"col1"},
		}
	})

	It("carries values forward with ffill", func() {
		df2, err := df1.Fill(dataframe.FillForward)
		Expect(err).To(BeNil())
		Expect(df2.Vals[0]).To(Equal([]float64{1.0, 1.0, 1.0, 4.0}))
	})

	It("carries values backward with bfill", func() {
		df2, err := df1.Fill(dataframe.FillBackward)
		Expect(err).To(BeNil())
		Expect(df2.Vals[0]).To(Equal([]float64{1.0, 4.0, 4.0, 4.0}))
	})

	It("patches a leading NaN with the column mean under ffill", func() {
		df1.Vals[0] = []float64{math.NaN(), 2.0, math.NaN(), 4.0}
		df2, err := df1.Fill(dataframe.FillForward)
		Expect(err).To(BeNil())
		Expect(df2.Vals[0]).To(Equal([]float64{3.0, 2.0, 2.0, 4.0}))
	})

	It("rejects an unknown fill method", func() {
		_, err := df1.Fill(dataframe.FillMethod("bogus"))
		Expect(err).To(MatchError(dataframe.ErrUnknownFillMethod))
	})
})

var _ = Describe("When normalizing a dataframe", func() {
	var (
		df1 *dataframe.DataFrame
		tz  *time.Location
	)

	BeforeEach(func() {
		tz = common.GetTimezone()

		df1 = &dataframe.DataFrame{
			Dates: []time.Time{
				time.Date(2021, time.January, 1, 0, 0, 0, 0, tz),
				time.Date(2021, time.February, 1, 0, 0, 0, 0, tz),
				time.Date(2021, time.March, 1, 0, 0, 0, 0, tz),
			},
			Vals:     [][]float64{{2.0, 4.0, 6.0}},
			ColNames: []string{"col1"},
		}
	})

	It("maps values onto [0, 1] with minmax", func() {
		df2, err := df1.Normalize(dataframe.NormalizeMinMax)
		Expect(err).To(BeNil())
		Expect(df2.Vals[0]).To(Equal([]float64{0.0, 0.5, 1.0}))
	})

	It("centers values on the mean with zscore", func() {
		df2, err := df1.Normalize(dataframe.NormalizeZScore)
		Expect(err).To(BeNil())
		Expect(df2.Vals[0][0]).To(BeNumerically("~", -1.0, 1e-9))
		Expect(df2.Vals[0][1]).To(BeNumerically("~", 0.0, 1e-9))
		Expect(df2.Vals[0][2]).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("rejects an unknown normalization method", func() {
		_, err := df1.Normalize(dataframe.NormalizeMethod("bogus"))
		Expect(err).To(MatchError(dataframe.ErrUnknownNormalize))
	})

	It("rejects an empty dataframe", func() {
		empty := &dataframe.DataFrame{}
		_, err := empty.Normalize(dataframe.NormalizeMinMax)
		Expect(err).To(MatchError(dataframe.ErrEmptyDataFrame))
	})
})
