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

package data_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peridot-quant/pq-api/common"
	"github.com/peridot-quant/pq-api/data"
)

var _ = Describe("HistoryRequest", func() {
	var (
		tz    *time.Location
		begin time.Time
		end   time.Time
	)

	BeforeEach(func() {
		tz = common.GetTimezone()
		begin = time.Date(2024, time.January, 2, 0, 0, 0, 0, tz)
		end = time.Date(2024, time.June, 28, 0, 0, 0, 0, tz)
	})

	DescribeTable("validating accepted combinations",
		func(build func() *data.HistoryRequest) {
			Expect(build().Validate()).To(Succeed())
		},
		Entry("with begin and end", func() *data.HistoryRequest {
			return data.NewHistoryRequest().Between(
				time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC))
		}),
		Entry("with begin, end and interval", func() *data.HistoryRequest {
			return data.NewHistoryRequest().Between(
				time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC)).Interval("1h")
		}),
		Entry("with a period", func() *data.HistoryRequest {
			return data.NewHistoryRequest().Period("1y")
		}),
		Entry("with a period and interval", func() *data.HistoryRequest {
			return data.NewHistoryRequest().Period("6mo").Interval("1wk")
		}),
	)

	It("rejects an empty request", func() {
		err := data.NewHistoryRequest().Validate()
		Expect(err).To(MatchError(data.ErrInvalidRequest))
	})

	It("rejects a request with only an interval", func() {
		err := data.NewHistoryRequest().Interval("1d").Validate()
		Expect(err).To(MatchError(data.ErrInvalidRequest))
	})

	It("rejects both a range and a period", func() {
		err := data.NewHistoryRequest().Between(begin, end).Period("1y").Validate()
		Expect(err).To(MatchError(data.ErrInvalidRequest))
	})

	It("rejects a begin without an end", func() {
		err := data.NewHistoryRequest().Between(begin, time.Time{}).Validate()
		Expect(err).To(MatchError(data.ErrInvalidRequest))
	})

	It("rejects a begin after the end", func() {
		err := data.NewHistoryRequest().Between(end, begin).Validate()
		Expect(err).To(MatchError(data.ErrBeginAfterEnd))
	})

	It("rejects an unsupported period", func() {
		err := data.NewHistoryRequest().Period("7y").Validate()
		Expect(err).To(MatchError(data.ErrInvalidPeriod))
	})

	It("rejects an unsupported interval", func() {
		err := data.NewHistoryRequest().Period("1y").Interval("42s").Validate()
		Expect(err).To(MatchError(data.ErrInvalidInterval))
	})
})
