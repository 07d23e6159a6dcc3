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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peridot-quant/pq-api/data"
)

var _ = Describe("Security", func() {
	It("normalizes the ticker to upper case", func() {
		security, err := data.NewSecurity(" aapl ")
		Expect(err).To(BeNil())
		Expect(security.Ticker).To(Equal("AAPL"))
	})

	It("preserves share class tickers", func() {
		security, err := data.NewSecurity("brk.b")
		Expect(err).To(BeNil())
		Expect(security.Ticker).To(Equal("BRK.B"))
	})

	DescribeTable("rejecting invalid tickers",
		func(ticker string) {
			_, err := data.NewSecurity(ticker)
			Expect(err).To(MatchError(data.ErrInvalidTicker))
		},
		Entry("when the ticker is empty", ""),
		Entry("when the ticker is only whitespace", "   "),
	)
})
