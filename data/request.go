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

package data

import (
	"time"

	"github.com/rs/zerolog"
)

// Period and interval string enums are defined by the provider, not by this
// package; the sets below are the values the provider accepts.
var validPeriods = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

var validIntervals = map[string]bool{
	"1m": true, "2m": true, "5m": true, "15m": true, "30m": true,
	"1h": true, "1d": true, "5d": true, "1wk": true, "1mo": true, "3mo": true,
}

// DefaultInterval is used when a request does not name an interval
const DefaultInterval = "1d"

// HistoryRequest configures a price history retrieval. The time range is
// specified either as an explicit begin/end pair or as a trailing period
// relative to now; specifying both (or neither) is invalid. The quote
// interval may be given in either case and defaults to daily.
type HistoryRequest struct {
	period   string
	interval string
	begin    time.Time
	end      time.Time
}

// NewHistoryRequest creates an empty history request
func NewHistoryRequest() *HistoryRequest {
	return &HistoryRequest{}
}

// Period sets the trailing period (e.g. "1mo", "1y")
func (req *HistoryRequest) Period(period string) *HistoryRequest {
	req.period = period
	return req
}

// Interval sets the time interval between quotes (e.g. "1h", "1d")
func (req *HistoryRequest) Interval(interval string) *HistoryRequest {
	req.interval = interval
	return req
}

// Between sets an explicit begin/end date range (inclusive)
func (req *HistoryRequest) Between(begin, end time.Time) *HistoryRequest {
	req.begin = begin
	req.end = end
	return req
}

// Validate checks that the request names a usable time range. Accepted
// combinations are:
//
//  1. begin, end
//  2. begin, end, interval
//  3. period
//  4. period, interval
func (req *HistoryRequest) Validate() error {
	hasBegin := !req.begin.IsZero()
	hasEnd := !req.end.IsZero()
	hasPeriod := req.period != ""

	if hasBegin != hasEnd {
		return ErrInvalidRequest
	}

	hasRange := hasBegin && hasEnd
	if hasRange == hasPeriod {
		// both set, or neither set
		return ErrInvalidRequest
	}

	if hasRange && req.begin.After(req.end) {
		return ErrBeginAfterEnd
	}

	if hasPeriod && !validPeriods[req.period] {
		return ErrInvalidPeriod
	}

	if req.interval != "" && !validIntervals[req.interval] {
		return ErrInvalidInterval
	}

	return nil
}

func (req *HistoryRequest) resolvedInterval() string {
	if req.interval == "" {
		return DefaultInterval
	}
	return req.interval
}

// MarshalZerologObject implements the log marshaller interface for zerolog
func (req *HistoryRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Period", req.period).Str("Interval", req.resolvedInterval())
	if !req.begin.IsZero() {
		e.Time("Begin", req.begin).Time("End", req.end)
	}
}
