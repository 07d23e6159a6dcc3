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
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// NewSecurity creates a security from an exchange ticker symbol. Tickers are
// normalized to upper case; an empty ticker is rejected.
func NewSecurity(ticker string) (*Security, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, ErrInvalidTicker
	}

	return &Security{
		Ticker: ticker,
	}, nil
}

// SearchSecurity resolves a company name to its publicly traded security using
// the provider's search endpoint. Returns ErrNotFound when the company has no
// listed equity.
func SearchSecurity(ctx context.Context, companyName string) (*Security, error) {
	return NewYahoo().Search(ctx, companyName)
}

// MarshalZerologObject implements the log marshaller interface for zerolog
func (security *Security) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Ticker", security.Ticker)
	if security.Name != "" {
		e.Str("Name", security.Name)
	}
}
