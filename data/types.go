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

// Security represents a tradeable asset
type Security struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name,omitempty"`
}

type Metric string

const (
	MetricOpen          Metric = "Open"
	MetricLow           Metric = "Low"
	MetricHigh          Metric = "High"
	MetricClose         Metric = "Close"
	MetricAdjustedClose Metric = "AdjClose"
	MetricVolume        Metric = "Volume"
)

// HistoryColumns lists the dataframe columns returned by History, in order
var HistoryColumns = []string{
	string(MetricOpen),
	string(MetricHigh),
	string(MetricLow),
	string(MetricClose),
	string(MetricAdjustedClose),
	string(MetricVolume),
}

// Quote is a point-in-time snapshot of quantitative quote attributes.
// Values are as reported by the provider at call time; they are not
// versioned or cached.
type Quote struct {
	Security Security `json:"security"`

	CurrentPrice  float64 `json:"currentPrice"`
	PreviousClose float64 `json:"previousClose"`
	Open          float64 `json:"open"`
	DayLow        float64 `json:"dayLow"`
	DayHigh       float64 `json:"dayHigh"`

	Beta       float64 `json:"beta"`
	TrailingPE float64 `json:"trailingPE"`
	ForwardPE  float64 `json:"forwardPE"`

	Volume                  int64 `json:"volume"`
	RegularMarketVolume     int64 `json:"regularMarketVolume"`
	AverageDailyVolume10Day int64 `json:"averageDailyVolume10Day"`

	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`

	OverallRisk float64 `json:"overallRisk"`
}

// Officer is a company officer as reported in the provider's asset profile
type Officer struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Title    string  `json:"title"`
	TotalPay float64 `json:"totalPay"`
}

// CompanyProfile holds qualitative attributes of the company behind a security
type CompanyProfile struct {
	Security Security `json:"security"`

	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Sector      string `json:"sector"`
	SectorKey   string `json:"sectorKey"`
	Industry    string `json:"industry"`
	IndustryKey string `json:"industryKey"`
	Employees   int    `json:"employees"`

	// Officers holds the top four company officers
	Officers []Officer `json:"officers"`
}

// SameSector reports whether both companies belong to the same GICS sector
func (profile *CompanyProfile) SameSector(other *CompanyProfile) bool {
	return profile.Sector != "" && profile.Sector == other.Sector
}

// SameIndustry reports whether both companies belong to the same industry
func (profile *CompanyProfile) SameIndustry(other *CompanyProfile) bool {
	return profile.Industry != "" && profile.Industry == other.Industry
}
