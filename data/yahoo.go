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
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/peridot-quant/pq-api/common"
	"github.com/peridot-quant/pq-api/dataframe"
)

var yahooAPI = "https://query1.finance.yahoo.com"

// public endpoints reject requests without a browser user agent
const yahooUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

type yahoo struct {
	client  *http.Client
	baseURL string
}

// NewYahoo creates a new Yahoo Finance data provider
func NewYahoo() *yahoo {
	baseURL := viper.GetString("yahoo.base_url")
	if baseURL == "" {
		baseURL = yahooAPI
	}

	return &yahoo{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// wire formats

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []yahooQuoteSummaryResult `json:"result"`
		Error  *yahooError               `json:"error"`
	} `json:"quoteSummary"`
}

type yahooQuoteSummaryResult struct {
	SummaryDetail *struct {
		PreviousClose           rawFloat `json:"previousClose"`
		Open                    rawFloat `json:"open"`
		DayLow                  rawFloat `json:"dayLow"`
		DayHigh                 rawFloat `json:"dayHigh"`
		Beta                    rawFloat `json:"beta"`
		TrailingPE              rawFloat `json:"trailingPE"`
		ForwardPE               rawFloat `json:"forwardPE"`
		Volume                  rawInt   `json:"volume"`
		RegularMarketVolume     rawInt   `json:"regularMarketVolume"`
		AverageDailyVolume10Day rawInt   `json:"averageDailyVolume10Day"`
		FiftyTwoWeekLow         rawFloat `json:"fiftyTwoWeekLow"`
		FiftyTwoWeekHigh        rawFloat `json:"fiftyTwoWeekHigh"`
	} `json:"summaryDetail"`
	FinancialData *struct {
		CurrentPrice rawFloat `json:"currentPrice"`
	} `json:"financialData"`
	AssetProfile *struct {
		LongBusinessSummary string  `json:"longBusinessSummary"`
		Sector              string  `json:"sector"`
		SectorKey           string  `json:"sectorKey"`
		Industry            string  `json:"industry"`
		IndustryKey         string  `json:"industryKey"`
		FullTimeEmployees   int     `json:"fullTimeEmployees"`
		OverallRisk         float64 `json:"overallRisk"`
		CompanyOfficers     []struct {
			Name     string   `json:"name"`
			Age      int      `json:"age"`
			Title    string   `json:"title"`
			TotalPay rawFloat `json:"totalPay"`
		} `json:"companyOfficers"`
	} `json:"assetProfile"`
	Price *struct {
		LongName  string `json:"longName"`
		ShortName string `json:"shortName"`
	} `json:"price"`
}

type yahooSearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		QuoteType string `json:"quoteType"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
	} `json:"quotes"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// quoteSummary numeric fields arrive as {"raw": 1.23, "fmt": "1.23"}

type rawFloat struct {
	Raw float64 `json:"raw"`
}

type rawInt struct {
	Raw int64 `json:"raw"`
}

// History retrieves a price history for the security as a dataframe with the
// columns Open, High, Low, Close, AdjClose and Volume, indexed by quote time
// in the New York reference timezone. Null bars (market holidays) are skipped.
func (y *yahoo) History(ctx context.Context, security *Security, req *HistoryRequest) (*dataframe.DataFrame, error) {
	subLog := log.With().Str("Ticker", security.Ticker).Object("Request", req).Logger()

	if err := req.Validate(); err != nil {
		subLog.Debug().Err(err).Msg("invalid history request")
		return nil, err
	}

	var reqURL string
	if req.period != "" {
		reqURL = fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
			y.baseURL, url.PathEscape(security.Ticker), req.resolvedInterval(), req.period)
	} else {
		reqURL = fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s",
			y.baseURL, url.PathEscape(security.Ticker), req.begin.Unix(), req.end.Unix(), req.resolvedInterval())
	}

	chart := yahooChartResponse{}
	if err := y.getJSON(ctx, reqURL, &chart); err != nil {
		subLog.Error().Err(err).Msg("could not load price history")
		return nil, err
	}

	if chart.Chart.Error != nil {
		subLog.Error().Str("Code", chart.Chart.Error.Code).Str("Description", chart.Chart.Error.Description).Msg("chart request rejected")
		return nil, fmt.Errorf("%w: %s", ErrNotFound, chart.Chart.Error.Description)
	}

	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, ErrNoData
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrNoData
	}
	quote := result.Indicators.Quote[0]

	var adjClose []*float64
	if len(result.Indicators.AdjClose) > 0 {
		adjClose = result.Indicators.AdjClose[0].AdjClose
	}

	tz := common.GetTimezone()
	df := &dataframe.DataFrame{
		ColNames: HistoryColumns,
		Dates:    make([]time.Time, 0, len(result.Timestamp)),
		Vals:     make([][]float64, len(HistoryColumns)),
	}

	for idx, ts := range result.Timestamp {
		closePx := derefFloat(quote.Close[idx])
		adjPx := closePx
		if adjClose != nil && adjClose[idx] != nil {
			adjPx = *adjClose[idx]
		}

		df.Dates = append(df.Dates, time.Unix(ts, 0).In(tz))
		df.Vals[0] = append(df.Vals[0], derefFloat(quote.Open[idx]))
		df.Vals[1] = append(df.Vals[1], derefFloat(quote.High[idx]))
		df.Vals[2] = append(df.Vals[2], derefFloat(quote.Low[idx]))
		df.Vals[3] = append(df.Vals[3], closePx)
		df.Vals[4] = append(df.Vals[4], adjPx)
		df.Vals[5] = append(df.Vals[5], derefInt(quote.Volume[idx]))
	}

	// holidays and halted sessions come back as null bars
	df = df.Drop(math.NaN())
	if df.Len() == 0 {
		return nil, ErrNoData
	}

	return df, nil
}

// Quote retrieves a snapshot of quantitative quote attributes for the security
func (y *yahoo) Quote(ctx context.Context, security *Security) (*Quote, error) {
	subLog := log.With().Str("Ticker", security.Ticker).Logger()

	result, err := y.quoteSummary(ctx, security, "summaryDetail,financialData,assetProfile")
	if err != nil {
		subLog.Error().Err(err).Msg("could not load quote")
		return nil, err
	}

	quote := &Quote{
		Security: *security,
	}

	if detail := result.SummaryDetail; detail != nil {
		quote.PreviousClose = detail.PreviousClose.Raw
		quote.Open = detail.Open.Raw
		quote.DayLow = detail.DayLow.Raw
		quote.DayHigh = detail.DayHigh.Raw
		quote.Beta = detail.Beta.Raw
		quote.TrailingPE = detail.TrailingPE.Raw
		quote.ForwardPE = detail.ForwardPE.Raw
		quote.Volume = detail.Volume.Raw
		quote.RegularMarketVolume = detail.RegularMarketVolume.Raw
		quote.AverageDailyVolume10Day = detail.AverageDailyVolume10Day.Raw
		quote.FiftyTwoWeekLow = detail.FiftyTwoWeekLow.Raw
		quote.FiftyTwoWeekHigh = detail.FiftyTwoWeekHigh.Raw
	}

	if fin := result.FinancialData; fin != nil {
		quote.CurrentPrice = fin.CurrentPrice.Raw
	}

	if profile := result.AssetProfile; profile != nil {
		quote.OverallRisk = profile.OverallRisk
	}

	return quote, nil
}

// Profile retrieves the company profile behind the security
func (y *yahoo) Profile(ctx context.Context, security *Security) (*CompanyProfile, error) {
	subLog := log.With().Str("Ticker", security.Ticker).Logger()

	result, err := y.quoteSummary(ctx, security, "assetProfile,price")
	if err != nil {
		subLog.Error().Err(err).Msg("could not load company profile")
		return nil, err
	}

	companyProfile := &CompanyProfile{
		Security: *security,
	}

	if price := result.Price; price != nil {
		companyProfile.Name = price.LongName
		if companyProfile.Name == "" {
			companyProfile.Name = price.ShortName
		}
	}

	if profile := result.AssetProfile; profile != nil {
		companyProfile.Summary = profile.LongBusinessSummary
		companyProfile.Sector = profile.Sector
		companyProfile.SectorKey = profile.SectorKey
		companyProfile.Industry = profile.Industry
		companyProfile.IndustryKey = profile.IndustryKey
		companyProfile.Employees = profile.FullTimeEmployees

		// top four officers, as reported
		officers := profile.CompanyOfficers
		if len(officers) > 4 {
			officers = officers[:4]
		}
		for _, officer := range officers {
			companyProfile.Officers = append(companyProfile.Officers, Officer{
				Name:     officer.Name,
				Age:      officer.Age,
				Title:    officer.Title,
				TotalPay: officer.TotalPay.Raw,
			})
		}
	}

	return companyProfile, nil
}

// Search resolves a company name to its security. Only EQUITY quote types are
// considered; the first match wins.
func (y *yahoo) Search(ctx context.Context, query string) (*Security, error) {
	subLog := log.With().Str("Query", query).Logger()

	reqURL := fmt.Sprintf("%s/v1/finance/search?q=%s", y.baseURL, url.QueryEscape(query))

	search := yahooSearchResponse{}
	if err := y.getJSON(ctx, reqURL, &search); err != nil {
		subLog.Error().Err(err).Msg("could not search for security")
		return nil, err
	}

	for _, match := range search.Quotes {
		if match.QuoteType != "EQUITY" {
			continue
		}
		name := match.LongName
		if name == "" {
			name = match.ShortName
		}
		return &Security{
			Ticker: match.Symbol,
			Name:   name,
		}, nil
	}

	subLog.Debug().Msg("no equity matched query")
	return nil, ErrNotFound
}

func (y *yahoo) quoteSummary(ctx context.Context, security *Security, modules string) (*yahooQuoteSummaryResult, error) {
	reqURL := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		y.baseURL, url.PathEscape(security.Ticker), url.QueryEscape(modules))

	summary := yahooQuoteSummaryResponse{}
	if err := y.getJSON(ctx, reqURL, &summary); err != nil {
		return nil, err
	}

	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, summary.QuoteSummary.Error.Description)
	}

	if len(summary.QuoteSummary.Result) == 0 {
		return nil, ErrNotFound
	}

	return &summary.QuoteSummary.Result[0], nil
}

func (y *yahoo) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("User-Agent", yahooUserAgent)

	resp, err := y.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode >= 400 {
		log.Warn().Str("Url", reqURL).Int("HTTPResponseStatusCode", resp.StatusCode).Bytes("Body", body).Msg("provider request failed")
		return fmt.Errorf("%w: %d", ErrProviderStatus, resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func derefInt(v *int64) float64 {
	if v == nil {
		return math.NaN()
	}
	return float64(*v)
}
