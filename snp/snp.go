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

// Package snp lists the constituents of the S&P 500 index. The constituent
// table is fetched on every call; membership is not cached or persisted.
package snp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/net/html"
)

// main loading source for the s&p500 constituent list
var constituentsURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"

var (
	ErrNoTable       = errors.New("constituent table not found")
	ErrUnknownSector = errors.New("no constituent in requested sector")
	ErrStatus        = errors.New("constituent source returned invalid status code")
)

// Constituent is a single member of the index
type Constituent struct {
	Ticker      string `json:"ticker"`
	Company     string `json:"company"`
	Sector      string `json:"sector"`
	SubIndustry string `json:"subIndustry"`
}

type client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a new S&P 500 constituent source
func NewClient() *client {
	sourceURL := viper.GetString("snp.constituents_url")
	if sourceURL == "" {
		sourceURL = constituentsURL
	}

	return &client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url: sourceURL,
	}
}

// Constituents returns every member of the index with its GICS classification
func (c *client) Constituents(ctx context.Context) ([]Constituent, error) {
	subLog := log.With().Str("Url", c.url).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		subLog.Error().Err(err).Msg("could not load constituent list")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		subLog.Error().Int("HTTPResponseStatusCode", resp.StatusCode).Msg("constituent request failed")
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	constituents, err := parseConstituents(resp.Body)
	if err != nil {
		subLog.Error().Err(err).Msg("could not parse constituent table")
		return nil, err
	}

	subLog.Debug().Int("NumConstituents", len(constituents)).Msg("loaded constituent list")
	return constituents, nil
}

// Tickers returns the ticker symbols of every index member
func (c *client) Tickers(ctx context.Context) ([]string, error) {
	constituents, err := c.Constituents(ctx)
	if err != nil {
		return nil, err
	}

	tickers := make([]string, 0, len(constituents))
	for _, constituent := range constituents {
		tickers = append(tickers, constituent.Ticker)
	}
	return tickers, nil
}

// Companies returns the company names of every index member
func (c *client) Companies(ctx context.Context) ([]string, error) {
	constituents, err := c.Constituents(ctx)
	if err != nil {
		return nil, err
	}

	companies := make([]string, 0, len(constituents))
	for _, constituent := range constituents {
		companies = append(companies, constituent.Company)
	}
	return companies, nil
}

// SectorMap returns company name -> GICS sector for every index member
func (c *client) SectorMap(ctx context.Context) (map[string]string, error) {
	constituents, err := c.Constituents(ctx)
	if err != nil {
		return nil, err
	}

	sectors := make(map[string]string, len(constituents))
	for _, constituent := range constituents {
		sectors[constituent.Company] = constituent.Sector
	}
	return sectors, nil
}

// SubIndustryMap returns company name -> GICS sub-industry for every index member
func (c *client) SubIndustryMap(ctx context.Context) (map[string]string, error) {
	constituents, err := c.Constituents(ctx)
	if err != nil {
		return nil, err
	}

	industries := make(map[string]string, len(constituents))
	for _, constituent := range constituents {
		industries[constituent.Company] = constituent.SubIndustry
	}
	return industries, nil
}

// TickersBySector returns the tickers of index members in the requested GICS
// sector. Sector comparison is case-insensitive. Returns ErrUnknownSector when
// nothing matches.
func (c *client) TickersBySector(ctx context.Context, sector string) ([]string, error) {
	constituents, err := c.Constituents(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(sector))
	tickers := []string{}
	for _, constituent := range constituents {
		if strings.ToLower(constituent.Sector) == want {
			tickers = append(tickers, constituent.Ticker)
		}
	}

	if len(tickers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSector, sector)
	}
	return tickers, nil
}

// parseConstituents extracts the first wikitable from the page. Column layout
// follows the source: Symbol, Security, GICS Sector, GICS Sub-Industry.
func parseConstituents(r io.Reader) ([]Constituent, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	table := findTable(doc)
	if table == nil {
		return nil, ErrNoTable
	}

	constituents := []Constituent{}
	for _, row := range descendants(table, "tr") {
		cells := childCells(row)
		if len(cells) < 4 {
			// header row or malformed row
			continue
		}
		constituent := Constituent{
			Ticker:      cells[0],
			Company:     cells[1],
			Sector:      cells[2],
			SubIndustry: cells[3],
		}
		if constituent.Ticker == "" {
			continue
		}
		constituents = append(constituents, constituent)
	}

	if len(constituents) == 0 {
		return nil, ErrNoTable
	}

	return constituents, nil
}

// findTable locates the first <table> tagged with the wikitable class
func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		for _, attr := range n.Attr {
			if attr.Key == "class" && strings.Contains(attr.Val, "wikitable") {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if table := findTable(child); table != nil {
			return table
		}
	}
	return nil
}

// descendants collects every descendant element with the given tag
func descendants(n *html.Node, tag string) []*html.Node {
	nodes := []*html.Node{}
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			nodes = append(nodes, node)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return nodes
}

// childCells returns the trimmed text of each <td> cell in a row
func childCells(row *html.Node) []string {
	cells := []string{}
	for cell := row.FirstChild; cell != nil; cell = cell.NextSibling {
		if cell.Type == html.ElementNode && cell.Data == "td" {
			cells = append(cells, strings.TrimSpace(nodeText(cell)))
		}
	}
	return cells
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	s := &strings.Builder{}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		s.WriteString(nodeText(child))
	}
	return s.String()
}
