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

package dataframe

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Len returns the number of rows in the dataframe
func (df *DataFrame) Len() int {
	return len(df.Dates)
}

// ColCount returns the number of columns in the dataframe
func (df *DataFrame) ColCount() int {
	return len(df.ColNames)
}

// ColIndex returns the index of the specified column; -1 if column doesn't exist
func (df *DataFrame) ColIndex(colName string) int {
	for idx, val := range df.ColNames {
		if colName == val {
			return idx
		}
	}

	return -1
}

// Col returns the values of the named column; nil if the column doesn't exist
func (df *DataFrame) Col(colName string) []float64 {
	colIdx := df.ColIndex(colName)
	if colIdx == -1 {
		return nil
	}
	return df.Vals[colIdx]
}

// Copy creates a copy of the dataframe
func (df *DataFrame) Copy() *DataFrame {
	df2 := &DataFrame{
		ColNames: make([]string, len(df.ColNames)),
		Dates:    make([]time.Time, len(df.Dates)),
		Vals:     make([][]float64, len(df.Vals)),
	}

	copy(df2.ColNames, df.ColNames)
	copy(df2.Dates, df.Dates)

	for idx := range df2.Vals {
		df2.Vals[idx] = make([]float64, len(df.Vals[idx]))
		copy(df2.Vals[idx], df.Vals[idx])
	}

	return df2
}

// Insert a new column to the end of the dataframe
func (df *DataFrame) Insert(name string, col []float64) *DataFrame {
	df.ColNames = append(df.ColNames, name)
	df.Vals = append(df.Vals, col)
	return df
}

// Drop removes rows that contain the value `val` in any column; NaN drops NaN rows
func (df *DataFrame) Drop(val float64) *DataFrame {
	isNA := math.IsNaN(val)
	newVals := make([][]float64, len(df.Vals))
	newDates := make([]time.Time, 0, len(df.Dates))

	for idx, rowDate := range df.Dates {
		keep := true
		for _, col := range df.Vals {
			rowVal := col[idx]
			keep = keep && !(rowVal == val || (isNA && math.IsNaN(rowVal)))
			if !keep {
				break
			}
		}

		if keep {
			newDates = append(newDates, rowDate)
			for colIdx, col := range df.Vals {
				newVals[colIdx] = append(newVals[colIdx], col[idx])
			}
		}
	}

	df.Vals = newVals
	df.Dates = newDates
	return df
}

// Last returns a new dataframe with only the last row of the current dataframe
func (df *DataFrame) Last() *DataFrame {
	if df.Len() == 0 {
		return df
	}

	lastVals := make([][]float64, len(df.ColNames))
	lastRow := len(df.Dates) - 1
	for idx, col := range df.Vals {
		lastVals[idx] = []float64{col[lastRow]}
	}

	return &DataFrame{
		ColNames: df.ColNames,
		Dates:    []time.Time{df.Dates[lastRow]},
		Vals:     lastVals,
	}
}

// Start returns the first date of the dataframe
func (df *DataFrame) Start() time.Time {
	if len(df.Dates) == 0 {
		return time.Time{}
	}
	return df.Dates[0]
}

// End returns the last date of the dataframe
func (df *DataFrame) End() time.Time {
	if len(df.Dates) == 0 {
		return time.Time{}
	}
	return df.Dates[len(df.Dates)-1]
}

// Frequency returns a copy of the dataframe filtered to the requested frequency;
// a row is kept when it is the final trading row of its day / ISO week / month / year
func (df *DataFrame) Frequency(frequency Frequency) *DataFrame {
	newDates := make([]time.Time, 0, len(df.Dates))
	newVals := make([][]float64, len(df.ColNames))

	for idx, rowDate := range df.Dates {
		last := idx == len(df.Dates)-1
		if !last && !frequencyBoundary(rowDate, df.Dates[idx+1], frequency) {
			continue
		}
		newDates = append(newDates, rowDate)
		for colIdx := range newVals {
			newVals[colIdx] = append(newVals[colIdx], df.Vals[colIdx][idx])
		}
	}

	return &DataFrame{
		Dates:    newDates,
		ColNames: df.ColNames,
		Vals:     newVals,
	}
}

func frequencyBoundary(currDate time.Time, nextDate time.Time, frequency Frequency) bool {
	switch frequency {
	case Daily:
		return true
	case Weekly:
		currYear, currWeek := currDate.ISOWeek()
		nextYear, nextWeek := nextDate.ISOWeek()
		return currYear != nextYear || currWeek != nextWeek
	case Monthly:
		return currDate.Month() != nextDate.Month() || currDate.Year() != nextDate.Year()
	case Annually:
		return currDate.Year() != nextDate.Year()
	}
	return false
}

// Table prints an ASCII formatted table to a string
func (df *DataFrame) Table() string {
	if len(df.Dates) == 0 {
		return "<NO DATA>" // nothing to do as there is no data available in the dataframe
	}

	// construct table header
	tableCols := append([]string{"Date"}, df.ColNames...)

	// initialize table
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(tableCols)
	footer := make([]string, len(tableCols))
	footer[0] = "Num Rows"
	footer[1] = fmt.Sprintf("%d", df.Len())
	table.SetFooter(footer)
	table.SetBorder(false)

	for idx, rowDate := range df.Dates {
		row := make([]string, 0, len(df.Vals)+1)
		row = append(row, rowDate.Format("2006-01-02"))
		for _, col := range df.Vals {
			row = append(row, fmt.Sprintf("%.4f", col[idx]))
		}
		table.Append(row)
	}

	table.Render()
	return s.String()
}
