// Copyright 2024-2025 vireodb
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

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/group"
	"github.com/vireodb/vireo/pkg/order"
	"github.com/vireodb/vireo/pkg/util"
	"github.com/vireodb/vireo/pkg/vector"
)

func runSort(cfg *util.Config) error {
	tbl, err := loadCsv(cfg)
	if err != nil {
		return err
	}
	if cfg.Debug.Explain {
		fmt.Println(tbl.Explain())
	}

	keyCols, orders, nullOrders, err := parseSortKeys(cfg.Keys, tbl.ColumnCount())
	if err != nil {
		return err
	}
	keys := make([]*vector.Vector, len(keyCols))
	for i, c := range keyCols {
		keys[i] = tbl.Column(c)
	}
	sorted, err := order.SortByKey(tbl, vector.NewTable(keys...), orders, nullOrders)
	if err != nil {
		return err
	}

	if cfg.Debug.PrintResult {
		printRows(sorted, cfg.Debug.MaxOutputRowCount)
	}
	util.Info("sort done",
		zap.Int("rows", sorted.Card()),
		zap.Int("keyColumns", len(keyCols)))
	return nil
}

func runGroup(cfg *util.Config, includeNulls bool) error {
	tbl, err := loadCsv(cfg)
	if err != nil {
		return err
	}
	if cfg.Debug.Explain {
		fmt.Println(tbl.Explain())
	}

	keyCols, err := parseGroupKeys(cfg.Keys, tbl.ColumnCount())
	if err != nil {
		return err
	}
	keys := make([]*vector.Vector, len(keyCols))
	for i, c := range keyCols {
		keys[i] = tbl.Column(c)
	}
	gs, err := group.NewGroupSorter(vector.NewTable(keys...), includeNulls)
	if err != nil {
		return err
	}

	if cfg.Debug.PrintResult {
		fmt.Printf("groups: %d\n", gs.NumGroups())
		fmt.Printf("offsets: %v\n", gs.GroupOffsets())
		uniq, err := gs.UniqueKeys()
		if err != nil {
			return err
		}
		printRows(uniq, cfg.Debug.MaxOutputRowCount)
	}
	util.Info("group done",
		zap.Int("rows", tbl.Card()),
		zap.Int("groups", gs.NumGroups()))
	return nil
}

func printRows(tbl *vector.Table, maxRows int) {
	n := tbl.Card()
	if maxRows > 0 && maxRows < n {
		n = maxRows
	}
	for row := 0; row < n; row++ {
		vals := tbl.Row(row)
		strs := make([]string, len(vals))
		for i, val := range vals {
			strs[i] = val.String()
		}
		fmt.Println(strings.Join(strs, ", "))
	}
}

// parseSortKeys parses "col[:asc|desc[:first|last]],..." into parallel key
// column indices, directions and null precedences.
func parseSortKeys(spec string, colCount int) ([]int, []order.OrderType, []order.OrderByNullType, error) {
	if spec == "" {
		return nil, nil, nil, common.InvalidArgument("empty key spec")
	}
	var cols []int
	var orders []order.OrderType
	var nullOrders []order.OrderByNullType
	for _, ent := range strings.Split(spec, ",") {
		parts := strings.Split(ent, ":")
		if len(parts) > 3 {
			return nil, nil, nil, common.InvalidArgument("bad key entry %s", ent)
		}
		col, err := parseColIndex(parts[0], colCount)
		if err != nil {
			return nil, nil, nil, err
		}
		ot := order.OT_DEFAULT
		if len(parts) > 1 {
			switch parts[1] {
			case "asc", "":
				ot = order.OT_ASC
			case "desc":
				ot = order.OT_DESC
			default:
				return nil, nil, nil, common.InvalidArgument("bad direction %s", parts[1])
			}
		}
		nt := order.OBNT_DEFAULT
		if len(parts) > 2 {
			switch parts[2] {
			case "first", "":
				nt = order.OBNT_NULLS_FIRST
			case "last":
				nt = order.OBNT_NULLS_LAST
			default:
				return nil, nil, nil, common.InvalidArgument("bad null precedence %s", parts[2])
			}
		}
		cols = append(cols, col)
		orders = append(orders, ot)
		nullOrders = append(nullOrders, nt)
	}
	return cols, orders, nullOrders, nil
}

func parseGroupKeys(spec string, colCount int) ([]int, error) {
	if spec == "" {
		return nil, common.InvalidArgument("empty key spec")
	}
	var cols []int
	for _, ent := range strings.Split(spec, ",") {
		col, err := parseColIndex(ent, colCount)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func parseColIndex(s string, colCount int) (int, error) {
	col, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, common.InvalidArgument("bad column index %s", s)
	}
	if col < 0 || col >= colCount {
		return 0, common.InvalidArgument(
			"column index %d out of range [0, %d)", col, colCount)
	}
	return col, nil
}

// loadCsv reads the whole file and infers a column type per field:
// bigint when every non-empty cell parses as an integer, double when every
// non-empty cell parses as a number, varchar otherwise. Empty cells are
// null.
func loadCsv(cfg *util.Config) (*vector.Table, error) {
	if cfg.Input.Path == "" {
		return nil, common.InvalidArgument("no input path")
	}
	fp, err := os.Open(cfg.Input.Path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	reader := csv.NewReader(fp)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if cfg.Input.Header && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return vector.NewTable(), nil
	}

	colCount := len(records[0])
	cols := make([]*vector.Vector, colCount)
	for c := 0; c < colCount; c++ {
		cols[c] = inferColumn(records, c)
	}
	return vector.NewTable(cols...), nil
}

func inferColumn(records [][]string, col int) *vector.Vector {
	n := len(records)
	valids := make([]bool, n)
	isInt, isNum := true, true
	for row, rec := range records {
		cell := rec[col]
		valids[row] = cell != ""
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			isNum = false
		}
	}

	switch {
	case isInt:
		vals := make([]int64, n)
		for row, rec := range records {
			if valids[row] {
				vals[row], _ = strconv.ParseInt(rec[col], 10, 64)
			}
		}
		return vector.NewFlat(common.BigintType(), vals, valids)
	case isNum:
		vals := make([]float64, n)
		for row, rec := range records {
			if valids[row] {
				vals[row], _ = strconv.ParseFloat(rec[col], 64)
			}
		}
		return vector.NewFlat(common.DoubleType(), vals, valids)
	default:
		vals := make([]string, n)
		for row, rec := range records {
			vals[row] = rec[col]
		}
		return vector.NewVarcharFlat(vals, valids)
	}
}
