// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export writes query results to Excel workbooks. The "Recipes"
// sheet holds one row per visible recipe in result order; the "Query"
// sheet records how the result was produced.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"recipebox/internal/models"
	"recipebox/internal/query"
	"recipebox/internal/steps"
)

// Sheet names.
const (
	RecipesSheet = "Recipes"
	QuerySheet   = "Query"
)

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Header is the first row of the recipes sheet.
var Header = []any{"ID", "Title", "Difficulty", "Time (min)", "Quick", "Favorite", "Ingredients", "Steps"}

// Workbook builds the export workbook for res. The caller owns the
// returned file and must Close it.
func Workbook(res query.Result, q models.Query) (*excelize.File, error) {
	f := excelize.NewFile()

	// NewFile starts with Sheet1; rename it so index 0 is the recipes sheet.
	if err := f.SetSheetName("Sheet1", RecipesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRecipes(f, res.Visible, q.Favorites); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeQuery(f, res, q); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Write encodes the workbook for res to w and returns the bytes written.
func Write(w io.Writer, res query.Result, q models.Query) (int64, error) {
	f, err := Workbook(res, q)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := f.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write workbook: %w", err)
	}
	return n, nil
}

// Bytes returns the encoded workbook for res.
func Bytes(res query.Result, q models.Query) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Write(&buf, res, q); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeRecipes streams the recipe rows. StreamWriter keeps memory flat
// regardless of collection size.
func writeRecipes(f *excelize.File, recipes []models.Recipe, favs models.FavoriteSet) error {
	sw, err := f.NewStreamWriter(RecipesSheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	if err := sw.SetRow("A1", Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range recipes {
		r := &recipes[i]
		row := []any{
			r.ID,
			r.Title,
			string(r.Difficulty),
			r.Time,
			yesNo(r.IsQuick()),
			yesNo(favs.Has(r.ID)),
			strings.Join(r.Ingredients, "\n"),
			strings.TrimRight(steps.RenderText(r.Steps), "\n"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", r.ID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush recipes: %w", err)
	}
	return nil
}

// writeQuery records the query parameters and counts.
func writeQuery(f *excelize.File, res query.Result, q models.Query) error {
	if _, err := f.NewSheet(QuerySheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	rows := [][]any{
		{"Filter", string(q.Filter)},
		{"Sort", string(q.Sort)},
		{"Search", q.Search},
		{"Showing", res.Count()},
		{"Total", res.Total},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(QuerySheet, cell, &row); err != nil {
			return fmt.Errorf("write query row: %w", err)
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
