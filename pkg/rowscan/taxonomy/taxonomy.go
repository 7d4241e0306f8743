// Package taxonomy flattens a two-level coding taxonomy workbook into a
// dictionary of level-2 codes and exports it as Parquet and JSON Lines.
//
// The workbook holds a "Level 1" sheet mapping single-letter codes to names
// and one sheet per letter listing the level-2 codes under it.
package taxonomy

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/parser"
	"github.com/xuri/excelize/v2"
)

// Level1Sheet is the sheet holding level-1 codes and names.
const Level1Sheet = "Level 1"

// ErrMissingLevel1 indicates the workbook has no Level 1 sheet.
var ErrMissingLevel1 = errors.New("no 'Level 1' sheet found in the workbook")

// ErrNoLetterSheets indicates the workbook has no single-letter sheets.
var ErrNoLetterSheets = errors.New("no single-letter sheets found in the workbook")

var whitespaceRun = regexp.MustCompile(`\s+`)

// letterCode returns the single letter s consists of, if any.
func letterCode(s string) (string, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || !unicode.IsLetter(r) {
		return "", false
	}
	return s, true
}

// cell returns the value at col of row, or "" past its end.
func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// Level1Map maps level-1 codes to names. rows are normalized sheet rows
// whose first row is the header; only rows with a single-letter code in
// the first column are kept.
func Level1Map(rows [][]string) map[string]string {
	l1 := make(map[string]string)
	if len(rows) == 0 {
		return l1
	}

	for _, row := range rows[1:] {
		if code, ok := letterCode(cell(row, 0)); ok {
			l1[code] = cell(row, 1)
		}
	}
	return l1
}

// TidyLetterSheet extracts the level-2 entries of one letter sheet.
// It returns nil when the sheet name is not a single letter. HepaID, Level,
// Code, Name and Path are filled in by BuildDictionary.
func TidyLetterSheet(sheetName string, rows [][]string, l1 map[string]string) []models.TaxonomyEntry {
	parent, ok := letterCode(strings.TrimSpace(sheetName))
	if !ok || len(rows) == 0 {
		return nil
	}

	codePattern := regexp.MustCompile(`^` + regexp.QuoteMeta(parent) + `[A-Z]{1,3}`)

	width := len(rows[0])
	var l1Name *string
	if name, ok := l1[parent]; ok {
		l1Name = &name
	}

	var entries []models.TaxonomyEntry
	for _, row := range rows[1:] {
		code := cell(row, 0)
		if !codePattern.MatchString(code) {
			continue
		}

		var comments []string
		for col := 2; col < max(width, len(row)); col++ {
			if v := cell(row, col); v != "" {
				comments = append(comments, v)
			}
		}

		entry := models.TaxonomyEntry{
			Level1Code: parent,
			Level1Name: l1Name,
			Level2Code: code,
			Level2Name: cell(row, 1),
		}
		if len(comments) > 0 {
			joined := strings.Join(comments, " | ")
			entry.Comments = &joined
		}
		entries = append(entries, entry)
	}

	return entries
}

// BuildDictionary reads the taxonomy workbook at path and returns its
// level-2 entries sorted by level-1 then level-2 code, numbered from 1.
func BuildDictionary(path string) ([]models.TaxonomyEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if !slices.Contains(sheets, Level1Sheet) {
		return nil, ErrMissingLevel1
	}

	l1Rows, err := parser.ReadRows(f, Level1Sheet)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", Level1Sheet, err)
	}
	l1 := Level1Map(l1Rows)

	var entries []models.TaxonomyEntry
	letterSheets := 0
	for _, name := range sheets {
		if name == Level1Sheet {
			continue
		}
		if _, ok := letterCode(name); !ok {
			continue
		}
		letterSheets++

		rows, err := parser.ReadRows(f, name)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", name, err)
		}
		entries = append(entries, TidyLetterSheet(name, rows, l1)...)
	}
	if letterSheets == 0 {
		return nil, ErrNoLetterSheets
	}

	for i := range entries {
		e := &entries[i]
		e.Level = 2
		e.Code = e.Level2Code
		e.Name = e.Level2Name
		e.Path = buildPath(*e)
	}

	slices.SortStableFunc(entries, func(a, b models.TaxonomyEntry) int {
		return cmp.Or(
			cmp.Compare(a.Level1Code, b.Level1Code),
			cmp.Compare(a.Level2Code, b.Level2Code),
		)
	})
	for i := range entries {
		entries[i].HepaID = int64(i + 1)
	}

	return entries, nil
}

func buildPath(e models.TaxonomyEntry) string {
	l1Name := ""
	if e.Level1Name != nil {
		l1Name = strings.TrimSpace(*e.Level1Name)
	}
	path := e.Level1Code + " " + l1Name + " > " + e.Level2Code + " " + e.Level2Name
	return whitespaceRun.ReplaceAllString(path, " ")
}
