package bank

import (
	"errors"
)

// Required header names in the source workbook, matched exactly and
// case-sensitively. The columns may appear in any order.
const (
	questionHeader = "title2"
	answerHeader   = "description4"
	categoryHeader = "category"
)

var (
	ErrNoQuestionColumn = errors.New("question column \"title2\" not found in header row")
	ErrNoAnswerColumn   = errors.New("answer column \"description4\" not found in header row")
	ErrNoCategoryColumn = errors.New("category column \"category\" not found in header row")
)

// sheetColumns holds the resolved zero-based positions of the three required
// columns.
type sheetColumns struct {
	question int
	answer   int
	category int
}

// resolveColumns locates the three required columns in the header row. All
// three lookups run even when one fails, so a caller sees every missing
// column at once; the individual sentinels stay reachable via errors.Is.
func resolveColumns(header []string) (sheetColumns, error) {
	cols := sheetColumns{question: -1, answer: -1, category: -1}
	for i, name := range header {
		switch name {
		case questionHeader:
			if cols.question < 0 {
				cols.question = i
			}
		case answerHeader:
			if cols.answer < 0 {
				cols.answer = i
			}
		case categoryHeader:
			if cols.category < 0 {
				cols.category = i
			}
		}
	}

	var errs []error
	if cols.question < 0 {
		errs = append(errs, ErrNoQuestionColumn)
	}
	if cols.answer < 0 {
		errs = append(errs, ErrNoAnswerColumn)
	}
	if cols.category < 0 {
		errs = append(errs, ErrNoCategoryColumn)
	}
	if len(errs) > 0 {
		return cols, errors.Join(errs...)
	}
	return cols, nil
}

// cell reads one resolved column from a data row. Streamed rows omit
// trailing empty cells, so a short row reads as empty strings.
func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
