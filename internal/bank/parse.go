package bank

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// questionNumberWidth is the fixed width of the numeric identifier prefix
// embedded at the start of every question text.
const questionNumberWidth = 4

// Parse recovers the question bank from an xlsx workbook held in memory.
func Parse(data []byte) (*Bank, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseWorkbook(f)
}

// ParseFile recovers the question bank from an xlsx file on disk.
func ParseFile(path string) (*Bank, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseWorkbook(f)
}

// ParseWorkbook streams the first worksheet of an open workbook into a Bank.
// The three required columns are resolved from the header row in any order;
// a missing column aborts the parse with its sentinel error. Data rows that
// fail assembly are recorded in Bank.RowErrors and the parse continues, so
// one malformed row never costs the whole bank.
func ParseWorkbook(f *excelize.File) (*Bank, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no worksheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %s: %w", sheets[0], err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Error(); err != nil {
			return nil, fmt.Errorf("read header row: %w", err)
		}
		return nil, errors.New("worksheet has no header row")
	}
	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	bank := &Bank{Questions: make([]Question, 0, 64)}
	rowNo := 1
	for rows.Next() {
		rowNo++
		cells, err := rows.Columns()
		if err != nil {
			bank.RowErrors = append(bank.RowErrors, RowError{Row: rowNo, Error: fmt.Sprintf("read row: %v", err)})
			continue
		}
		q, err := assembleQuestion(cells, cols)
		if err != nil {
			bank.RowErrors = append(bank.RowErrors, RowError{Row: rowNo, Error: err.Error()})
			continue
		}
		bank.Questions = append(bank.Questions, *q)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return bank, nil
}

// assembleQuestion builds one record from a data row using the resolved
// column positions.
func assembleQuestion(cells []string, cols sheetColumns) (*Question, error) {
	text := cell(cells, cols.question)
	markup := cell(cells, cols.answer)
	label := cell(cells, cols.category)

	category, err := CategoryFromLabel(label)
	if err != nil {
		return nil, err
	}
	number, err := questionNumber(text)
	if err != nil {
		return nil, err
	}

	answers, classes, imageURL := decodeAnswerMarkup(markup)
	return &Question{
		Number:         number,
		Text:           text,
		Answers:        answers,
		Category:       category,
		LicenseClasses: classes,
		ImageURL:       imageURL,
	}, nil
}

func questionNumber(text string) (int, error) {
	if len(text) < questionNumberWidth {
		return 0, fmt.Errorf("question text %q is shorter than the %d-digit number prefix", text, questionNumberWidth)
	}
	prefix := text[:questionNumberWidth]
	for _, c := range []byte(prefix) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("question number prefix %q is not numeric", prefix)
		}
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("question number prefix %q is not numeric", prefix)
	}
	return n, nil
}
