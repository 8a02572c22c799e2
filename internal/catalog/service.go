package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/usering-around/theory-test-exam/internal/bank"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrQuestionNotFound = errors.New("question not found")
)

// Service is a read-only view over a parsed question bank. It never mutates
// the bank; quiz-session concerns (shuffling, answer collection) live in
// whatever consumes this API.
type Service struct {
	bank *bank.Bank
}

func NewService(b *bank.Bank) *Service {
	return &Service{bank: b}
}

// ListFilter narrows ListQuestions output. Zero values mean "no filter".
type ListFilter struct {
	Category     string
	LicenseClass string
	Limit        int
	Offset       int
}

// CategoryCount is one category with its Hebrew label and question count.
type CategoryCount struct {
	Category bank.Category `json:"category"`
	Label    string        `json:"label"`
	Count    int           `json:"count"`
}

// ListQuestions returns a page of questions in bank order plus the total
// number of matches before paging.
func (s *Service) ListQuestions(f ListFilter) ([]bank.Question, int, error) {
	if f.Limit < 0 || f.Offset < 0 {
		return nil, 0, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidInput)
	}

	var wantCategory *bank.Category
	if v := strings.TrimSpace(f.Category); v != "" {
		c, err := bank.CategoryFromName(v)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		wantCategory = &c
	}
	var wantClass *bank.LicenseClass
	if v := strings.TrimSpace(f.LicenseClass); v != "" {
		l, err := bank.LicenseClassFromName(v)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		wantClass = &l
	}

	matched := make([]bank.Question, 0, len(s.bank.Questions))
	for _, q := range s.bank.Questions {
		if wantCategory != nil && q.Category != *wantCategory {
			continue
		}
		if wantClass != nil && !hasClass(q.LicenseClasses, *wantClass) {
			continue
		}
		matched = append(matched, q)
	}

	total := len(matched)
	if f.Offset >= total {
		return []bank.Question{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

// GetQuestion returns the first question with the given number, in bank
// order. The bank is not deduplicated, so first occurrence wins.
func (s *Service) GetQuestion(number int) (*bank.Question, error) {
	if number <= 0 {
		return nil, ErrInvalidInput
	}
	for i := range s.bank.Questions {
		if s.bank.Questions[i].Number == number {
			q := s.bank.Questions[i]
			return &q, nil
		}
	}
	return nil, ErrQuestionNotFound
}

// CategoryCounts returns every category with its question count, in
// declaration order, including categories with zero questions.
func (s *Service) CategoryCounts() []CategoryCount {
	counts := make(map[bank.Category]int, 4)
	for _, q := range s.bank.Questions {
		counts[q.Category]++
	}
	out := make([]CategoryCount, 0, 4)
	for _, c := range bank.Categories() {
		out = append(out, CategoryCount{Category: c, Label: c.Label(), Count: counts[c]})
	}
	return out
}

// RowErrors returns the rows that failed assembly during the parse.
func (s *Service) RowErrors() []bank.RowError {
	if s.bank.RowErrors == nil {
		return []bank.RowError{}
	}
	return s.bank.RowErrors
}

// QuestionTotal reports how many questions the bank holds.
func (s *Service) QuestionTotal() int {
	return len(s.bank.Questions)
}

// RowErrorTotal reports how many rows failed assembly during the parse.
func (s *Service) RowErrorTotal() int {
	return len(s.bank.RowErrors)
}

// QuestionsPerCategory returns question counts keyed by category name,
// with zero entries for empty categories.
func (s *Service) QuestionsPerCategory() map[string]int {
	out := make(map[string]int, 4)
	for _, c := range bank.Categories() {
		out[c.String()] = 0
	}
	for _, q := range s.bank.Questions {
		out[q.Category.String()]++
	}
	return out
}

func hasClass(classes []bank.LicenseClass, want bank.LicenseClass) bool {
	for _, c := range classes {
		if c == want {
			return true
		}
	}
	return false
}
