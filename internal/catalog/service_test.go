package catalog

import (
	"errors"
	"testing"

	"github.com/usering-around/theory-test-exam/internal/bank"
)

func testBank() *bank.Bank {
	return &bank.Bank{
		Questions: []bank.Question{
			{
				Number:         100,
				Text:           "0100 שאלה ראשונה",
				Answers:        bank.AnswerSet{Choices: []string{"a", "b", "c", "d"}, Correct: 1, MarkerFound: true},
				Category:       bank.CategorySafety,
				LicenseClasses: []bank.LicenseClass{bank.LicenseA, bank.LicenseB},
			},
			{
				Number:         200,
				Text:           "0200 שאלה שנייה",
				Answers:        bank.AnswerSet{Choices: []string{"a", "b", "c", "d"}},
				Category:       bank.CategoryRoadSigns,
				LicenseClasses: []bank.LicenseClass{bank.LicenseB},
				ImageURL:       "https://example.com/sign.jpg",
			},
			{
				Number:         300,
				Text:           "0300 שאלה שלישית",
				Answers:        bank.AnswerSet{Choices: []string{"a", "b", "c", "d"}, Correct: 3, MarkerFound: true},
				Category:       bank.CategorySafety,
				LicenseClasses: []bank.LicenseClass{bank.LicenseC, bank.LicenseD},
			},
		},
		RowErrors: []bank.RowError{
			{Row: 5, Error: `unknown category label "X"`},
		},
	}
}

func TestListQuestionsNoFilter(t *testing.T) {
	svc := NewService(testBank())
	items, total, err := svc.ListQuestions(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("expected 3 questions, got total=%d len=%d", total, len(items))
	}
	if items[0].Number != 100 || items[2].Number != 300 {
		t.Fatalf("bank order not preserved: %d, %d", items[0].Number, items[2].Number)
	}
}

func TestListQuestionsFilters(t *testing.T) {
	svc := NewService(testBank())

	tests := []struct {
		name   string
		filter ListFilter
		want   []int
	}{
		{name: "category", filter: ListFilter{Category: "safety"}, want: []int{100, 300}},
		{name: "license class", filter: ListFilter{LicenseClass: "B"}, want: []int{100, 200}},
		{name: "category and class", filter: ListFilter{Category: "safety", LicenseClass: "D"}, want: []int{300}},
		{name: "no match", filter: ListFilter{Category: "car_knowledge"}, want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, total, err := svc.ListQuestions(tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if total != len(tc.want) {
				t.Fatalf("expected total %d, got %d", len(tc.want), total)
			}
			for i, n := range tc.want {
				if items[i].Number != n {
					t.Fatalf("expected question %d at index %d, got %d", n, i, items[i].Number)
				}
			}
		})
	}
}

func TestListQuestionsPaging(t *testing.T) {
	svc := NewService(testBank())

	items, total, err := svc.ListQuestions(ListFilter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(items) != 1 || items[0].Number != 200 {
		t.Fatalf("unexpected page %+v", items)
	}

	items, total, err = svc.ListQuestions(ListFilter{Offset: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(items) != 0 {
		t.Fatalf("expected empty page with total 3, got total=%d len=%d", total, len(items))
	}
}

func TestListQuestionsInvalidFilter(t *testing.T) {
	svc := NewService(testBank())

	if _, _, err := svc.ListQuestions(ListFilter{Category: "nope"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, _, err := svc.ListQuestions(ListFilter{LicenseClass: "E"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, _, err := svc.ListQuestions(ListFilter{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetQuestion(t *testing.T) {
	svc := NewService(testBank())

	q, err := svc.GetQuestion(200)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.Number != 200 || q.ImageURL == "" {
		t.Fatalf("unexpected question %+v", q)
	}

	if _, err := svc.GetQuestion(999); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if _, err := svc.GetQuestion(0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCategoryCounts(t *testing.T) {
	svc := NewService(testBank())

	counts := svc.CategoryCounts()
	if len(counts) != 4 {
		t.Fatalf("expected all 4 categories, got %d", len(counts))
	}
	byCategory := make(map[bank.Category]CategoryCount, len(counts))
	for _, c := range counts {
		byCategory[c.Category] = c
	}
	if byCategory[bank.CategorySafety].Count != 2 {
		t.Fatalf("expected 2 safety questions, got %d", byCategory[bank.CategorySafety].Count)
	}
	if byCategory[bank.CategoryCarKnowledge].Count != 0 {
		t.Fatalf("expected 0 car knowledge questions, got %d", byCategory[bank.CategoryCarKnowledge].Count)
	}
	if byCategory[bank.CategorySafety].Label != bank.CategorySafety.Label() {
		t.Fatalf("label mismatch: %q", byCategory[bank.CategorySafety].Label)
	}
}

func TestBankStats(t *testing.T) {
	svc := NewService(testBank())
	if svc.QuestionTotal() != 3 {
		t.Fatalf("expected 3 questions, got %d", svc.QuestionTotal())
	}
	if svc.RowErrorTotal() != 1 {
		t.Fatalf("expected 1 row error, got %d", svc.RowErrorTotal())
	}
	per := svc.QuestionsPerCategory()
	if per["safety"] != 2 || per["road_signs"] != 1 || per["traffic_laws"] != 0 {
		t.Fatalf("unexpected per-category counts %v", per)
	}
}
