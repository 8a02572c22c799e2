package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubBankStats struct{}

func (stubBankStats) QuestionTotal() int { return 12 }
func (stubBankStats) RowErrorTotal() int { return 2 }
func (stubBankStats) QuestionsPerCategory() map[string]int {
	return map[string]int{"safety": 5, "road_signs": 7}
}

func TestNormalizedPath(t *testing.T) {
	got := normalizedPath("/api/v1/questions/862")
	want := "/api/v1/questions/{number}"
	if got != want {
		t.Fatalf("normalizedPath mismatch got=%s want=%s", got, want)
	}
}

func TestExtractQuestionNumber(t *testing.T) {
	if n := extractQuestionNumber("/api/v1/questions/456"); n != 456 {
		t.Fatalf("expected 456, got %d", n)
	}
	if n := extractQuestionNumber("/api/v1/categories"); n != 0 {
		t.Fatalf("expected 0 for non-question path, got %d", n)
	}
}

func TestMetricsHandlerReportsBankGauges(t *testing.T) {
	c := NewCollector(stubBankStats{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.MetricsHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"theoryexam_bank_questions_total 12",
		"theoryexam_bank_row_errors_total 2",
		`theoryexam_bank_questions{category="road_signs"} 7`,
		`theoryexam_bank_questions{category="safety"} 5`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}
