package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type key struct {
	Method string
	Path   string
	Status int
}

type stat struct {
	Count     int64
	LatencyMS float64
}

// BankStats is the slice of the catalog the metrics endpoint reports on.
type BankStats interface {
	QuestionTotal() int
	RowErrorTotal() int
	QuestionsPerCategory() map[string]int
}

type Collector struct {
	bank BankStats

	mu           sync.RWMutex
	requestStats map[key]stat
	startedAt    time.Time
}

func NewCollector(bank BankStats) *Collector {
	return &Collector{
		bank:         bank,
		requestStats: make(map[key]stat),
		startedAt:    time.Now(),
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		latencyMS := float64(time.Since(start).Microseconds()) / 1000.0
		path := normalizedPath(r.URL.Path)

		c.mu.Lock()
		k := key{Method: r.Method, Path: path, Status: rec.status}
		s := c.requestStats[k]
		s.Count++
		s.LatencyMS += latencyMS
		c.requestStats[k] = s
		c.mu.Unlock()

		entry := map[string]any{
			"request_id": middleware.GetReqID(r.Context()),
			"question":   extractQuestionNumber(r.URL.Path),
			"method":     r.Method,
			"path":       path,
			"status":     rec.status,
			"latency_ms": latencyMS,
			"remote_ip":  strings.TrimSpace(r.RemoteAddr),
		}
		b, _ := json.Marshal(entry)
		log.Printf("%s", string(b))
	})
}

func (c *Collector) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	c.mu.RLock()
	statsCopy := make(map[key]stat, len(c.requestStats))
	for k, v := range c.requestStats {
		statsCopy[k] = v
	}
	startedAt := c.startedAt
	c.mu.RUnlock()

	keys := make([]key, 0, len(statsCopy))
	for k := range statsCopy {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Method != keys[j].Method {
			return keys[i].Method < keys[j].Method
		}
		if keys[i].Path != keys[j].Path {
			return keys[i].Path < keys[j].Path
		}
		return keys[i].Status < keys[j].Status
	})

	var sb strings.Builder
	sb.WriteString("# theoryexam observability metrics\n")
	sb.WriteString("# TYPE theoryexam_uptime_seconds gauge\n")
	sb.WriteString(fmt.Sprintf("theoryexam_uptime_seconds %.0f\n", time.Since(startedAt).Seconds()))

	sb.WriteString("# TYPE theoryexam_http_requests_total counter\n")
	sb.WriteString("# TYPE theoryexam_http_request_latency_ms_sum counter\n")
	sb.WriteString("# TYPE theoryexam_http_request_latency_ms_avg gauge\n")
	for _, k := range keys {
		s := statsCopy[k]
		labels := fmt.Sprintf("method=\"%s\",path=\"%s\",status=\"%d\"", k.Method, k.Path, k.Status)
		sb.WriteString(fmt.Sprintf("theoryexam_http_requests_total{%s} %d\n", labels, s.Count))
		sb.WriteString(fmt.Sprintf("theoryexam_http_request_latency_ms_sum{%s} %.3f\n", labels, s.LatencyMS))
		avg := 0.0
		if s.Count > 0 {
			avg = s.LatencyMS / float64(s.Count)
		}
		sb.WriteString(fmt.Sprintf("theoryexam_http_request_latency_ms_avg{%s} %.3f\n", labels, avg))
	}

	if c.bank != nil {
		sb.WriteString("# TYPE theoryexam_bank_questions_total gauge\n")
		sb.WriteString(fmt.Sprintf("theoryexam_bank_questions_total %d\n", c.bank.QuestionTotal()))
		sb.WriteString("# TYPE theoryexam_bank_row_errors_total gauge\n")
		sb.WriteString(fmt.Sprintf("theoryexam_bank_row_errors_total %d\n", c.bank.RowErrorTotal()))

		perCategory := c.bank.QuestionsPerCategory()
		categories := make([]string, 0, len(perCategory))
		for name := range perCategory {
			categories = append(categories, name)
		}
		sort.Strings(categories)
		sb.WriteString("# TYPE theoryexam_bank_questions gauge\n")
		for _, name := range categories {
			sb.WriteString(fmt.Sprintf("theoryexam_bank_questions{category=\"%s\"} %d\n", name, perCategory[name]))
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sb.String()))
}

func normalizedPath(path string) string {
	if path == "" {
		return "/"
	}
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = "{number}"
		}
	}
	return strings.Join(parts, "/")
}

func extractQuestionNumber(path string) int64 {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "questions" {
			if n, err := strconv.ParseInt(parts[i+1], 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}
