package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/usering-around/theory-test-exam/internal/app/apiresp"
	"github.com/usering-around/theory-test-exam/internal/bank"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc catalogService
}

type catalogService interface {
	ListQuestions(f ListFilter) ([]bank.Question, int, error)
	GetQuestion(number int) (*bank.Question, error)
	CategoryCounts() []CategoryCount
	RowErrors() []bank.RowError
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type questionListResponse struct {
	Items []bank.Question `json:"items"`
	Total int             `json:"total"`
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := queryInt(query.Get("limit"), 0)
	if err != nil {
		apiresp.WriteError(w, r, http.StatusBadRequest, "limit must be a number")
		return
	}
	offset, err := queryInt(query.Get("offset"), 0)
	if err != nil {
		apiresp.WriteError(w, r, http.StatusBadRequest, "offset must be a number")
		return
	}

	items, total, err := h.svc.ListQuestions(ListFilter{
		Category:     query.Get("category"),
		LicenseClass: query.Get("license_class"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			apiresp.WriteError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		apiresp.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	apiresp.WriteOK(w, r, http.StatusOK, questionListResponse{Items: items, Total: total})
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number <= 0 {
		apiresp.WriteError(w, r, http.StatusBadRequest, "invalid question number")
		return
	}

	item, err := h.svc.GetQuestion(number)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuestionNotFound):
			apiresp.WriteError(w, r, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInvalidInput):
			apiresp.WriteError(w, r, http.StatusBadRequest, err.Error())
		default:
			apiresp.WriteError(w, r, http.StatusInternalServerError, "internal error")
		}
		return
	}

	apiresp.WriteOK(w, r, http.StatusOK, item)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	apiresp.WriteOK(w, r, http.StatusOK, h.svc.CategoryCounts())
}

func (h *Handler) ListRowErrors(w http.ResponseWriter, r *http.Request) {
	apiresp.WriteOK(w, r, http.StatusOK, h.svc.RowErrors())
}

func queryInt(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
