package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/BrandishItemSearch/internal/logger"
	"github.com/osse101/BrandishItemSearch/internal/query"
)

// SearchRequest holds the query parameters of GET /items
type SearchRequest struct {
	Query    string `form:"q" validate:"max=100"`
	Category string `form:"category" validate:"max=100"`
	Sort     string `form:"sort" validate:"sortkey"`
	Order    string `form:"order" validate:"order"`
	Offset   int    `form:"offset" validate:"min=0"`
	Limit    int    `form:"limit" validate:"min=1,max=500"`
}

// State converts the request into a query state, applying sort defaults
func (r SearchRequest) State() query.State {
	state := query.DefaultState()
	state.Text = r.Query
	state.Category = r.Category
	if r.Sort != "" {
		state.Sort.Key = r.Sort
	}
	if r.Order != "" {
		state.Sort.Direction = r.Order
	}
	return state
}

// SuggestRequest holds the query parameters of GET /items/suggest
type SuggestRequest struct {
	Query string `form:"q" validate:"max=100"`
	Limit int    `form:"limit" validate:"min=1,max=50"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// queryReader collects integer parse failures while reading query parameters
type queryReader struct {
	r      *http.Request
	fields map[string]string
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{r: r, fields: make(map[string]string)}
}

// Raw returns the parameter exactly as sent
func (q *queryReader) Raw(name string) string {
	return q.r.URL.Query().Get(name)
}

func (q *queryReader) String(name string) string {
	return strings.TrimSpace(q.r.URL.Query().Get(name))
}

func (q *queryReader) Int(name string, defaultValue int) int {
	raw := q.String(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.fields[name] = ErrMsgNotAnInteger
		return defaultValue
	}
	return v
}

// validateQuery runs struct validation on a request built from query
// parameters. It writes a 400 response and returns false on failure.
func validateQuery(w http.ResponseWriter, r *http.Request, qr *queryReader, req interface{}) bool {
	fields := qr.fields
	if err := GetValidator().ValidateStruct(req); err != nil {
		for k, v := range FormatValidationError(err) {
			if _, exists := fields[k]; !exists {
				fields[k] = v
			}
		}
	}
	if len(fields) == 0 {
		return true
	}

	logger.FromContext(r.Context()).Debug(LogMsgInvalidQueryParams, "fields", fields)
	respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  ErrMsgInvalidRequestSummary,
		Fields: fields,
	})
	return false
}

// parseSearchRequest reads and validates GET /items parameters
func parseSearchRequest(w http.ResponseWriter, r *http.Request) (SearchRequest, bool) {
	qr := newQueryReader(r)
	req := SearchRequest{
		Query:    qr.Raw(ParamQuery),
		Category: qr.Raw(ParamCategory),
		Sort:     qr.String(ParamSort),
		Order:    strings.ToLower(qr.String(ParamOrder)),
		Offset:   qr.Int(ParamOffset, 0),
		Limit:    qr.Int(ParamLimit, DefaultPageLimit),
	}
	return req, validateQuery(w, r, qr, req)
}

// parseSuggestRequest reads and validates GET /items/suggest parameters
func parseSuggestRequest(w http.ResponseWriter, r *http.Request, defaultLimit int) (SuggestRequest, bool) {
	qr := newQueryReader(r)
	req := SuggestRequest{
		Query: qr.Raw(ParamQuery),
		Limit: qr.Int(ParamLimit, defaultLimit),
	}
	return req, validateQuery(w, r, qr, req)
}
