package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/college-majors-api/internal/api/handler/router"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
)

func newTestRouter(routes ...[]router.Route) http.Handler {
	configs := make([]router.ConfigRouter, 0, len(routes))
	for _, group := range routes {
		configs = append(configs, router.WithRoutes(group...))
	}
	return router.New(configs...)
}

func doRequest(t *testing.T, handler http.Handler, method string, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleTable() *domain.EnrichedTable {
	return analyzing.Transform([]domain.MajorRecord{
		{Name: "Computer Science", StartingSalary: decimal.NewFromInt(55900), MidCareerSalary: decimal.NewFromInt(95000), Group: domain.GroupSTEM},
		{Name: "Psychology", StartingSalary: decimal.NewFromInt(35900), MidCareerSalary: decimal.NewFromInt(60400), Group: domain.GroupHASS},
	})
}
