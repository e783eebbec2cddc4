package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/dashboard"
	"github.com/vfg2006/college-majors-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboarder := mocks.NewMockDashboarder(ctrl)
	handler := newTestRouter(Dashboard(mockDashboarder))

	t.Run("Parâmetros repassados ao caso de uso", func(t *testing.T) {
		expected := domain.DashboardParams{
			Filters: domain.MajorFilters{Groups: []domain.Group{domain.GroupSTEM}},
			Compare: []string{"Computer Science", "Math"},
			TopN:    3,
		}

		mockDashboarder.EXPECT().
			GetView(expected).
			Return(dashboard.BuildView(sampleTable(), expected, dashboard.DefaultTopN), nil)

		rec := doRequest(t, handler, http.MethodGet, "/v1/dashboard?groups=STEM&compare=Computer%20Science,Math&top_n=3", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		kpis, ok := body["kpis"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 1.0, kpis["total_majors"])
		assert.Contains(t, body, "salary_comparison")
		assert.Contains(t, body, "risk_distribution")
	})

	t.Run("Top n não numérico", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/v1/dashboard?top_n=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeBody(t, rec)["code"])
	})

	t.Run("Top n fora do limite", func(t *testing.T) {
		mockDashboarder.EXPECT().
			GetView(gomock.Any()).
			Return(nil, &dashboard.ParamsError{Fields: map[string]string{"top_n": "top_n must be 50 or less"}})

		rec := doRequest(t, handler, http.MethodGet, "/v1/dashboard?top_n=99", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, apiErrors.ErrValidationFailed, body["code"])
		assert.Contains(t, body["details"], "top_n")
	})
}
