package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/internal/api/handler/router"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/internal/usecases/dashboard"
	"github.com/vfg2006/college-majors-api/internal/usecases/recommending"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(majorRepo repository.MajorRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(majorRepo),
		},
	}
}

func Majors(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/majors",
			Method:  http.MethodGet,
			Handler: ListMajors(service),
		},
		{
			Path:    "/v1/majors/groups",
			Method:  http.MethodGet,
			Handler: GetGroupSummaries(service),
		},
		{
			Path:    "/v1/majors/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Recommendations(service recommending.Recommender) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/recommendations",
			Method:  http.MethodPost,
			Handler: Recommend(service),
		},
		{
			Path:    "/v1/recommendations/personalities",
			Method:  http.MethodGet,
			Handler: ListPersonalities(service),
		},
	}
}

func CronJobs(reloader DatasetReloader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(reloader),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(reloader),
		},
	}
}
