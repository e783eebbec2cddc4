package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/pkg/utils"
)

// parseMajorFilters lê os filtros de cursos da query string
func parseMajorFilters(query url.Values) (domain.MajorFilters, error) {
	var filters domain.MajorFilters

	for _, value := range utils.SplitList(query.Get("groups")) {
		group, ok := domain.ParseGroup(value)
		if !ok {
			return filters, fmt.Errorf("grupo inválido: %s", value)
		}
		filters.Groups = append(filters.Groups, group)
	}

	for _, value := range utils.SplitList(query.Get("risk")) {
		level, ok := domain.ParseRiskLevel(value)
		if !ok {
			return filters, fmt.Errorf("nível de risco inválido: %s", value)
		}
		filters.RiskLevels = append(filters.RiskLevels, level)
	}

	minStarting, err := parseDecimalParam(query, "min_starting")
	if err != nil {
		return filters, err
	}
	filters.MinStarting = minStarting

	maxStarting, err := parseDecimalParam(query, "max_starting")
	if err != nil {
		return filters, err
	}
	filters.MaxStarting = maxStarting

	if minStarting != nil && maxStarting != nil && minStarting.GreaterThan(*maxStarting) {
		return filters, errors.New("min_starting maior que max_starting")
	}

	filters.Names = utils.SplitList(query.Get("names"))

	return filters, nil
}

func parseDecimalParam(query url.Values, key string) (*decimal.Decimal, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return nil, fmt.Errorf("%s deve ser um número não negativo", key)
	}

	return &value, nil
}

func parseIntParam(query url.Values, key string) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser um inteiro", key)
	}

	return value, nil
}
