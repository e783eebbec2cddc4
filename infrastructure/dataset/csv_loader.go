// Package dataset lê o arquivo CSV de cursos e converte cada linha em domain.MajorRecord
package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/internal/domain"
)

// Colunas obrigatórias do cabeçalho
const (
	ColumnMajor     = "Undergraduate Major"
	ColumnStarting  = "Starting Median Salary"
	ColumnMidCareer = "Mid-Career Median Salary"
	ColumnGroup     = "Group"
)

// Colunas opcionais de satisfação. Ausentes, os campos do registro ficam nulos.
const (
	ColumnJobSatisfaction = "Job Satisfaction Score"
	ColumnWorkLifeBalance = "Work Life Balance"
	ColumnGrowthOutlook   = "Job Growth Outlook"
)

const maxScore = 10.0

var (
	requiredColumns = []string{ColumnMajor, ColumnStarting, ColumnMidCareer, ColumnGroup}
	optionalColumns = []string{ColumnJobSatisfaction, ColumnWorkLifeBalance, ColumnGrowthOutlook}
)

var columnNameReplacer = strings.NewReplacer("_", " ", "-", " ", "\ufeff", "")

type Options struct {
	// Strict interrompe a leitura na primeira linha inválida.
	// Sem ele as linhas inválidas são ignoradas e devolvidas em LoadResult.Skipped.
	Strict bool
}

type LoadResult struct {
	Records []domain.MajorRecord
	Skipped []*ParseError
}

// LoadFile abre o arquivo e delega para Parse
func LoadFile(path string, opts Options) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrFileNotFound, "dataset: %s", path)
		}
		return nil, errors.Wrapf(err, "dataset: opening %s", path)
	}
	defer file.Close()

	result, err := Parse(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: reading %s", path)
	}

	return result, nil
}

// Parse lê o CSV a partir do reader. Erros estruturais (cabeçalho) e falhas de
// leitura do reader são sempre fatais.
func Parse(r io.Reader, opts Options) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, newParseError(1, "", "", ErrEmptyInput)
	}
	if err != nil {
		return nil, readFailure(err, 1)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{
		Records: make([]domain.MajorRecord, 0),
		Skipped: make([]*ParseError, 0),
	}

	lastLine := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		var parseErr *ParseError
		if err != nil {
			var csvErr *csv.ParseError
			if !errors.As(err, &csvErr) {
				return nil, readFailure(err, lastLine+1)
			}
			parseErr = newParseError(csvErr.StartLine, "", "", csvErr.Err)
			lastLine = csvErr.Line
		} else {
			line, _ := reader.FieldPos(0)
			lastLine = line
			var record domain.MajorRecord
			record, parseErr = parseRow(row, line, len(header), columns)
			if parseErr == nil {
				result.Records = append(result.Records, record)
				continue
			}
		}

		if opts.Strict {
			return nil, parseErr
		}

		logrus.WithFields(logrus.Fields{
			"line":   parseErr.Line,
			"column": parseErr.Column,
			"value":  parseErr.Value,
		}).Warn("dataset: linha inválida ignorada")

		result.Skipped = append(result.Skipped, parseErr)
	}

	return result, nil
}

// mapColumns localiza as colunas no cabeçalho, ignorando caixa, espaços, "_" e "-"
func mapColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(requiredColumns)+len(optionalColumns))
	known := append(append([]string{}, requiredColumns...), optionalColumns...)

	for i, name := range header {
		name = normalizeColumnName(name)
		for _, column := range known {
			if strings.EqualFold(name, normalizeColumnName(column)) {
				positions[column] = i
			}
		}
	}

	for _, required := range requiredColumns {
		if _, exists := positions[required]; !exists {
			return nil, newParseError(1, required, strings.Join(header, ","), ErrMissingColumn)
		}
	}

	return positions, nil
}

func normalizeColumnName(name string) string {
	return strings.Join(strings.Fields(columnNameReplacer.Replace(name)), " ")
}

func parseRow(row []string, line int, expectedColumns int, columns map[string]int) (domain.MajorRecord, *ParseError) {
	if len(row) != expectedColumns {
		return domain.MajorRecord{}, newParseError(line, "", strings.Join(row, ","), ErrColumnCount)
	}

	name := strings.TrimSpace(row[columns[ColumnMajor]])
	if name == "" {
		return domain.MajorRecord{}, newParseError(line, ColumnMajor, name, ErrEmptyMajorName)
	}

	starting, parseErr := parseSalary(row[columns[ColumnStarting]], line, ColumnStarting)
	if parseErr != nil {
		return domain.MajorRecord{}, parseErr
	}

	midCareer, parseErr := parseSalary(row[columns[ColumnMidCareer]], line, ColumnMidCareer)
	if parseErr != nil {
		return domain.MajorRecord{}, parseErr
	}

	rawGroup := row[columns[ColumnGroup]]
	group, ok := domain.ParseGroup(rawGroup)
	if !ok {
		return domain.MajorRecord{}, newParseError(line, ColumnGroup, rawGroup, ErrUnknownGroup)
	}

	record := domain.MajorRecord{
		Name:            name,
		StartingSalary:  starting,
		MidCareerSalary: midCareer,
		Group:           group,
	}

	if position, exists := columns[ColumnJobSatisfaction]; exists {
		if record.JobSatisfaction, parseErr = parseScore(row[position], line, ColumnJobSatisfaction); parseErr != nil {
			return domain.MajorRecord{}, parseErr
		}
	}

	if position, exists := columns[ColumnWorkLifeBalance]; exists {
		if record.WorkLifeBalance, parseErr = parseScore(row[position], line, ColumnWorkLifeBalance); parseErr != nil {
			return domain.MajorRecord{}, parseErr
		}
	}

	if position, exists := columns[ColumnGrowthOutlook]; exists {
		rawOutlook := strings.TrimSpace(row[position])
		if rawOutlook != "" {
			outlook, ok := domain.ParseGrowthOutlook(rawOutlook)
			if !ok {
				return domain.MajorRecord{}, newParseError(line, ColumnGrowthOutlook, rawOutlook, ErrUnknownOutlook)
			}
			record.GrowthOutlook = &outlook
		}
	}

	return record, nil
}

// parseSalary aceita "55900", "55900.00" e "$55,900.00"
func parseSalary(raw string, line int, column string) (decimal.Decimal, *ParseError) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if cleaned == "" {
		return decimal.Zero, newParseError(line, column, raw, ErrInvalidSalary)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil || value.IsNegative() {
		return decimal.Zero, newParseError(line, column, raw, ErrInvalidSalary)
	}

	// Os rankings trabalham com float64; valores fora da faixa viram ±Inf
	if math.IsInf(value.InexactFloat64(), 0) {
		return decimal.Zero, newParseError(line, column, raw, ErrInvalidSalary)
	}

	return value, nil
}

// parseScore lê uma nota de 0 a 10. Célula vazia significa nota ausente.
func parseScore(raw string, line int, column string) (*float64, *ParseError) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || value < 0 || value > maxScore {
		return nil, newParseError(line, column, raw, ErrInvalidScore)
	}

	return &value, nil
}

// readFailure converte o erro do encoding/csv. Sintaxe inválida vira ParseError com
// a linha informada pelo csv; qualquer outra falha do reader é anotada com a linha
// que estava sendo lida.
func readFailure(err error, line int) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return newParseError(csvErr.StartLine, "", "", csvErr.Err)
	}
	return errors.Wrapf(err, "line %d", line)
}
