package dataset

import (
	"errors"
	"fmt"
)

// Erros específicos da leitura do arquivo de entrada
var (
	ErrFileNotFound = errors.New("input file not found")
	ErrParse        = errors.New("malformed input row")

	ErrEmptyInput     = errors.New("input has no header row")
	ErrMissingColumn  = errors.New("missing required column")
	ErrColumnCount    = errors.New("wrong number of columns")
	ErrInvalidSalary  = errors.New("salary is not a non-negative number")
	ErrUnknownGroup   = errors.New("unrecognized group")
	ErrEmptyMajorName = errors.New("major name is empty")
	ErrInvalidScore   = errors.New("score is not a number between 0 and 10")
	ErrUnknownOutlook = errors.New("unrecognized job growth outlook")
)

// ParseError identifica a linha e a coluna que impediram a leitura
type ParseError struct {
	Line   int    // Linha do arquivo, começando em 1 (o cabeçalho é a linha 1)
	Column string // Coluna envolvida (quando aplicável)
	Value  string // Valor bruto encontrado
	Err    error  // Erro base
}

// Error implementa a interface error
func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d: column %q: %s: %q", e.Line, e.Column, e.Err.Error(), e.Value)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrParse) para qualquer ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func newParseError(line int, column string, value string, err error) *ParseError {
	return &ParseError{
		Line:   line,
		Column: column,
		Value:  value,
		Err:    err,
	}
}
