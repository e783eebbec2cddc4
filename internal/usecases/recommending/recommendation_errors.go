package recommending

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de recomendações
var (
	ErrInvalidParams      = errors.New("invalid recommendation params")
	ErrTopKTooLarge       = errors.New("top_k exceeds the maximum allowed")
	ErrUnknownPersonality = errors.New("unknown personality type")
)

// RecommendationError é um erro com contexto adicional para recomendações
type RecommendationError struct {
	Err     error             // Erro base
	Code    string            // Código de erro para API
	Fields  map[string]string // Campos inválidos (quando aplicável)
	Details string            // Detalhes adicionais
}

// Error implementa a interface error
func (e *RecommendationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecommendationError) Unwrap() error {
	return e.Err
}

// NewRecommendationError cria um novo RecommendationError
func NewRecommendationError(err error, code string, details string) *RecommendationError {
	return &RecommendationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
