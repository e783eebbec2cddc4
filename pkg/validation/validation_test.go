package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Weight float64 `json:"weight" validate:"gte=0"`
}

type request struct {
	Inner  inner    `json:"inner"`
	Groups []string `json:"groups" validate:"dive,oneof=STEM Business HASS"`
	TopK   int      `json:"top_k" validate:"gte=0,lte=50"`
}

func TestStruct(t *testing.T) {
	t.Run("Struct válida", func(t *testing.T) {
		assert.Nil(t, Struct(request{Groups: []string{"STEM"}, TopK: 10}))
	})

	t.Run("Campos inválidos usam os nomes json", func(t *testing.T) {
		fields := Struct(request{
			Inner:  inner{Weight: -1},
			Groups: []string{"Arts"},
			TopK:   51,
		})

		require.Len(t, fields, 3)
		assert.Contains(t, fields, "inner.weight")
		assert.Contains(t, fields, "groups[0]")
		assert.Contains(t, fields, "top_k")
	})
}

func TestTranslateErrors_NonValidationError(t *testing.T) {
	fields := TranslateErrors(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"detail": "unexpected EOF"}, fields)
}
