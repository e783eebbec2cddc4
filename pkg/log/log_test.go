package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	SetupTestLogger()

	var buffer bytes.Buffer
	logrus.SetOutput(&buffer)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
	})

	return &buffer
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buffer := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("recarga concluída")

	assert.Contains(t, buffer.String(), id)
	assert.Contains(t, buffer.String(), "recarga concluída")
}

func TestDevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buffer := captureOutput(t)

	L.WithFields(Fields{
		"snapshot_id": "AbC123",
		"user_agent":  "curl",
		"path":        "/v1/majors",
	}).Info("requisição")

	out := buffer.String()
	assert.Contains(t, out, "snapshot_id=AbC123")
	assert.Contains(t, out, "/v1/majors")
	assert.NotContains(t, out, "curl")
}
