package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{true, false} {
		logger, err := NewLogger(verbose)
		require.NoError(t, err)
		require.NotNil(t, logger)
	}
}

func TestRequestFields_OmitsEmptyValues(t *testing.T) {
	fields := RequestFields("req-1", "", "/search")

	require.Len(t, fields, 2)
	assert.Equal(t, FieldRequestID, fields[0].Key)
	assert.Equal(t, FieldPath, fields[1].Key)
}

func TestWithFields_NilLoggerIsSafe(t *testing.T) {
	logger := WithFields(nil, zap.String("k", "v"))
	require.NotNil(t, logger)
	logger.Info("no panic")
}
