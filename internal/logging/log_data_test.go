package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging(logrus.DebugLevel)
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func TestLogData_Context(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(logrus.New())
	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
}

func TestLogData_LogIncludesDataAndTimings(t *testing.T) {
	logger, buf := newBufferLogger()
	logData := NewLogData(logger)

	logData.AddData("transactionCount", 3)
	logData.AddTiming("listMs")()
	logData.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.EqualValues(t, 3, line["transactionCount"])
	assert.Contains(t, line, "listMs")
}

func TestLoggingWrapper_FreshLogDataPerRequest(t *testing.T) {
	logger, buf := newBufferLogger()
	var seen []*LogData
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		seen = append(seen, logData)
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	assert.Contains(t, buf.String(), "Handler.Test.Complete")
}
