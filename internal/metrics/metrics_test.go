package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder()

	r.Observe("patient.register", nil, 10*time.Millisecond)
	r.Observe("patient.register", nil, 5*time.Millisecond)
	r.Observe("bill.generate", errors.New("bad amount"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("patient.register", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("bill.generate", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.operations.WithLabelValues("bill.generate", "success")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.Observe("anything", nil, time.Second) })
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe("appointment.book", nil, time.Millisecond)

	path := filepath.Join(t.TempDir(), "hospital.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hospital_operations_total{operation="appointment.book",result="success"} 1`)
	assert.Contains(t, string(data), "hospital_operation_duration_seconds_bucket")
}
