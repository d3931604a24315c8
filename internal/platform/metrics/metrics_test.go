package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCareEventsRecorded_Increments(t *testing.T) {
	before := testutil.ToFloat64(CareEventsRecorded.WithLabelValues("weight"))
	CareEventsRecorded.WithLabelValues("weight").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(CareEventsRecorded.WithLabelValues("weight")))
}
