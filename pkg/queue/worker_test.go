package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/config"
)

// A pool with no backing services makes the first poll step blow up, which
// stands in for any unexpected crash inside a cycle. The loop must get an
// error back, not die.
func TestAnalysisWorkerPollSurvivesPanic(t *testing.T) {
	w := newAnalysisWorker("pod-analysis-0", &AnalysisPool{cfg: config.DefaultAnalysisConfig()})

	err := w.safePoll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
}

func TestDispatchWorkerPollSurvivesPanic(t *testing.T) {
	w := newDispatchWorker("pod-dispatch-0", &DispatchPool{cfg: config.DefaultDispatchConfig()})

	err := w.safePoll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
}

func TestWorkerRestartDelayGrowsAndCaps(t *testing.T) {
	first := workerRestartDelay(1)
	assert.GreaterOrEqual(t, first, 750*time.Millisecond)
	assert.LessOrEqual(t, first, 1250*time.Millisecond)

	capped := workerRestartDelay(20)
	assert.LessOrEqual(t, capped, time.Duration(float64(30*time.Second)*1.25))
}
