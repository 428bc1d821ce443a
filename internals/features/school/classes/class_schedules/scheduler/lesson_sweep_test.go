package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartLessonSweepCron_Schedule(t *testing.T) {
	_, err := StartLessonSweepCron(nil, "bukan cron")
	assert.Error(t, err)

	c, err := StartLessonSweepCron(nil, "")
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
