package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent/services/logger"
)

type fakeCompleter struct {
	calls int
	n     int
	err   error
}

func (f *fakeCompleter) CompleteElapsed(ctx context.Context) (int, error) {
	f.calls++
	return f.n, f.err
}

func Test_RunCompletion(t *testing.T) {
	log := logger.NewDefaultLogger(logger.ErrorLevel)

	ok := &fakeCompleter{n: 2}
	RunCompletion(context.Background(), ok, log)
	assert.Equal(t, 1, ok.calls)

	failing := &fakeCompleter{err: errors.New("db down")}
	RunCompletion(context.Background(), failing, log)
	assert.Equal(t, 1, failing.calls)
}

func Test_InitCronJobs(t *testing.T) {
	log := logger.NewDefaultLogger(logger.ErrorLevel)

	c := cron.New()
	require.NoError(t, InitCronJobs(c, "", &fakeCompleter{}, log))
	assert.Len(t, c.Entries(), 1)
	c.Stop()

	assert.Error(t, InitCronJobs(cron.New(), "not a schedule", &fakeCompleter{}, log))
}
