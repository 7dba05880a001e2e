package batch_test

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/go-smlfmt/smlfmt/internal/batch"
	"github.com/stretchr/testify/require"
)

func TestRunPreservesOrder(t *testing.T) {
	jobs := make([]batch.Job, 20)
	for i := range jobs {
		i := i
		jobs[i] = batch.Job{
			Path: fmt.Sprintf("file%d.sml", i),
			Run: func() (string, error) {
				return fmt.Sprintf("out%d", i), nil
			},
		}
	}

	outcomes := batch.Run(jobs, 4)
	require.Len(t, outcomes, 20)
	for i, o := range outcomes {
		require.Equal(t, fmt.Sprintf("file%d.sml", i), o.Path)
		require.Equal(t, fmt.Sprintf("out%d", i), o.Output)
		require.NoError(t, o.Err)
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	wantErr := errors.New("boom")
	jobs := []batch.Job{
		{Path: "a.sml", Run: func() (string, error) { return "ok", nil }},
		{Path: "b.sml", Run: func() (string, error) { return "", wantErr }},
	}
	outcomes := batch.Run(jobs, 2)
	require.NoError(t, outcomes[0].Err)
	require.ErrorIs(t, outcomes[1].Err, wantErr)
}

func TestRunClampsWorkerCountToJobCount(t *testing.T) {
	var concurrent int32
	var maxSeen int32
	jobs := make([]batch.Job, 3)
	for i := range jobs {
		jobs[i] = batch.Job{
			Path: "x",
			Run: func() (string, error) {
				n := atomic.AddInt32(&concurrent, 1)
				for {
					old := atomic.LoadInt32(&maxSeen)
					if n <= old || atomic.CompareAndSwapInt32(&maxSeen, old, n) {
						break
					}
				}
				atomic.AddInt32(&concurrent, -1)
				return "", nil
			},
		}
	}
	batch.Run(jobs, 100)
	require.LessOrEqual(t, atomic.LoadInt32(&maxSeen), int32(3))
}

func TestRunWithZeroWorkersDefaultsToOne(t *testing.T) {
	jobs := []batch.Job{
		{Path: "a.sml", Run: func() (string, error) { return "a", nil }},
	}
	outcomes := batch.Run(jobs, 0)
	require.Len(t, outcomes, 1)
	require.Equal(t, "a", outcomes[0].Output)
}

func TestRunWithNoJobs(t *testing.T) {
	outcomes := batch.Run(nil, 4)
	require.Empty(t, outcomes)
}
