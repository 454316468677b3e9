package progress_test

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/progress"
)

type recorder struct {
	mu     sync.Mutex
	events []string
	units  int64
}

func (r *recorder) BeginSubTask(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "begin:"+name)
}

func (r *recorder) EndSubTask(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "end:"+name)
}

func (r *recorder) LogProgress(units int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units += units
}

func TestLogTracker_LogsPhases(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tr := progress.NewLogTracker(logger, "bellman-ford")
	tr.BeginSubTask("relax")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.LogProgress(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(800), tr.Units())

	tr.EndSubTask("relax")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "phase started", entries[0].Message)
	require.Equal(t, "phase finished", entries[1].Message)
	require.Equal(t, "bellman-ford", entries[1].Data["task"])
	require.Equal(t, "relax", entries[1].Data["phase"])
	require.Equal(t, int64(800), entries[1].Data["units"])
	require.Contains(t, entries[1].Data, "duration")
}

func TestLogTracker_EndWithoutBegin(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tr := progress.NewLogTracker(logger, "x")
	tr.EndSubTask("sync")

	require.Len(t, hook.AllEntries(), 1)
	require.NotContains(t, hook.LastEntry().Data, "duration")
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := progress.Multi(a, nil, b)

	m.BeginSubTask("relax")
	m.LogProgress(3)
	m.EndSubTask("relax")

	for _, r := range []*recorder{a, b} {
		require.Equal(t, []string{"begin:relax", "end:relax"}, r.events)
		require.Equal(t, int64(3), r.units)
	}

	require.Equal(t, progress.Noop{}, progress.Multi())
	require.Same(t, a, progress.Multi(nil, a))
}
