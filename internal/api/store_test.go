package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-outlook/internal/sim"
)

func TestRunStorePutGet(t *testing.T) {
	s := NewRunStore()

	run := s.Put(sim.ResultSet{"baseline": nil}, nil, nil)
	require.NotEmpty(t, run.ID)

	got, ok := s.Get(run.ID)
	require.True(t, ok)
	assert.Equal(t, run, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestRunStoreEvictsOldest(t *testing.T) {
	s := NewRunStore()
	s.maxRuns = 3

	var ids []string
	for i := 0; i < 5; i++ {
		run := s.Put(sim.ResultSet{fmt.Sprintf("s%d", i): nil}, nil, nil)
		ids = append(ids, run.ID)
	}

	assert.Equal(t, 3, s.Len())
	_, ok := s.Get(ids[0])
	assert.False(t, ok, "oldest run must be evicted")
	_, ok = s.Get(ids[4])
	assert.True(t, ok)
}
