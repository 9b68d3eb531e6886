package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	deps     []string
	startErr error
	log      *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return nil
}

func TestHubDependencyOrder(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "audio", deps: []string{"terminal"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "terminal", log: &log}))

	require.NoError(t, h.StartAll())
	require.NoError(t, h.StopAll())

	assert.Equal(t, []string{"start terminal", "start audio", "stop audio", "stop terminal"}, log)

	// Second stop has nothing left to release
	log = nil
	require.NoError(t, h.StopAll())
	assert.Empty(t, log)
}

func TestHubDuplicate(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}))
	err := h.Register(&fakeService{name: "audio", log: &log})
	assert.ErrorIs(t, err, ErrDuplicateService)

	s, ok := h.Get("audio")
	require.True(t, ok)
	assert.Equal(t, "audio", s.Name())
}

func TestHubResolveErrors(t *testing.T) {
	var log []string

	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "audio", deps: []string{"mixer"}, log: &log}))
	assert.ErrorIs(t, h.StartAll(), ErrMissingDependency)

	h = NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log}))
	assert.ErrorIs(t, h.StartAll(), ErrDependencyCycle)
	assert.Empty(t, log)
}

func TestHubStartFailureRollsBack(t *testing.T) {
	var log []string
	boom := errors.New("no device")
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "terminal", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "audio", startErr: boom, log: &log}))

	err := h.StartAll()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start terminal", "stop terminal"}, log)
}
