package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "motors": [{"brandModel": "LDO - 42STH48", "stepAngleDeg": 1.8, "ratedCurrentA": 1.68, "torqueNCm": 44, "inductanceMH": 2.8, "resistanceOhms": 1.65}],
  "params": {"inputVoltage": 24, "backEmfMode": "shaft"},
  "sweep": {"maxSpeed": 10, "step": 1}
}`), 0644))

	req, err := readRequest(path)
	require.NoError(t, err)
	require.Len(t, req.Motors, 1)
	require.NotNil(t, req.Params)
	assert.Equal(t, 24.0, req.Params.InputVoltage)
	assert.Equal(t, "shaft", req.Params.BackEMFMode)
	require.NotNil(t, req.Sweep)
	assert.Equal(t, 10.0, req.Sweep.MaxSpeed)

	empty, err := readRequest("")
	require.NoError(t, err)
	assert.Empty(t, empty.Motors)

	_, err = readRequest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"LDO - 42STH48", "Moons - X"}, splitNames(" LDO - 42STH48 ;; Moons - X;"))
	assert.Empty(t, splitNames(""))
}
