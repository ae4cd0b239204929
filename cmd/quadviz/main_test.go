package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_FrameDefaultsPerCommand(t *testing.T) {
	root := newRootCmd()

	snap, _, err := root.Find([]string{"snapshot"})
	require.NoError(t, err)
	rec, _, err := root.Find([]string{"record"})
	require.NoError(t, err)
	runs, _, err := root.Find([]string{"runs"})
	require.NoError(t, err)

	assert.Equal(t, "60", snap.Flags().Lookup("frames").DefValue)
	assert.Equal(t, "300", rec.Flags().Lookup("frames").DefValue)
	assert.Equal(t, "runs", rec.Flags().Lookup("dir").DefValue)
	assert.Equal(t, "runs", runs.Flags().Lookup("dir").DefValue)

	require.NoError(t, snap.ParseFlags(nil))
	require.NoError(t, rec.ParseFlags(nil))
	assert.Equal(t, defaultSnapshotFrames, snapshotFrames)
	assert.Equal(t, defaultRecordFrames, recordFrames)

	require.NoError(t, rec.ParseFlags([]string{"--frames", "12", "--dir", "elsewhere"}))
	assert.Equal(t, 12, recordFrames)
	assert.Equal(t, defaultSnapshotFrames, snapshotFrames)
	assert.Equal(t, defaultRunsDir, listDir)
}

func TestSnapshotFormat(t *testing.T) {
	tests := []struct {
		path    string
		braille bool
		want    string
		wantErr bool
	}{
		{"frame.svg", false, "svg", false},
		{"FRAME.PNG", false, "png", false},
		{"frame.svg", true, "braille", false},
		{"frame.png", true, "", true},
		{"frame.gif", false, "", true},
		{"frame", false, "", true},
	}
	for _, tt := range tests {
		got, err := snapshotFormat(tt.path, tt.braille)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestSnapshot_UnsupportedFormatCreatesNoFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.gif")
	root := newRootCmd()
	root.SetArgs([]string{"snapshot", "-o", out})

	require.Error(t, root.Execute())
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "unexpected file %s", out)
}

func TestSnapshot_WritesSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.svg")
	root := newRootCmd()
	root.SetArgs([]string{"snapshot", "--frames", "15", "-o", out})

	require.NoError(t, root.Execute())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
