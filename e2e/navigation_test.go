//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	path, err := tf.CreatePasteFile("nav.txt", numberedLines(10))
	require.NoError(t, err)

	startWithFiles(t, tf, path)
	require.True(t, tf.SeePlain("line 10"), "Should render every line")

	initialOutput := tf.Snapshot()

	require.NoError(t, tf.Down())
	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, time.Second), "Navigation should change output")

	// The cursor is on line 2 now
	require.NoError(t, tf.Select())
	require.True(t, tf.SeePlain("lines=F1-L2"))
}

func TestTabSwitchesFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	a, err := tf.CreatePasteFile("first.txt", numberedLines(3))
	require.NoError(t, err)
	b, err := tf.CreatePasteFile("second.txt", numberedLines(3))
	require.NoError(t, err)

	startWithFiles(t, tf, a, b)
	require.True(t, tf.SeePlain("second.txt"), "Should render both files")

	require.NoError(t, tf.SendKeys(KeyTab))
	require.NoError(t, tf.Select())
	require.True(t, tf.SeePlain("lines=F2-L1"), "Selection should land in the second file")
}
