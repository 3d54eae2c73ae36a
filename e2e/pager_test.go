//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSelectionPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	path, err := tf.CreatePasteFile("pager.txt", numberedLines(10))
	require.NoError(t, err)

	startWithFiles(t, tf, "-link", "F1-L3-L4_", path)
	require.True(t, tf.SeePlain("Restored 1 selection(s)"))

	require.NoError(t, tf.SendKeys(KeyPager))
	require.True(t, tf.SeePlain("pager.txt:3-4"), "Pager should show the selected range header")

	// Leave ov and make sure the viewer comes back
	require.NoError(t, tf.SendKeys(KeyQuit))
	require.True(t, tf.OutputContainsPlain("lines=F1-L3-L4_", 5*time.Second), "Viewer should resume after the pager closes")
}
