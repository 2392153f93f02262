package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version = "1.2.3"
	assert.Contains(t, String(), "permcaptcha version 1.2.3 (")
	assert.Contains(t, String(), runtime.Version())

	Commit = "0123456789abcdef"
	Date = "2026-10-18T00:00:00Z"
	assert.Contains(t, String(), "commit: 01234567, built: 2026-10-18T00:00:00Z")
}
