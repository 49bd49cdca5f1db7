// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Configure is guarded by a process-wide sync.Once, so a single test owns
// the one effective call and verifies everything behind it.
func TestConfigureOnce(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "bakscan-test"})
	// A second call must not rebind the writer or the level.
	Configure(Config{Level: "error", Output: io.Discard})

	probe := WithComponent("probe")
	probe.Debug().Msg("hello")

	out := buf.String()
	require.NotEmpty(t, out, "debug line should reach the first writer")
	assert.Contains(t, out, `"component":"probe"`)
	assert.Contains(t, out, `"service":"bakscan-test"`)
	assert.Contains(t, out, `"message":"hello"`)

	buf.Reset()
	base := Base()
	base.Info().Str(FieldURL, "http://example.com/app.bak").Msg("found")

	out = buf.String()
	assert.Contains(t, out, `"url":"http://example.com/app.bak"`)
	assert.Contains(t, out, `"service":"bakscan-test"`)
}
