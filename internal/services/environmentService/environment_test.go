package environmentservice

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetHas(t *testing.T) {
	const name = "SYSPEEK_TEST_VAR"

	assert.False(t, Has(name))
	assert.Empty(t, Get(name))

	// t.Setenv registers the restore; Set exercises the facade.
	t.Setenv(name, "placeholder")
	require.NoError(t, Set(name, "hello"))

	assert.True(t, Has(name))
	assert.Equal(t, "hello", Get(name))
}

func TestSetEmptyName(t *testing.T) {
	assert.Error(t, Set("", "value"))
}

func TestGetDefault(t *testing.T) {
	const name = "SYSPEEK_TEST_DEFAULT"

	assert.Equal(t, "fallback", GetDefault(name, "fallback"))

	// An empty-but-set variable is still "set".
	t.Setenv(name, "")
	assert.Equal(t, "", GetDefault(name, "fallback"))

	t.Setenv(name, "explicit")
	assert.Equal(t, "explicit", GetDefault(name, "fallback"))
}

func TestVariablesSortedAndComplete(t *testing.T) {
	t.Setenv("SYSPEEK_TEST_A", "1")
	t.Setenv("SYSPEEK_TEST_B", "2")

	vars := Variables()
	require.NotEmpty(t, vars)

	names := make(map[string]string, len(vars))
	for i, v := range vars {
		names[v.Name] = v.Value
		if i > 0 {
			assert.LessOrEqual(t, vars[i-1].Name, v.Name)
		}
	}

	assert.Equal(t, "1", names["SYSPEEK_TEST_A"])
	assert.Equal(t, "2", names["SYSPEEK_TEST_B"])
}

func TestNodeIDFormat(t *testing.T) {
	id := NodeID()
	if id == "" {
		// Hosts without a hardware interface (CI containers) report empty.
		t.Skip("no hardware address on this host")
	}
	assert.Regexp(t, regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`), id)
}

func TestProcessorCountFloor(t *testing.T) {
	assert.GreaterOrEqual(t, ProcessorCount(), 1)
}

func TestOSIdentity(t *testing.T) {
	assert.NotEmpty(t, OSName())
	assert.NotEmpty(t, OSArchitecture())
	// Display name falls back to the generic name rather than empty.
	assert.NotEmpty(t, OSDisplayName())
}

func TestGatherHostInfo(t *testing.T) {
	info := GatherHostInfo()
	require.NotNil(t, info)

	assert.Equal(t, OSName(), info.OSName)
	assert.GreaterOrEqual(t, info.ProcessorCount, 1)
	assert.NotEmpty(t, info.Format(true))
	assert.Contains(t, info.Format(false), "Host Information:")
}
