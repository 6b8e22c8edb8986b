package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedContent(t *testing.T) {
	t.Parallel()
	reg, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, reg.Profile().Name)
	require.NotEmpty(t, reg.ProjectKeys())
	require.NotEmpty(t, reg.WorkKeys())
	require.NotEmpty(t, reg.Fortunes())
	require.NotEmpty(t, reg.TelnetBanner())

	project, ok := reg.Project("sentiment_analysis")
	require.True(t, ok)
	require.Equal(t, "sentiment_analysis", project.Key)

	_, ok = reg.Project("nope")
	require.False(t, ok)
}

func TestRegistryLookupsDoNotAliasInternalState(t *testing.T) {
	t.Parallel()
	reg, err := Load()
	require.NoError(t, err)

	keys := reg.ProjectKeys()
	projects := reg.Projects()
	fortunes := reg.Fortunes()
	keys[0] = "tampered"
	projects[0].Key = "tampered"
	fortunes[0] = "tampered"

	require.NotEqual(t, "tampered", reg.ProjectKeys()[0])
	require.NotEqual(t, "tampered", reg.Projects()[0].Key)
	require.NotEqual(t, "tampered", reg.Fortunes()[0])
}

func writeContentFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileOverride(t *testing.T) {
	t.Parallel()
	path := writeContentFile(t, `
profile:
  name: Test Person
projects:
  - key: demo
    name: Demo
work:
  - key: job
    organization: Somewhere
    role: Engineer
fortunes:
  - "only one"
telnet_banner: "hi"
`)

	reg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Test Person", reg.Profile().Name)
	require.Equal(t, []string{"demo"}, reg.ProjectKeys())

	record, ok := reg.WorkRecord("job")
	require.True(t, ok)
	require.Equal(t, "Somewhere", record.Organization)
}

func TestLoadFileRejectsBadContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"missing file", ""},
		{"duplicate project key", `
projects:
  - key: a
    name: A
  - key: a
    name: A again
fortunes: ["x"]
`},
		{"empty project key", `
projects:
  - name: unkeyed
fortunes: ["x"]
`},
		{"no fortunes", `
projects:
  - key: a
    name: A
`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tc.body != "" {
				path = writeContentFile(t, tc.body)
			}
			_, err := LoadFile(path)
			require.Error(t, err)
		})
	}
}
