// Package cli_test tests the validate command for checking front-matter records against collection schemas.
// Related: internal/cli/validate.go
// Tags: cli, validate, collection, front-matter, exit-codes
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points HOME at an empty directory and returns a config path
// that does not exist, so only defaults apply.
// No t.Parallel() in this package: commands share global cobra and color state.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, "missing.json")
}

func runValidate(t *testing.T, args validateArgs, stdin string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = runValidateCommand(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestValidateCommand_ValidBlog(t *testing.T) {
	cfg := isolateConfig(t)

	stdout, stderr, err := runValidate(t, validateArgs{
		collection: "blog",
		path:       filepath.Join("testdata", "blog_valid.yaml"),
		configPath: cfg,
	}, "")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "is valid")
	assert.Contains(t, stdout, "title: Hello World")
	assert.Contains(t, stdout, "2024-01-01T00:00:00Z")
	assert.NotContains(t, stdout, "layout", "undeclared fields are dropped")
}

func TestValidateCommand_MissingTitle(t *testing.T) {
	cfg := isolateConfig(t)

	_, stderr, err := runValidate(t, validateArgs{
		collection: "blog",
		path:       filepath.Join("testdata", "blog_missing_title.yaml"),
		configPath: cfg,
	}, "")
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, stderr, "has 1 error(s)")
	assert.Contains(t, stderr, "Field: title")
	assert.Contains(t, stderr, "Hint:")
}

func TestValidateCommand_InvalidLinkJSON(t *testing.T) {
	cfg := isolateConfig(t)

	_, stderr, err := runValidate(t, validateArgs{
		collection: "projects",
		path:       filepath.Join("testdata", "projects_bad_link.json"),
		configPath: cfg,
	}, "")
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, stderr, "Field: link")
	assert.Contains(t, stderr, `invalid URL "not-a-url"`)
}

func TestValidateCommand_Stdin(t *testing.T) {
	cfg := isolateConfig(t)

	stdout, _, err := runValidate(t, validateArgs{
		collection: "posts",
		path:       "-",
		configPath: cfg,
	}, "publishDate: \"2024-01-01\"\nextraField: ignored\n")
	require.NoError(t, err)
	assert.Contains(t, stdout, "- is valid")
	assert.NotContains(t, stdout, "extraField")
}

func TestValidateCommand_FailFast(t *testing.T) {
	tests := map[string]struct {
		configFailFast string
		flag           *bool
		wantErrors     string
	}{
		"config default accumulates": {wantErrors: "has 4 error(s)"},
		"config fail fast":           {configFailFast: "true", wantErrors: "has 1 error(s)"},
		"flag overrides config":      {configFailFast: "true", flag: boolPtr(false), wantErrors: "has 4 error(s)"},
		"flag enables":               {flag: boolPtr(true), wantErrors: "has 1 error(s)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := isolateConfig(t)
			if tt.configFailFast != "" {
				t.Setenv("CONTENTCHECK_FAIL_FAST", tt.configFailFast)
			}

			_, stderr, err := runValidate(t, validateArgs{
				collection: "blog",
				path:       "-",
				configPath: cfg,
				failFast:   tt.flag,
			}, "draft: false\n")
			require.Error(t, err)
			assert.Contains(t, stderr, tt.wantErrors)
		})
	}
}

func TestValidateCommand_ConfiguredDateLayout(t *testing.T) {
	isolateConfig(t)
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"date_layouts": ["02.01.2006"], "color": "never"}`), 0o644))

	stdout, stderr, err := runValidate(t, validateArgs{
		collection: "posts",
		path:       "-",
		configPath: cfgPath,
	}, "publishDate: \"15.03.2024\"\n")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "2024-03-15T00:00:00Z")
}

func TestValidateCommand_InvalidArguments(t *testing.T) {
	tests := map[string]struct {
		collection string
		path       string
		stdin      string
		wantStderr string
	}{
		"unknown collection": {
			collection: "notes",
			path:       filepath.Join("testdata", "blog_valid.yaml"),
			wantStderr: "Valid collections: blog, posts, projects",
		},
		"missing file": {
			collection: "blog",
			path:       "nonexistent.yaml",
			wantStderr: "file not found",
		},
		"directory": {
			collection: "blog",
			path:       "testdata",
			wantStderr: "is a directory",
		},
		"empty stdin": {
			collection: "posts",
			path:       "-",
			stdin:      "   \n",
			wantStderr: "record is empty",
		},
		"not a mapping": {
			collection: "posts",
			path:       filepath.Join("testdata", "list.yaml"),
			wantStderr: "parsing",
		},
		"malformed yaml": {
			collection: "posts",
			path:       "-",
			stdin:      "publishDate: [2024\n",
			wantStderr: "parsing",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := isolateConfig(t)

			_, stderr, err := runValidate(t, validateArgs{
				collection: tt.collection,
				path:       tt.path,
				configPath: cfg,
			}, tt.stdin)
			require.Error(t, err)
			assert.Equal(t, ExitInvalidArguments, ExitCode(err))
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestValidateCommand_BadConfig(t *testing.T) {
	isolateConfig(t)
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"log_level": "loud"}`), 0o644))

	_, stderr, err := runValidate(t, validateArgs{
		collection: "posts",
		path:       "-",
		configPath: cfgPath,
	}, "publishDate: 2024-01-01\n")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, stderr, "Configuration Error")
	assert.Contains(t, stderr, "log_level")
}

func TestValidateCommand_ThroughCobra(t *testing.T) {
	cfg := isolateConfig(t)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader("publishDate: \"2024-01-01\"\n"))
	rootCmd.SetArgs([]string{"validate", "posts", "-", "--config", cfg})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "is valid")
}

func TestExecute_BadArguments(t *testing.T) {
	isolateConfig(t)

	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"validate", "posts"})
	t.Cleanup(func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, errOut.String(), "Argument Error")
	assert.Contains(t, errOut.String(), "accepts 2 arg(s)")
	assert.Contains(t, errOut.String(), "Usage: contentcheck validate <collection> <file|->")
	assert.Contains(t, errOut.String(), "Run 'contentcheck validate --help' for usage")
}

func boolPtr(b bool) *bool { return &b }
