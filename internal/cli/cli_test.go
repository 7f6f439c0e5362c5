package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/dateconv"
)

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	root := NewRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	code := run(root, args, stderr)
	return stdout.String(), stderr.String(), code
}

func TestConvert(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expect      string
	}{
		{
			description: "pattern to local date time",
			args:        []string{"convert", "26/04/2014 17:24", "--pattern", "dd/MM/yyyy HH:mm", "--to", "local_date_time", "--zone", "UTC"},
			expect:      "2014-04-26T17:24:00\n",
		},
		{
			description: "instant",
			args:        []string{"convert", "2014-04-26T17:24:37.123Z", "--to", "Instant", "--zone", "UTC"},
			expect:      "2014-04-26T17:24:37.123Z\n",
		},
		{
			description: "zoned from local pattern",
			args:        []string{"convert", "2014-04-26 17:24", "--pattern", "yyyy-MM-dd HH:mm", "--to", "zoned_date_time", "--zone", "Europe/Paris"},
			expect:      "2014-04-26T17:24:00+02:00[Europe/Paris]\n",
		},
		{
			description: "via local date",
			args:        []string{"convert", "2014-04-26 17:24", "--pattern", "yyyy-MM-dd HH:mm", "--via", "LocalDate", "--to", "LocalDateTime", "--zone", "UTC"},
			expect:      "2014-04-26T00:00:00\n",
		},
		{
			description: "lossy time only into date",
			args:        []string{"convert", "17:24", "--pattern", "HH:mm", "--to", "LocalDate", "--zone", "UTC"},
			expect:      "null\n",
		},
		{
			description: "blank text",
			args:        []string{"convert", " ", "--to", "LocalDate", "--zone", "UTC"},
			expect:      "null\n",
		},
	}
	for _, testCase := range testCases {
		stdout, stderr, code := execute(t, testCase.args...)
		assert.Equal(t, exitSuccess, code, testCase.description+": "+stderr)
		assert.Equal(t, testCase.expect, stdout, testCase.description)
	}
}

func TestConvert_JSON(t *testing.T) {
	stdout, _, code := execute(t, "convert", "2014-04-26", "--pattern", "yyyy-MM-dd", "--to", "LocalDate", "--zone", "UTC", "--json")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, `{"input":"2014-04-26","pattern":"yyyy-MM-dd","kind":"LocalDate","value":"2014-04-26","lossy":false}`+"\n", stdout)

	stdout, stderr, code := execute(t, "convert", "17:24", "--pattern", "HH:mm", "--to", "LocalDate", "--zone", "UTC", "--json")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, `{"input":"17:24","pattern":"HH:mm","kind":"LocalDate","value":null,"lossy":true}`+"\n", stdout)
	assert.Contains(t, stderr, "lossy date conversion")
}

func TestConvert_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expectCode  int
		expectErr   string
	}{
		{description: "unknown kind", args: []string{"convert", "2014-04-26", "--to", "Sundial"}, expectCode: exitUserError, expectErr: "unknown kind"},
		{description: "parse failure", args: []string{"convert", "tomorrow-ish", "--pattern", "yyyy-MM-dd", "--to", "LocalDate", "--zone", "UTC"}, expectCode: exitUserError, expectErr: "parse_failure"},
		{description: "invalid zone", args: []string{"convert", "2014-04-26", "--to", "LocalDate", "--zone", "Mars/Olympus"}, expectCode: exitUserError, expectErr: "invalid zone"},
		{description: "invalid dialect", args: []string{"convert", "2014-04-26", "--to", "LocalDate", "--dialect", "klingon"}, expectCode: exitUserError},
		{description: "missing target", args: []string{"convert", "2014-04-26"}, expectCode: exitUserError, expectErr: "to"},
		{description: "missing config", args: []string{"convert", "2014-04-26", "--to", "LocalDate", "--config", "/nonexistent/dateconv.yaml"}, expectCode: exitSysError},
	}
	for _, testCase := range testCases {
		stdout, stderr, code := execute(t, testCase.args...)
		assert.Equal(t, testCase.expectCode, code, testCase.description)
		assert.Empty(t, stdout, testCase.description)
		assert.Contains(t, stderr, testCase.expectErr, testCase.description)
	}
}

func TestConvert_Config(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "dateconv.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("zone: Asia/Tokyo\ndialect: iso\n"), 0o644))

	stdout, stderr, code := execute(t, "convert", "2014-04-26 17:24", "--pattern", "YYYY-MM-DD hh:mm", "--to", "OffsetDateTime", "--config", configFile)
	require.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "2014-04-26T17:24:00+09:00\n", stdout)

	t.Setenv("DATECONV_ZONE", "UTC")
	stdout, _, code = execute(t, "convert", "2014-04-26 17:24", "--pattern", "YYYY-MM-DD hh:mm", "--to", "OffsetDateTime", "--config", configFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "2014-04-26T17:24:00Z\n", stdout)

	stdout, _, code = execute(t, "convert", "2014-04-26 17:24", "--pattern", "YYYY-MM-DD hh:mm", "--to", "OffsetDateTime", "--config", configFile, "--zone", "Europe/Paris")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "2014-04-26T17:24:00+02:00\n", stdout)
}

func TestKinds(t *testing.T) {
	stdout, _, code := execute(t, "kinds")
	require.Equal(t, exitSuccess, code)
	for _, kind := range dateconv.Kinds() {
		assert.Contains(t, stdout, kind.String())
	}

	stdout, _, code = execute(t, "kinds", "--json")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, stdout, `{"name":"LocalDate","family":"`)
	assert.Contains(t, stdout, `"type":"time.Time"`)
}

func TestDetect(t *testing.T) {
	stdout, _, code := execute(t, "detect", "2014-04-26 17:24:37")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "2006-01-02 15:04:05\n", stdout)

	_, stderr, code := execute(t, "detect", "1398533077")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "epoch")
}

func TestVersion(t *testing.T) {
	stdout, _, code := execute(t, "version")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "dateconv "+dateconv.Version+"\n", stdout)
}
