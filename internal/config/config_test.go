package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codebox/boxes"
	"github.com/iw2rmb/codebox/codeinput"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codebox.toml", `
code_length = 6
chars_code = true
code_hidden = true
initial_focus_field = 2
code = "ab12"
emit_delay_ms = 20
color = "red"
`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"color"}, f.Unknown())

	o := f.Overrides()
	require.NotNil(t, o.CodeLength)
	assert.Equal(t, 6, *o.CodeLength)
	require.NotNil(t, o.Policy)
	assert.Equal(t, boxes.PolicyAny, *o.Policy)
	require.NotNil(t, o.Hidden)
	assert.True(t, *o.Hidden)
	require.NotNil(t, o.InitialFocusIndex)
	assert.Equal(t, 2, *o.InitialFocusIndex)
	require.NotNil(t, o.Code)
	assert.Equal(t, "ab12", *o.Code)
	require.NotNil(t, o.EmitDelay)
	assert.Equal(t, 20*time.Millisecond, *o.EmitDelay)

	assert.Nil(t, o.Disabled)
	assert.Nil(t, o.PrevFocusableAfterClear)
}

func TestLoad_YAMLKeepsLeadingZeros(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codebox.yaml", "code_length: 4\ncode: 0012\nprev_focusable_after_clearing: false\n")

	f, err := Load(path)
	require.NoError(t, err)

	o := f.Overrides()
	require.NotNil(t, o.Code)
	assert.Equal(t, "0012", *o.Code)
	require.NotNil(t, o.PrevFocusableAfterClear)
	assert.False(t, *o.PrevFocusableAfterClear)
}

func TestLoad_JSONNumericCode(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codebox.json", `{"code": 1234, "focusing_on_last_by_click_if_filled": true}`)

	f, err := Load(path)
	require.NoError(t, err)

	o := f.Overrides()
	require.NotNil(t, o.Code)
	assert.Equal(t, "1234", *o.Code)
	require.NotNil(t, o.FocusLastOnClickIfFilled)
	assert.True(t, *o.FocusLastOnClickIfFilled)
	assert.Nil(t, o.Policy)
}

func TestParse_NonDigitsCodeAlias(t *testing.T) {
	f, err := Parse([]byte("non_digits_code = true\n"), ".toml")
	require.NoError(t, err)
	require.NotNil(t, f.Overrides().Policy)
	assert.Equal(t, boxes.PolicyAny, *f.Overrides().Policy)

	// chars_code wins over the alias.
	f, err = Parse([]byte("non_digits_code = true\nchars_code = false\n"), ".toml")
	require.NoError(t, err)
	assert.Equal(t, boxes.PolicyDigits, *f.Overrides().Policy)
}

func TestParse_AutoDetect(t *testing.T) {
	cases := map[string]string{
		"toml": "code_length = 5\n",
		"json": `{"code_length": 5}`,
		"yaml": "code_length: 5\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := Parse([]byte(data), "")
			require.NoError(t, err)
			require.NotNil(t, f.CodeLength)
			assert.Equal(t, 5, *f.CodeLength)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "bad.toml", "code_length = \n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "bad-code.toml", "code = 1.5\n"))
	assert.Error(t, err)

	invalid := []string{
		"code_length = 0\n",
		"initial_focus_field = -1\n",
		"code_length = 4\ninitial_focus_field = 4\n",
		"emit_delay_ms = -5\n",
	}
	for i, data := range invalid {
		_, err := Load(writeFile(t, dir, "invalid.toml", data))
		assert.ErrorIs(t, err, codeinput.ErrInvalidConfig, "case %d", i)
	}
}

func TestOverrides_AppliedToModel(t *testing.T) {
	f, err := Parse([]byte("code_length = 3\ncode = \"987\"\n"), ".toml")
	require.NoError(t, err)

	cfg := codeinput.DefaultConfig().Merge(f.Overrides())
	m := codeinput.New(cfg)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "987", m.Code())
}

func TestWatcher_DeliversReloadedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "codebox.toml", "code_length = 4\n")

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "codebox.toml", "code_length = 6\n")

	select {
	case f := <-w.Updates():
		require.NotNil(t, f)
		require.NotNil(t, f.CodeLength)
		assert.Equal(t, 6, *f.CodeLength)
	case err := <-w.Errors():
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_ReportsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "codebox.toml", "code_length = 4\n")

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "codebox.toml", "code_length = -1\n")

	select {
	case err := <-w.Errors():
		assert.ErrorIs(t, err, codeinput.ErrInvalidConfig)
	case f := <-w.Updates():
		t.Fatalf("invalid file must not be delivered: %+v", f)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcher_CloseEndsUpdates(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codebox.toml", "")

	w, err := Watch(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Updates()
	assert.False(t, ok)
}
