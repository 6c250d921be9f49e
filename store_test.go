package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644), "write %s", name)
	return p
}

func TestStoreLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "config.json", `{"apps": ["A.exe", "B.exe"]}`},
		{"json without extension", "config", `{"apps": ["A.exe", "B.exe"]}`},
		{"yaml", "config.yaml", "apps:\n  - A.exe\n  - B.exe\n"},
		{"yml", "config.yml", "apps: [A.exe, B.exe]\n"},
		{"toml", "config.toml", "apps = [\"A.exe\", \"B.exe\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeTempFile(t, t.TempDir(), tt.file, tt.content)
			set, err := NewStore(p, zerolog.Nop()).LoadStrict()
			require.NoError(t, err)
			assert.Equal(t, []string{"A.exe", "B.exe"}, set.Names())
		})
	}
}

func TestStoreLoadMissingKey(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "config.json", `{"other": 1}`)
	set, err := NewStore(p, zerolog.Nop()).LoadStrict()
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestStoreLoadFailuresReturnEmpty(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.json")},
		{"malformed json", writeTempFile(t, dir, "bad.json", `{"apps": [`)},
		{"wrong type", writeTempFile(t, dir, "type.json", `{"apps": [1, 2]}`)},
		{"not an object", writeTempFile(t, dir, "list.json", `["A.exe"]`)},
		{"malformed yaml", writeTempFile(t, dir, "bad.yaml", "apps: [unclosed\n")},
		{"malformed toml", writeTempFile(t, dir, "bad.toml", "apps = [\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			store := NewStore(tt.path, newLineLogger(&buf))

			_, err := store.LoadStrict()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.path, cfgErr.Path)

			var set SelectionSet
			assert.NotPanics(t, func() { set = store.Load() })
			assert.True(t, set.Empty())
			assert.Contains(t, buf.String(), "- ERROR - Error loading config:")
		})
	}
}

func TestStoreLoadMissingWrapsNotExist(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "config.json"), zerolog.Nop()).LoadStrict()
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestStoreSaveJSONShape(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(p, zerolog.Nop())

	require.NoError(t, store.Save(NewSelectionSet("A.exe", "B.exe")))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"apps\": [\n        \"A.exe\",\n        \"B.exe\"\n    ]\n}\n", string(b))
}

func TestStoreSaveEmptySet(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(p, zerolog.Nop())

	require.NoError(t, store.Save(NewSelectionSet()))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"apps": []}`, string(b))
}

func TestStoreSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	p := writeTempFile(t, dir, "config.json", `{"apps": ["old.exe", "older.exe", "oldest.exe"]}`)
	store := NewStore(p, zerolog.Nop())

	require.NoError(t, store.Save(NewSelectionSet("new.exe")))

	set, err := store.LoadStrict()
	require.NoError(t, err)
	assert.Equal(t, []string{"new.exe"}, set.Names())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
	assert.Equal(t, "config.json", entries[0].Name())
}

func TestStoreSaveCreatesDirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	store := NewStore(p, zerolog.Nop())

	require.NoError(t, store.Save(NewSelectionSet("A.exe")))

	set, err := store.LoadStrict()
	require.NoError(t, err)
	assert.Equal(t, []string{"A.exe"}, set.Names())
}

func TestStoreRoundTripFormats(t *testing.T) {
	want := NewSelectionSet("A.exe", "b app", "Ünïcode.exe", "quote\"d")

	for _, name := range []string{"config.json", "config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), name), zerolog.Nop())
			require.NoError(t, store.Save(want))

			got, err := store.LoadStrict()
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got.Names())
		})
	}
}

func TestStoreYAMLAwkwardNames(t *testing.T) {
	want := NewSelectionSet("\t\n", "- dash", "# hash", "key: value", "  leading", "null", "true", "123", "'single'", "tail ")

	p := filepath.Join(t.TempDir(), "config.yaml")
	store := NewStore(p, zerolog.Nop())
	require.NoError(t, store.Save(want))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `- "\t\n"`)

	got, err := store.LoadStrict()
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "got %q", got.Names())
}

func TestStoreYAMLEmptySetLoadsBack(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.yml"), zerolog.Nop())
	require.NoError(t, store.Save(NewSelectionSet()))

	got, err := store.LoadStrict()
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestNewStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultConfigPath, NewStore("", zerolog.Nop()).Path())
}
