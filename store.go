package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the selection lives when no path is given
const DefaultConfigPath = "config.json"

// selectionFile is the persisted shape: {"apps": ["name1", ...]}
type selectionFile struct {
	Apps []string `json:"apps" yaml:"apps" toml:"apps"`
}

// Store persists a SelectionSet to a single file. The encoding follows the
// file extension: .yaml/.yml, .toml, anything else is JSON.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore returns a store for path that reports load failures to log
func NewStore(path string, log zerolog.Logger) *Store {
	if path == "" {
		path = DefaultConfigPath
	}
	return &Store{path: path, log: log}
}

// Path returns the file the store reads and writes
func (s *Store) Path() string { return s.path }

// Load returns the persisted selection. A missing or malformed file yields
// an empty set; the failure is logged, never returned.
func (s *Store) Load() SelectionSet {
	set, err := s.LoadStrict()
	if err != nil {
		s.log.Error().Msgf("Error loading config: %v", err)
		return NewSelectionSet()
	}
	return set
}

// LoadStrict is Load with the *ConfigError exposed
func (s *Store) LoadStrict() (SelectionSet, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return NewSelectionSet(), &ConfigError{Path: s.path, Err: err}
	}

	f, err := s.decode(b)
	if err != nil {
		return NewSelectionSet(), &ConfigError{Path: s.path, Err: err}
	}

	return NewSelectionSet(f.Apps...), nil
}

// Save overwrites the file with set. The data goes to a temporary file in
// the same directory first and is renamed into place. The encoded bytes are
// decoded again before anything is written; the existing file is left alone
// if they would not load back as set.
func (s *Store) Save(set SelectionSet) error {
	b, err := s.encode(selectionFile{Apps: set.Names()})
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if back, err := s.decode(b); err != nil {
		return fmt.Errorf("verify encoded selection: %w", err)
	} else if !NewSelectionSet(back.Apps...).Equal(set) {
		return fmt.Errorf("verify encoded selection: %w", ErrSelectionMismatch)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) decode(b []byte) (selectionFile, error) {
	var f selectionFile
	var err error
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &f)
	case ".toml":
		err = toml.Unmarshal(b, &f)
	default:
		err = json.Unmarshal(b, &f)
	}
	return f, err
}

func (s *Store) encode(f selectionFile) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(yamlSelection(f))
	case ".toml":
		return toml.Marshal(f)
	default:
		b, err := json.MarshalIndent(f, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}

// yamlSelection builds the document by hand so every name is a double-quoted
// scalar. Plain and block styles cannot carry names made of tabs, line
// breaks or leading indicators without changing them.
func yamlSelection(f selectionFile) *yaml.Node {
	apps := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, name := range f.Apps {
		apps.Content = append(apps.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: name,
			Style: yaml.DoubleQuotedStyle,
		})
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "apps"},
			apps,
		},
	}
}
