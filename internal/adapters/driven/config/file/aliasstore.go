package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
)

// Ensure AliasStore implements the interface.
var _ driven.AliasStore = (*AliasStore)(nil)

// aliasFile is the on-disk shape of an alias table, shared by TOML and YAML.
type aliasFile struct {
	Version string            `toml:"version" yaml:"version"`
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

// AliasStore reads a curated alias table from a TOML or YAML file.
// The file is re-read on every Load so edits take effect without a restart.
type AliasStore struct {
	path string
}

// NewAliasStore creates a store for the alias file at path.
// The format is chosen by extension: .toml, .yaml or .yml.
func NewAliasStore(path string) (*AliasStore, error) {
	if _, err := aliasFormat(path); err != nil {
		return nil, err
	}
	return &AliasStore{path: filepath.Clean(path)}, nil
}

// Load reads and decodes the alias file.
func (s *AliasStore) Load(ctx context.Context) (*domain.AliasTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file: %w", err)
	}

	return DecodeAliasTable(data, s.path)
}

// Location returns the alias file path.
func (s *AliasStore) Location() string {
	return s.path
}

// DecodeAliasTable decodes alias table bytes; name selects the format by extension.
func DecodeAliasTable(data []byte, name string) (*domain.AliasTable, error) {
	format, err := aliasFormat(name)
	if err != nil {
		return nil, err
	}

	var raw aliasFile
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	rules := make([]domain.AliasRule, 0, len(raw.Aliases))
	for from, to := range raw.Aliases {
		rules = append(rules, domain.AliasRule{From: from, To: to})
	}

	table, err := domain.NewAliasTable(raw.Version, rules...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return table, nil
}

// EncodeAliasTable writes table in the format implied by name.
func EncodeAliasTable(table *domain.AliasTable, name string) ([]byte, error) {
	format, err := aliasFormat(name)
	if err != nil {
		return nil, err
	}

	raw := aliasFile{
		Version: table.Version,
		Aliases: make(map[string]string, table.Len()),
	}
	for _, r := range table.Rules() {
		raw.Aliases[r.From] = r.To
	}

	if format == "toml" {
		return toml.Marshal(raw)
	}
	return yaml.Marshal(raw)
}

func aliasFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("alias file %q: %w", path, domain.ErrUnsupportedFormat)
	}
}
