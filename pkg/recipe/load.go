package recipe

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tessera/pkg/errors"
)

// Format names a recipe syntax.
type Format string

// Recipe formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns the recipe format implied by path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unrecognised recipe extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// Parse decodes and validates a recipe. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Recipe, error) {
	var r Recipe
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecipe, err, "parse toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidRecipe, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecipe, err, "parse yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown recipe format %q", format)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Load reads, decodes and validates the recipe at path. Relative input and
// output paths are made relative to the recipe's directory.
func Load(path string) (*Recipe, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read recipe %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read recipe %s", path)
	}
	r, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	r.Input = resolve(dir, r.Input)
	r.Output = resolve(dir, r.Output)
	return r, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Encode writes r in format. It is used to scaffold recipe files.
func Encode(r *Recipe, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(r); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown recipe format %q", format)
	}
	return buf.Bytes(), nil
}
