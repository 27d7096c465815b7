package circuit

import (
	"bytes"
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/polyorder/pkg/errors"
)

// Supported description formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Decode reads a circuit in the given format from r and validates it.
func Decode(r io.Reader, format string) (*Circuit, error) {
	if err := errors.ValidateFormat(format, FormatTOML, FormatJSON); err != nil {
		return nil, err
	}

	var c Circuit
	switch strings.ToLower(format) {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCircuit, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidCircuit, "unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCircuit, err, "decode json")
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Parse decodes a circuit held in memory.
func Parse(data []byte, format string) (*Circuit, error) {
	return Decode(bytes.NewReader(data), format)
}

// FormatOf infers the description format from a file extension.
func FormatOf(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"cannot infer format of %q (want .toml or .json)", name)
}

// Load reads and validates the circuit file at p. A circuit without a
// name is named after the file.
func Load(p string) (*Circuit, error) {
	if err := errors.ValidatePath(p); err != nil {
		return nil, err
	}
	format, err := FormatOf(p)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "circuit file %s", p)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", p)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", p)
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return c, nil
}

// Builtin returns one of the circuits shipped with polyorder.
func Builtin(name string) (*Circuit, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".toml"))
	if err != nil {
		return nil, errors.New(errors.ErrCodeNotFound,
			"no builtin circuit %q (have %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(data, FormatTOML)
}

// BuiltinNames lists the shipped circuits.
func BuiltinNames() []string {
	entries, _ := fs.ReadDir(builtinFS, "builtin")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Resolve loads arg as a file if one exists at that path, and otherwise
// as the name of a builtin circuit.
func Resolve(arg string) (*Circuit, error) {
	if _, err := os.Stat(arg); err == nil || filepath.Ext(arg) != "" {
		return Load(arg)
	}
	return Builtin(arg)
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c *Circuit, format string) error {
	if err := errors.ValidateFormat(format, FormatTOML, FormatJSON); err != nil {
		return err
	}
	if strings.ToLower(format) == FormatTOML {
		return toml.NewEncoder(w).Encode(c)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
