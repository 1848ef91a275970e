// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvassign/matrix"
)

// ErrUnsupportedFormat is returned for a matrix file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported matrix file format")

// matrixFile is the on-disk layout of a cost matrix in every format:
//
//	{"cost": [[4, 1], [2, 0]]}      JSON
//	cost: [[4, 1], [2, 0]]          YAML
//	cost = [[4.0, 1.0], [2.0, 0.0]] TOML
type matrixFile struct {
	Cost [][]float64 `json:"cost" yaml:"cost" toml:"cost"`
}

// readMatrixFile decodes path according to its extension.
func readMatrixFile(path string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return decodeMatrix(filepath.Ext(path), data)
}

// decodeMatrix decodes data in the format named by ext (with or without dot).
func decodeMatrix(ext string, data []byte) (*matrix.Dense, error) {
	var mf matrixFile
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &mf); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &mf); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (want .json, .yaml, .yml or .toml)", ErrUnsupportedFormat, ext)
	}
	if mf.Cost == nil {
		return nil, errors.New(`matrix file has no "cost" key`)
	}

	return matrix.FromRows(mf.Cost)
}
