package stage

import (
	"fmt"
	"io"
	"os"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/matzehuels/picross/pkg/errors"
	"github.com/matzehuels/picross/pkg/nonogram"
)

// Parse decodes a JSON5 stage document and validates its structure.
//
// Parse returns an error if:
//   - The document is not valid JSON5 (PARSE_ERROR)
//   - The top level is not an object, a level is not an array of arrays
//     (INVALID_INPUT)
//   - A cell is anything but the integer 0 or 1 (INVALID_CELL)
//
// Errors name the level key and the row/column of the offending value.
func Parse(data []byte) (Stage, error) {
	var doc any
	if err := json5.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode stage")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"stage must be an object mapping level keys to grids, got %s", describe(doc))
	}

	s := make(Stage, len(obj))
	for key, v := range obj {
		g, err := decodeGrid(key, v)
		if err != nil {
			return nil, err
		}
		s[key] = g
	}
	return s, nil
}

// ReadAll buffers the complete stage document from r.
// ReadAll does not close r.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stage")
	}
	return data, nil
}

// ReadBytes reads the stage document at path without parsing it.
// A missing file is reported as FILE_NOT_FOUND.
func ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "stage file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

func decodeGrid(key string, v any) (nonogram.Grid, error) {
	rows, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"level %q: grid must be an array of rows, got %s", key, describe(v))
	}

	g := make(nonogram.Grid, len(rows))
	for i, rv := range rows {
		cells, ok := rv.([]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"level %q: row %d must be an array of cells, got %s", key, i, describe(rv))
		}
		line := make(nonogram.Line, len(cells))
		for j, cv := range cells {
			c, ok := decodeCell(cv)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidCell,
					"level %q: row %d, column %d: %s is not 0 or 1", key, i, j, describeValue(cv))
			}
			line[j] = c
		}
		g[i] = line
	}
	return g, nil
}

func decodeCell(v any) (nonogram.Cell, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	switch {
	case f == 0:
		return nonogram.Empty, true
	case f == 1:
		return nonogram.Filled, true
	}
	return 0, false
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func describeValue(v any) string {
	switch n := v.(type) {
	case float64, int, int64:
		return fmt.Sprintf("value %v", n)
	case string:
		return fmt.Sprintf("string %q", n)
	}
	return describe(v)
}
