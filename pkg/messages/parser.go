package messages

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

// Parser decodes one bundle file into a flat key/message map.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]string, error)

	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser for the file's extension, or nil when
// the format is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "properties":
		return NewPropertiesParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	case "json":
		return NewJSONParser()
	default:
		return nil
	}
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadCancelled, err)
	}
	return nil
}

// flatten turns nested maps into dot-separated keys. Scalars are rendered
// with fmt, nil becomes an empty message and lists are rejected.
func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case map[any]any:
			nested := make(map[string]any, len(val))
			for nk, nv := range val {
				nested[fmt.Sprint(nk)] = nv
			}
			if err := flatten(key, nested, out); err != nil {
				return err
			}
		case []any, []map[string]any:
			return fmt.Errorf("%w: %q is a list", ErrUnsupportedValue, key)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}
