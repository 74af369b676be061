package messages

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// PropertiesParser reads Java .properties bundles encoded as UTF-8.
// ${key} references are kept literally.
type PropertiesParser struct{}

func NewPropertiesParser() *PropertiesParser {
	return &PropertiesParser{}
}

func (p *PropertiesParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(content)
	if err != nil {
		return nil, errors.Join(ErrParseBundle, err)
	}
	return props.Map(), nil
}

func (p *PropertiesParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "properties")
}

// YAMLParser reads YAML bundles.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseBundle, err)
	}

	out := make(map[string]string, len(data))
	if err := flatten("", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// TOMLParser reads TOML bundles; tables become key prefixes.
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseBundle, err)
	}

	out := make(map[string]string, len(data))
	if err := flatten("", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "toml")
}

// JSONParser reads JSON object bundles.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseBundle, err)
	}

	out := make(map[string]string, len(data))
	if err := flatten("", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
