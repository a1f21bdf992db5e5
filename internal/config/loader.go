package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// documentSchema describes the shape of the config document. Entry contents
// are checked afterwards so that empty paths map to ErrConfigEntryInvalid.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["icon_size", "apps"],
  "properties": {
    "icon_size": {"type": "integer", "minimum": 1, "maximum": 65536},
    "apps": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "app_path": {"type": "string"},
          "app_icon": {"type": "string"}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// normalizeDocument returns the document as JSON. Plain JSON passes through;
// anything else is read as YAML and converted.
func normalizeDocument(data []byte) ([]byte, error) {
	if json.Valid(data) {
		return data, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("empty document")
	}

	jsonCompatible, err := toJSONCompatible(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml->json compatible: %w", err)
	}
	jb, err := json.Marshal(jsonCompatible)
	if err != nil {
		return nil, fmt.Errorf("marshal to json: %w", err)
	}
	return jb, nil
}

func validateDocument(jb []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(jb))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, e := range result.Errors() {
			sb.WriteString("\n- ")
			sb.WriteString(e.String())
		}
		return fmt.Errorf("validation failed:%s", sb.String())
	}
	return nil
}

// decodeDocument reads the validated document by exact key. encoding/json
// struct decoding folds case, which would let "APP_PATH" stand in for
// "app_path" or shadow an empty one.
func decodeDocument(jb []byte) (*Config, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(jb, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	size, ok := doc["icon_size"].(float64)
	if !ok || size != math.Trunc(size) || size < 0 || size > math.MaxUint32 {
		return nil, fmt.Errorf("decode config: icon_size %v is not an unsigned integer", doc["icon_size"])
	}

	apps, ok := doc["apps"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("decode config: apps is not an array")
	}

	cfg := &Config{
		IconSize: uint32(size),
		Apps:     make([]App, 0, len(apps)),
	}
	for i, raw := range apps {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("decode config: apps[%d] is not an object", i)
		}
		// missing keys read as "" and are rejected by Config.Session
		path, _ := entry["app_path"].(string)
		icon, _ := entry["app_icon"].(string)
		cfg.Apps = append(cfg.Apps, App{AppPath: path, AppIcon: icon})
	}
	return cfg, nil
}

// toJSONCompatible converts yaml-parsed structures (with map[interface{}]interface{}) into map[string]interface{} recursively.
func toJSONCompatible(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprintf("%v", k)] = conv
		}
		return m, nil
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	case []interface{}:
		arr := make([]interface{}, len(val))
		for i, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			arr[i] = conv
		}
		return arr, nil
	default:
		return val, nil
	}
}
