package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/hr-screener/internal/parsing"
	"github.com/jonathan/hr-screener/internal/types"
)

// configSchema constrains the hiring configuration document. Validation runs
// before unmarshalling so HR edits fail loudly instead of silently producing
// half-applied rules.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "defaults": { "$ref": "#/definitions/rule" },
    "rules": {
      "type": "array",
      "items": { "$ref": "#/definitions/rule" }
    },
    "role_keywords": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["role", "keywords"],
        "properties": {
          "role": { "type": "string", "minLength": 1 },
          "keywords": {
            "type": "array",
            "items": { "type": "string", "minLength": 1 }
          }
        }
      }
    }
  },
  "definitions": {
    "rule": {
      "type": "object",
      "additionalProperties": false,
      "required": ["role_key"],
      "properties": {
        "role_key": { "type": "string", "minLength": 1 },
        "max_budget": { "type": "number", "minimum": 0 },
        "min_experience_years": { "type": "number", "minimum": 0 },
        "required_topics": {
          "type": "array",
          "items": { "type": "string", "minLength": 1 }
        }
      }
    }
  }
}`

// Config is the hiring configuration supplied by HR. It is loaded fresh for
// each evaluation and treated as an immutable snapshot while in use.
type Config struct {
	Defaults     *types.RoleRule       `json:"defaults,omitempty"`
	Rules        []types.RoleRule      `json:"rules,omitempty"`
	RoleKeywords []parsing.RoleMapping `json:"role_keywords,omitempty"`
}

// KeywordMap builds the role detection mapping from the configuration,
// falling back to the built-in mappings when none are configured.
func (c *Config) KeywordMap() *parsing.RoleKeywordMap {
	if c == nil || len(c.RoleKeywords) == 0 {
		return parsing.DefaultRoleKeywords()
	}
	return parsing.NewRoleKeywordMap(c.RoleKeywords...)
}

// LoadConfig reads, schema-validates and parses a hiring configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hiring config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig validates raw JSON against the configuration schema and
// unmarshals it.
func ParseConfig(data []byte) (*Config, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate hiring config: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("hiring config is invalid: %s", strings.Join(msgs, "; "))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hiring config: %w", err)
	}
	return &cfg, nil
}
