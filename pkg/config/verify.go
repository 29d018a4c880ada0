package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against required fields and enums of the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to a generic tree, keyed by json names
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.Definitions["Config"]
	if !ok || root.Properties == nil {
		return fmt.Errorf("schema has no Config definition")
	}
	for pair := root.Properties.Oldest(); pair != nil; pair = pair.Next() {
		section, ok := configMap[pair.Key].(map[string]any)
		if !ok {
			return fmt.Errorf("section %s is missing", pair.Key)
		}
		def := resolveRef(&schema, pair.Value)
		if def == nil {
			continue
		}
		if err := checkSection(pair.Key, def, section); err != nil {
			return err
		}
	}
	return nil
}

func resolveRef(root, s *jsonschema.Schema) *jsonschema.Schema {
	const prefix = "#/$defs/"
	if s.Ref == "" || len(s.Ref) <= len(prefix) {
		return s
	}
	return root.Definitions[s.Ref[len(prefix):]]
}

func checkSection(name string, def *jsonschema.Schema, section map[string]any) error {
	for _, req := range def.Required {
		if v, ok := section[req]; !ok || v == "" {
			return fmt.Errorf("%s.%s is required", name, req)
		}
	}
	if def.Properties == nil {
		return nil
	}
	for pair := def.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value.Enum) == 0 {
			continue
		}
		if v, ok := section[pair.Key]; ok && !slices.Contains(pair.Value.Enum, v) {
			return fmt.Errorf("%s.%s: %v is not one of %v", name, pair.Key, v, pair.Value.Enum)
		}
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct, required fields come from jsonschema tags
func GenerateSchema() (*jsonschema.Schema, error) {
	r := jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{}), nil
}
