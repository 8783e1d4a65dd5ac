package config

//go:generate sh -c "mkdir -p ./schemas/v1 && cp ../../../../schemas/v1/*.json ./schemas/v1/"

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/v1/profile.schema.json
var profileSchemaJSON []byte

var profileSchema *jsonschema.Schema

func init() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(profileSchemaJSON))
	if err != nil {
		panic("failed to parse embedded profile schema: " + err.Error())
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("profile.schema.json", doc); err != nil {
		panic("failed to load embedded profile schema: " + err.Error())
	}
	profileSchema, err = compiler.Compile("profile.schema.json")
	if err != nil {
		panic("failed to compile embedded profile schema: " + err.Error())
	}
}

func validateProfile(data []byte) error {
	// Convert YAML to JSON for schema validation
	var yamlData interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	jsonData, err := json.Marshal(yamlData)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to parse converted JSON: %w", err)
	}

	if err := profileSchema.Validate(instance); err != nil {
		return fmt.Errorf("configuration validation failed:\n%s", err)
	}

	return nil
}
