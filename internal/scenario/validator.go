// Where: cli/internal/scenario/validator.go
// What: JSON schema validation for scenario files.
// Why: Reject malformed scenarios before any step runs.
package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

const schemaURL = "scenario.schema.json"

//go:embed schema/scenario.schema.json
var schemaSource []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func validate(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	normalized, err := stringifyScalars(content)
	if err != nil {
		return fmt.Errorf("parse scenario: %w", err)
	}

	jsonData, err := sigsyaml.YAMLToJSON(normalized)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("load scenario schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// stringifyScalars re-encodes content with every scalar double-quoted so that
// values such as `no` or `2024` reach the schema as strings, the way yaml.v3
// decodes them into Step fields. The top-level version key keeps its type.
func stringifyScalars(content []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return content, nil
	}
	quoteScalars(&doc, 0, "")
	return yaml.Marshal(&doc)
}

func quoteScalars(node *yaml.Node, depth int, key string) {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			quoteScalars(child, depth+1, "")
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			quoteScalars(node.Content[i], depth+1, "")
			quoteScalars(node.Content[i+1], depth+1, node.Content[i].Value)
		}
	case yaml.ScalarNode:
		if depth == 2 && key == "version" {
			return
		}
		switch node.Tag {
		case "!!str", "!!bool", "!!int", "!!float", "!!timestamp":
			node.Tag = "!!str"
			node.Style = yaml.DoubleQuotedStyle
		}
	}
}
