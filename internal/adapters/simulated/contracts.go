package simulated

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

const (
	schemaSearchResponse = "search_response.json"
	schemaItemDetail     = "item_detail.json"
)

// contracts - скомпилированные схемы ответов каталога
type contracts struct {
	schemas map[string]*jsonschema.Schema
}

func loadContracts() (*contracts, error) {
	compiler := jsonschema.NewCompiler()

	// Сначала добавляем все схемы как ресурсы, чтобы работали $ref друг на друга
	names := []string{}
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := schemasFS.ReadFile(path)
		if err != nil {
			return err
		}
		name := strings.TrimPrefix(path, "schemas/")
		if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	compiled := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", name, err)
		}
		compiled[name] = schema
	}

	return &contracts{schemas: compiled}, nil
}

// validate проверяет готовое тело ответа по схеме
func (c *contracts) validate(name string, body []byte) error {
	schema, ok := c.schemas[name]
	if !ok {
		return fmt.Errorf("schema %q not found", name)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("payload is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
