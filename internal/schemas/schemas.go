// Package schemas holds the JSON Schemas for the documents repaso reads
// from outside (question dumps and backup payloads) and validates against them.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names.
const (
	Dataset = "dataset"
	Payload = "payload"
)

//go:embed *.json
var files embed.FS

// cache holds compiled schemas by name.
var cache sync.Map // map[string]*jsonschema.Schema

// Validate checks doc, a value produced by json.Unmarshal into any, against
// the named schema.
func Validate(name string, doc any) error {
	compiled, err := compiled(name)
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}
	return nil
}

func compiled(name string) (*jsonschema.Schema, error) {
	if cached, ok := cache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := files.ReadFile(name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	// The compiler expects a parsed JSON value, not raw bytes.
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", name, err)
	}

	cache.Store(name, s)
	return s, nil
}
