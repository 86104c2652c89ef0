package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema describes the persisted settings object. Unknown keys are
// allowed: older builds stored autoCorrection, caseSensitive and autoNext.
const recordSchema = `{
	"type": "object",
	"properties": {
		"showHints":        {"type": "boolean"},
		"shuffleQuestions": {"type": "boolean"},
		"darkMode":         {"type": "boolean"}
	}
}`

const recordSchemaURL = "schema://quiz-settings.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func recordValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(recordSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(recordSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// record mirrors the persisted object; nil fields were absent.
type record struct {
	ShowHints        *bool `json:"showHints"`
	ShuffleQuestions *bool `json:"shuffleQuestions"`
	DarkMode         *bool `json:"darkMode"`
}

// decode parses and validates a persisted record, filling absent fields
// from the defaults.
func decode(raw string) (Settings, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Settings{}, fmt.Errorf("invalid JSON: %w", err)
	}

	validator, err := recordValidator()
	if err != nil {
		return Settings{}, err
	}
	if err := validator.Validate(parsed); err != nil {
		return Settings{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Settings{}, fmt.Errorf("decode record: %w", err)
	}

	s := Defaults()
	if rec.ShowHints != nil {
		s.ShowHints = *rec.ShowHints
	}
	if rec.ShuffleQuestions != nil {
		s.ShuffleQuestions = *rec.ShuffleQuestions
	}
	if rec.DarkMode != nil {
		s.DarkMode = *rec.DarkMode
	}
	return s, nil
}

func encode(s Settings) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal settings: %w", err)
	}
	return string(b), nil
}
