package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrFileMissing indicates the question file does not exist.
var ErrFileMissing = errors.New("question file not found")

// ErrMalformedData indicates the question file could not be parsed as a question bank.
var ErrMalformedData = errors.New("question file is corrupted or not in the expected format")

// DefaultFileName is the question file looked up when no path is given.
const DefaultFileName = "questions.json"

// Load reads and parses a question file.
func Load(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Bank{}, fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return Bank{}, fmt.Errorf("read question file: %w", err)
	}
	bank, err := Parse(data, path)
	if err != nil {
		return Bank{}, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	return bank, nil
}

// Parse decodes question file content. The format is picked from the path
// extension; anything other than .yml/.yaml is treated as JSON. Both formats
// are checked against the same schema before the ordered decode.
func Parse(data []byte, path string) (Bank, error) {
	yamlFile := isYAML(path)
	var generic any
	var err error
	if yamlFile {
		generic, err = decodeYAMLValue(data)
	} else {
		generic, err = decodeJSONValue(data)
	}
	if err != nil {
		return Bank{}, err
	}
	if err := validateDocument(generic); err != nil {
		return Bank{}, err
	}

	var doc document
	if yamlFile {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return Bank{}, fmt.Errorf("parse question file: %w", err)
	}
	return buildBank(doc)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}

func decodeJSONValue(data []byte) (any, error) {
	var value any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return value, nil
}

func decodeYAMLValue(data []byte) (any, error) {
	var node yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&node); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	value, err := yamlValue(&node)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return value, nil
}

func buildBank(doc document) (Bank, error) {
	collector := &issueCollector{}
	if doc.Title == nil {
		collector.add("title", "is required")
	}
	if doc.Questions == nil {
		collector.add("questions", "is required")
	}
	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return Bank{Title: *doc.Title, Topics: []Topic(*doc.Questions)}, nil
}
