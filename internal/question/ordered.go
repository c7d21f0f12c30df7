package question

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// topicMap decodes the questions mapping while keeping file order.
type topicMap []Topic

// entryMap decodes a single topic's prompt -> answer mapping in file order.
type entryMap []Entry

// UnmarshalJSON decodes a JSON object of topic name -> entry object.
func (m *topicMap) UnmarshalJSON(data []byte) error {
	var topics []Topic
	err := decodeJSONObject(data, func(key string, decoder *json.Decoder) error {
		var entries entryMap
		if err := decoder.Decode(&entries); err != nil {
			return fmt.Errorf("topic %q: %w", key, err)
		}
		topics = upsertTopic(topics, Topic{Name: key, Entries: []Entry(entries)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}
	*m = topics
	return nil
}

// UnmarshalJSON decodes a JSON object of prompt -> answer.
func (m *entryMap) UnmarshalJSON(data []byte) error {
	var entries []Entry
	err := decodeJSONObject(data, func(key string, decoder *json.Decoder) error {
		var answer string
		if err := decoder.Decode(&answer); err != nil {
			return fmt.Errorf("question %q: answer must be a string", key)
		}
		entries = upsertEntry(entries, Entry{Prompt: key, Answer: answer})
		return nil
	})
	if err != nil {
		return err
	}
	*m = entries
	return nil
}

// UnmarshalYAML decodes a YAML mapping of topic name -> entry mapping.
func (m *topicMap) UnmarshalYAML(node *yaml.Node) error {
	var topics []Topic
	err := walkYAMLMapping(node, func(key string, value *yaml.Node) error {
		var entries entryMap
		if err := entries.UnmarshalYAML(value); err != nil {
			return fmt.Errorf("topic %q: %w", key, err)
		}
		topics = upsertTopic(topics, Topic{Name: key, Entries: []Entry(entries)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}
	*m = topics
	return nil
}

// UnmarshalYAML decodes a YAML mapping of prompt -> answer.
func (m *entryMap) UnmarshalYAML(node *yaml.Node) error {
	var entries []Entry
	err := walkYAMLMapping(node, func(key string, value *yaml.Node) error {
		value = resolveAlias(value)
		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
			return fmt.Errorf("question %q: answer must be a string (line %d)", key, value.Line)
		}
		entries = upsertEntry(entries, Entry{Prompt: key, Answer: value.Value})
		return nil
	})
	if err != nil {
		return err
	}
	*m = entries
	return nil
}

// decodeJSONObject streams the members of a JSON object in order.
func decodeJSONObject(data []byte, member func(key string, decoder *json.Decoder) error) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("must be an object")
	}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("object key must be a string")
		}
		if err := member(key, decoder); err != nil {
			return err
		}
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	return nil
}

// walkYAMLMapping visits the key/value pairs of a mapping node in order.
func walkYAMLMapping(node *yaml.Node, pair func(key string, value *yaml.Node) error) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("must be a mapping (line %d)", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveAlias(node.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("mapping key must be a string (line %d)", keyNode.Line)
		}
		if err := pair(keyNode.Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// yamlValue converts a YAML node into the shapes encoding/json produces so
// both formats go through the same schema. Scalars keep their resolved type.
func yamlValue(node *yaml.Node) (any, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.MappingNode:
		fields := make(map[string]any, len(node.Content)/2)
		err := walkYAMLMapping(node, func(key string, value *yaml.Node) error {
			converted, err := yamlValue(value)
			if err != nil {
				return err
			}
			fields[key] = converted
			return nil
		})
		return fields, err
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			converted, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, converted)
		}
		return items, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return node.Value, nil
		case "!!null":
			return nil, nil
		case "!!bool":
			var value bool
			err := node.Decode(&value)
			return value, err
		case "!!int", "!!float":
			var value float64
			err := node.Decode(&value)
			return value, err
		default:
			return nil, fmt.Errorf("unsupported %s value (line %d)", node.ShortTag(), node.Line)
		}
	default:
		return nil, fmt.Errorf("unsupported node (line %d)", node.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// upsertTopic keeps the first position of a repeated key and its last value.
func upsertTopic(topics []Topic, topic Topic) []Topic {
	for i := range topics {
		if topics[i].Name == topic.Name {
			topics[i] = topic
			return topics
		}
	}
	return append(topics, topic)
}

func upsertEntry(entries []Entry, entry Entry) []Entry {
	for i := range entries {
		if entries[i].Prompt == entry.Prompt {
			entries[i] = entry
			return entries
		}
	}
	return append(entries, entry)
}
