package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load parses a YAML configuration from r and applies it on top of Default.
//
// Every key present in the document is translated into the matching With call,
// so the result obeys the same domain rules as a Config built in code. Keys that
// are absent keep their default. Folding overrides live under a nested "folding"
// mapping, where "default" is the global line folding:
//
//	indentation: 2
//	dialect: clickhouse
//	folding:
//	  default: FOLD
//	  select: CHOP
//
// An empty document yields Default(). Unknown keys, malformed values and values
// outside a field's domain are reported with the offending line.
func Load(r io.Reader) (Config, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, errors.Wrap(err, "failed to unmarshal sqlfold config")
	}

	cfg, err := applyDocument(Default(), &doc)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to load sqlfold config")
	}

	return cfg, nil
}

// LoadFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls Load.
//
// Example:
//
//	cfg, err := config.LoadFile("sqlfold.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Marshal renders c in the format read by Load. Unset folding overrides and a nil
// dialect are omitted, so Load(Marshal(c)) is equal to c.
//
// Two cases do not survive the trip. Enum values outside the declared ones are
// omitted, so Load restores the default in their place, which resolves the same
// way. A dialect is written by its Name, and Load can only resolve the names of
// the dialect package's catalogue; a custom dialect has to be set again with
// WithDialect after loading.
func Marshal(c Config) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	folding := &yaml.Node{Kind: yaml.MappingNode}

	for _, f := range fields {
		value, ok := f.get(c)
		if !ok {
			continue
		}

		if strings.HasPrefix(f.key, FoldingPrefix) {
			if len(folding.Content) == 0 {
				root.Content = append(root.Content, keyNode("folding"), folding)
			}
			folding.Content = append(folding.Content, keyNode(strings.TrimPrefix(f.key, FoldingPrefix)), valueNode(f.kind, value))
			continue
		}

		root.Content = append(root.Content, keyNode(f.key), valueNode(f.kind, value))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Wrap(err, "failed to marshal sqlfold config")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to marshal sqlfold config")
	}

	return buf.Bytes(), nil
}

func applyDocument(c Config, doc *yaml.Node) (Config, error) {
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if isNull(node) {
		return c, nil
	}

	return applyMapping(c, node, "")
}

func applyMapping(c Config, node *yaml.Node, prefix string) (Config, error) {
	if node.Kind != yaml.MappingNode {
		return c, errors.Errorf("line %d: expected a mapping", node.Line)
	}

	var err error
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		name := prefix + key.Value

		if prefix == "" && key.Value == "folding" {
			if isNull(value) {
				continue
			}
			if c, err = applyMapping(c, value, FoldingPrefix); err != nil {
				return c, err
			}
			continue
		}

		if value.Kind != yaml.ScalarNode {
			return c, errors.Errorf("line %d: %s: expected a scalar value", value.Line, name)
		}

		text := value.Value
		if isNull(value) {
			text = ""
		}

		if c, err = Set(c, name, text); err != nil {
			return c, errors.Wrapf(err, "line %d", key.Line)
		}
	}

	return c, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func valueNode(kind valueKind, value string) *yaml.Node {
	tag := "!!str"
	switch kind {
	case kindBool:
		tag = "!!bool"
	case kindInt:
		tag = "!!int"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
