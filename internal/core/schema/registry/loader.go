package registry

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/entitystore/internal/core/models"
)

// Document is the YAML form of a schema file.
type Document struct {
	Kinds []KindDocument `yaml:"kinds"`
}

type KindDocument struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Properties  []PropertyDocument `yaml:"properties"`
}

type PropertyDocument struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

// DecodeDocument decodes a schema document without building descriptors.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Descriptors builds one descriptor per kind in document order.
func (doc *Document) Descriptors() ([]*Descriptor, error) {
	out := make([]*Descriptor, 0, len(doc.Kinds))
	for _, k := range doc.Kinds {
		props := make([]PropertySchema, 0, len(k.Properties))
		for _, p := range k.Properties {
			t, err := ParseFieldType(p.Type)
			if err != nil {
				return nil, fmt.Errorf("kind %q property %q: %w", k.Name, p.Name, err)
			}
			props = append(props, PropertySchema{Name: p.Name, Type: t, Description: p.Description})
		}
		d, err := NewDescriptor(models.Kind(k.Name), props...)
		if err != nil {
			return nil, err
		}
		out = append(out, d.WithDescription(k.Description))
	}
	return out, nil
}

// LoadYAML reads a schema document and returns its descriptors.
func LoadYAML(r io.Reader) ([]*Descriptor, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}
	return doc.Descriptors()
}
