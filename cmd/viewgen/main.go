// viewgen turns a YAML component schema into typed component views.
//
//	//go:generate go run ../../cmd/viewgen -in components.yaml -out views_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/zeusync/entitystore/internal/core/schema/registry"
)

type propertyInfo struct {
	Name        string
	GoName      string
	GoType      string
	FieldType   string
	Description string
	Var         string
}

type kindInfo struct {
	Kind        string
	GoName      string
	Description string
	Properties  []propertyInfo
}

type fileInfo struct {
	Package  string
	Source   string
	NeedsVec bool
	Kinds    []kindInfo
}

var fieldTypeConsts = map[registry.FieldType]string{
	registry.FieldTypeAny:    "registry.FieldTypeAny",
	registry.FieldTypeBool:   "registry.FieldTypeBool",
	registry.FieldTypeInt:    "registry.FieldTypeInt",
	registry.FieldTypeFloat:  "registry.FieldTypeFloat",
	registry.FieldTypeString: "registry.FieldTypeString",
	registry.FieldTypeVec3:   "registry.FieldTypeVec3",
	registry.FieldTypeBytes:  "registry.FieldTypeBytes",
}

// reserved method names on generated views.
var reserved = map[string]bool{"View": true, "Entity": true, "Save": true}

func main() {
	in := flag.String("in", "", "schema file")
	out := flag.String("out", "", "output file (default <in>_gen.go)")
	pkg := flag.String("package", os.Getenv("GOPACKAGE"), "package name")
	flag.Parse()

	if *in == "" {
		*in = os.Getenv("GOFILE")
	}
	if *in == "" || *pkg == "" {
		fmt.Fprintln(os.Stderr, "viewgen: -in and -package are required")
		os.Exit(2)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, filepath.Ext(*in)) + "_gen.go"
	}

	if err := run(*in, *out, *pkg); err != nil {
		fmt.Fprintln(os.Stderr, "viewgen:", err)
		os.Exit(1)
	}
}

func run(in, out, pkg string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	doc, err := registry.DecodeDocument(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}
	code, err := render(doc, pkg, filepath.Base(in))
	if err != nil {
		return err
	}
	return os.WriteFile(out, code, 0o644)
}

func render(doc *registry.Document, pkg, source string) ([]byte, error) {
	// validates names, types and duplicates the same way the registry will
	descriptors, err := doc.Descriptors()
	if err != nil {
		return nil, err
	}
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%s declares no kinds", source)
	}

	info := fileInfo{Package: pkg, Source: source}
	for _, d := range descriptors {
		k := kindInfo{
			Kind:        string(d.Kind()),
			GoName:      goName(string(d.Kind())),
			Description: d.Description(),
		}
		for _, p := range d.Properties() {
			name := goName(p.Name)
			if reserved[name] {
				return nil, fmt.Errorf("kind %q: property %q clashes with a view method", d.Kind(), p.Name)
			}
			if p.Type == registry.FieldTypeVec3 {
				info.NeedsVec = true
			}
			k.Properties = append(k.Properties, propertyInfo{
				Name:        p.Name,
				GoName:      name,
				GoType:      p.Type.GoType(),
				FieldType:   fieldTypeConsts[p.Type],
				Description: p.Description,
				Var:         lowerFirst(k.GoName) + name,
			})
		}
		info.Kinds = append(info.Kinds, k)
	}

	var buf bytes.Buffer
	if err = fileTemplate.Execute(&buf, info); err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w\n%s", err, buf.String())
	}
	return formatted, nil
}

// goName converts snake, kebab or dotted names to exported camel case.
func goName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	var b strings.Builder
	for _, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var fileTemplate = template.Must(template.New("views").Parse(`// Code generated by viewgen from {{ .Source }}. DO NOT EDIT.

package {{ .Package }}

import (
{{- if .NeedsVec }}
	"github.com/go-gl/mathgl/mgl64"
{{ end }}
	"github.com/zeusync/entitystore/internal/core/component"
	"github.com/zeusync/entitystore/internal/core/models"
	"github.com/zeusync/entitystore/internal/core/schema/registry"
	"github.com/zeusync/entitystore/internal/core/store"
)

const (
{{- range .Kinds }}
	{{ .GoName }}Kind models.Kind = "{{ .Kind }}"
{{- end }}
)

// Descriptors returns the descriptors of every kind in {{ .Source }}.
func Descriptors() []*registry.Descriptor {
	return []*registry.Descriptor{
{{- range .Kinds }}
		{{ .GoName }}Descriptor,
{{- end }}
	}
}

// Register adds every kind in {{ .Source }} to r.
func Register(r *registry.Registry) error {
	return r.RegisterAll(Descriptors()...)
}
{{ range $k := .Kinds }}
// {{ $k.GoName }}Descriptor is the schema of the {{ $k.Kind }} component.
var {{ $k.GoName }}Descriptor = registry.MustDescriptor({{ $k.GoName }}Kind,
{{- range $k.Properties }}
	registry.PropertySchema{Name: "{{ .Name }}", Type: {{ .FieldType }}{{ if .Description }}, Description: {{ printf "%q" .Description }}{{ end }}},
{{- end }}
){{ if $k.Description }}.WithDescription({{ printf "%q" $k.Description }}){{ end }}

var (
{{- range $k.Properties }}
	{{ .Var }} = component.NewProperty[{{ .GoType }}]("{{ .Name }}").Bind({{ $k.GoName }}Descriptor)
{{- end }}
)

// {{ $k.GoName }} is the typed view of the {{ $k.Kind }} component.{{ if $k.Description }}
// {{ $k.Description }}{{ end }}
type {{ $k.GoName }} struct {
	view *component.View
}

// As{{ $k.GoName }} wraps v. It panics if v is not a {{ $k.Kind }} view.
func As{{ $k.GoName }}(v *component.View) {{ $k.GoName }} {
	if v == nil || v.Kind() != {{ $k.GoName }}Kind {
		panic("{{ $.Package }}: not a {{ $k.Kind }} view")
	}
	return {{ $k.GoName }}{view: v}
}

// Add{{ $k.GoName }} attaches {{ $k.Kind }} to e.
func Add{{ $k.GoName }}(s *store.Store, e models.EntityID) ({{ $k.GoName }}, error) {
	v, err := s.AddComponent(e, {{ $k.GoName }}Kind)
	if err != nil {
		return {{ $k.GoName }}{}, err
	}
	return {{ $k.GoName }}{view: v}, nil
}

// Get{{ $k.GoName }} returns a view of the {{ $k.Kind }} component of e.
func Get{{ $k.GoName }}(s *store.Store, e models.EntityID) ({{ $k.GoName }}, bool) {
	v, ok := s.GetComponent(e, {{ $k.GoName }}Kind)
	if !ok {
		return {{ $k.GoName }}{}, false
	}
	return {{ $k.GoName }}{view: v}, true
}

// Save commits the pending writes of c.
func (c {{ $k.GoName }}) Save(s *store.Store) error {
	return s.SaveComponent(c.view.Entity(), {{ $k.GoName }}Kind, c.view)
}

func (c {{ $k.GoName }}) View() *component.View {
	return c.view
}

func (c {{ $k.GoName }}) Entity() models.EntityID {
	return c.view.Entity()
}
{{ range $k.Properties }}
{{ if .Description }}// {{ .GoName }}: {{ .Description }}
{{ end -}}
func (c {{ $k.GoName }}) {{ .GoName }}() ({{ .GoType }}, bool) {
	return {{ .Var }}.Get(c.view)
}

func (c {{ $k.GoName }}) Set{{ .GoName }}(value {{ .GoType }}) error {
	return {{ .Var }}.Set(c.view, value)
}

func (c {{ $k.GoName }}) Clear{{ .GoName }}() error {
	return {{ .Var }}.Clear(c.view)
}
{{ end }}
{{- end }}`))
