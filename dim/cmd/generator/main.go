// Code generator for dim exponent marker types.
// Emits one zero-size type per integer exponent in [-max, max].

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

var (
	maxExp = flag.Int("max", 12, "largest absolute exponent")
	output = flag.String("o", "exponents_gen.go", "output file")
	pkg    = flag.String("pkg", "dim", "package name")
)

func main() {
	flag.Parse()

	gen := &Generator{
		Package: *pkg,
		Max:     *maxExp,
	}

	src, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Generator renders the exponent marker file.
type Generator struct {
	Package string
	Max     int
}

// Marker is one generated exponent type.
type Marker struct {
	Name  string
	Value int
}

// Markers returns the marker types in ascending exponent order.
func (g *Generator) Markers() []Marker {
	markers := make([]Marker, 0, 2*g.Max+1)
	for v := -g.Max; v <= g.Max; v++ {
		markers = append(markers, Marker{Name: MarkerName(v), Value: v})
	}
	return markers
}

// MarkerName returns the type name used for exponent v.
func MarkerName(v int) string {
	switch {
	case v < 0:
		return fmt.Sprintf("Neg%d", -v)
	case v > 0:
		return fmt.Sprintf("Pos%d", v)
	default:
		return "Zero"
	}
}

// Generate returns the gofmt-ed source.
func (g *Generator) Generate() ([]byte, error) {
	if g.Max < 1 {
		return nil, fmt.Errorf("max must be positive, got %d", g.Max)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, g); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}

var fileTemplate = template.Must(template.New("exponents").Parse(`// Code generated by dim/cmd/generator; DO NOT EDIT.

package {{.Package}}

// MaxExponent is the largest absolute exponent that has a marker type.
const MaxExponent = {{.Max}}
{{range .Markers}}
// {{.Name}} is the exponent {{.Value}}.
type {{.Name}} struct{}

func ({{.Name}}) Value() int { return {{.Value}} }
func ({{.Name}}) exponent() {}
{{end}}
var exponentNames = [...]string{
{{- range .Markers}}
	"{{.Name}}",
{{- end}}
}
`))
