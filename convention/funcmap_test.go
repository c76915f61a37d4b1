package convention

import (
	"bytes"
	"strings"
	"testing"
	"text/template"
)

func renderWith(t *testing.T, funcs template.FuncMap, text string, data any) string {
	t.Helper()

	tmpl, err := template.New("test").Funcs(funcs).Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestFuncMapHelpers(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`{{ snake . }}`, "my_example_name"},
		{`{{ pascal . }}`, "MyExampleName"},
		{`{{ screamingSnake . }}`, "MY_EXAMPLE_NAME"},
		{`{{ kebab . }}`, "my-example-name"},
		{`{{ train . }}`, "My-Example-Name"},
		{`{{ if follows "CamelCase" . }}yes{{ end }}`, "yes"},
		{`{{ convert "TrainCase" . }}`, "My-Example-Name"},
	}

	funcs := FuncMap(CamelCase)
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := renderWith(t, funcs, tt.text, "myExampleName")
			if got != tt.want {
				t.Errorf("rendered %q; want %q", got, tt.want)
			}
		})
	}
}

func TestFuncMapFromCustomRegistry(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register(ByChar("DotCase", '.', false, false, false)); err != nil {
		t.Fatal(err)
	}

	funcs := FuncMapFrom(reg, CamelCase)
	got := renderWith(t, funcs, `{{ convert "DotCase" . }}`, "myExampleName")
	if got != "my.example.name" {
		t.Errorf("rendered %q; want %q", got, "my.example.name")
	}
}

func TestFuncMapUnknownConvention(t *testing.T) {
	funcs := FuncMap(CamelCase)

	tmpl, err := template.New("test").Funcs(funcs).Parse(`{{ convert "NoSuchConvention" . }}`)
	if err != nil {
		t.Fatal(err)
	}
	execErr := tmpl.Execute(&bytes.Buffer{}, "myExampleName")
	if execErr == nil || !strings.Contains(execErr.Error(), "NoSuchConvention") {
		t.Errorf("got %v; want an unknown-convention error", execErr)
	}
}
