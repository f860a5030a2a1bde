package codegen

import (
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/dop251/goja"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

func TestStylesheetDefault(t *testing.T) {
	out := Stylesheet(scrollbar.Default())
	for _, want := range []string{
		"background: #94a3b8;",
		"width: 8px;",
		"height: 8px;",
		"background: transparent;",
		"border-radius: 4px;",
		"background: #64748b;",
		"-ms-overflow-style: scrollbar;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stylesheet missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Custom CSS") {
		t.Errorf("unexpected custom css section:\n%s", out)
	}
}

func TestStylesheetUsesStoredValuesWhenHidden(t *testing.T) {
	cfg := scrollbar.Default()
	cfg.Visibility = scrollbar.VisibilityHidden
	cfg.Width = 12
	cfg.ThumbColor = "#ff0000"

	out := Stylesheet(cfg)
	if !strings.Contains(out, "width: 12px;") || !strings.Contains(out, "background: #ff0000;") {
		t.Errorf("hidden stylesheet should keep stored values:\n%s", out)
	}
	if !strings.Contains(out, "-ms-overflow-style: none;") {
		t.Errorf("hidden stylesheet should disable IE scrollbars:\n%s", out)
	}
}

func TestStylesheetParses(t *testing.T) {
	sheet, err := parser.Parse(Stylesheet(scrollbar.Default()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(sheet.Rules) != 5 {
		t.Fatalf("expected 5 rules, got %d", len(sheet.Rules))
	}

	decls := map[string]string{}
	for _, d := range sheet.Rules[0].Declarations {
		decls[d.Property] = d.Value
	}
	if !strings.Contains(sheet.Rules[0].Prelude, "-webkit-scrollbar") {
		t.Errorf("first rule prelude = %q", sheet.Rules[0].Prelude)
	}
	if decls["width"] != "8px" || decls["height"] != "8px" {
		t.Errorf("first rule declarations = %v", decls)
	}
}

func TestCustomCSSAppendedVerbatim(t *testing.T) {
	cfg := scrollbar.Default()
	cfg.CustomCSS = ".x { color: red } }}} not even css"

	for _, f := range Formats[:2] {
		out := Render(f, cfg)
		if !strings.HasSuffix(out, cfg.CustomCSS) {
			t.Errorf("%s output does not end with custom css:\n%s", f, out)
		}
	}
	if !strings.Contains(Script(cfg), `"customCSS": ".x { color: red } }}} not even css"`) {
		t.Errorf("script should serialize custom css:\n%s", Script(cfg))
	}
}

func TestVariableStylesheet(t *testing.T) {
	cfg := scrollbar.Default()
	cfg.ThumbRadius = 9
	out := VariableStylesheet(cfg)

	for _, v := range variables(cfg) {
		decl := v[0] + ": " + v[1] + ";"
		if !strings.Contains(out, decl) {
			t.Errorf("missing declaration %q", decl)
		}
		if strings.Count(out, v[0]) < 2 {
			t.Errorf("variable %s declared but never referenced", v[0])
		}
	}
	if !strings.Contains(out, "$scrollbar-thumb-radius: 9px;") {
		t.Errorf("thumb radius not rendered:\n%s", out)
	}
	if !strings.Contains(out, "&:hover") {
		t.Errorf("missing nested hover rule:\n%s", out)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	cfg := scrollbar.Random()
	for _, f := range Formats {
		if Render(f, cfg) != Render(f, cfg) {
			t.Errorf("%s output differs between calls", f)
		}
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ext  string
	}{
		{"css", CSS, ".css"},
		{"SCSS", SCSS, ".scss"},
		{"js", JS, ".js"},
		{"javascript", JS, ".js"},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if f != tt.want || f.Extension() != tt.ext {
			t.Errorf("ParseFormat(%q) = %s (%s)", tt.in, f, f.Extension())
		}
	}
	if _, err := ParseFormat("less"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if FileName(SCSS) != "scrollbar-styles.scss" {
		t.Errorf("FileName(SCSS) = %q", FileName(SCSS))
	}
}

// runScript executes the generated snippet against a stub document and
// returns the custom properties it set.
func runScript(t *testing.T, src string) map[string]string {
	t.Helper()
	vm := goja.New()
	_, err := vm.RunString(`
var props = {};
var document = { documentElement: { style: {
  setProperty: function (name, value) { props[name] = String(value); }
} } };`)
	if err != nil {
		t.Fatalf("prelude: %v", err)
	}
	if _, err := vm.RunString(src); err != nil {
		t.Fatalf("run script: %v\n%s", err, src)
	}
	out := map[string]string{}
	for k, v := range vm.Get("props").Export().(map[string]interface{}) {
		out[k] = v.(string)
	}
	return out
}

func TestScriptMatchesApplierProperties(t *testing.T) {
	configs := []scrollbar.Config{scrollbar.Default()}
	for _, p := range scrollbar.Presets() {
		configs = append(configs, p.Config)
	}
	hidden := scrollbar.Default()
	hidden.Visibility = scrollbar.VisibilityHidden
	hidden.Width = 12
	hidden.ThumbColor = "#ff0000"
	configs = append(configs, hidden)
	for i := 0; i < 20; i++ {
		configs = append(configs, scrollbar.Random())
	}

	for _, cfg := range configs {
		got := runScript(t, Script(cfg))
		want := cfg.Effective().CustomProperties()
		if len(got) != len(want) {
			t.Fatalf("script set %d properties, applier sets %d", len(got), len(want))
		}
		for _, p := range want {
			if got[p.Name] != p.Value {
				t.Errorf("config %+v: %s = %q from script, %q from applier", cfg, p.Name, got[p.Name], p.Value)
			}
		}
	}
}

func TestScriptHiddenScenario(t *testing.T) {
	cfg := scrollbar.Default()
	cfg.Visibility = scrollbar.VisibilityHidden
	cfg.Width = 12
	cfg.ThumbColor = "#ff0000"

	props := runScript(t, Script(cfg))
	if props[scrollbar.PropWidth] != "0px" {
		t.Errorf("width = %q, want 0px", props[scrollbar.PropWidth])
	}
	if props[scrollbar.PropThumbColor] != "transparent" {
		t.Errorf("thumb color = %q, want transparent", props[scrollbar.PropThumbColor])
	}
	if !strings.Contains(Script(cfg), `"width": 12`) {
		t.Errorf("serialized config should keep stored width")
	}
}
