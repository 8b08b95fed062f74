package domain

import "testing"

func TestTemplateContext_System(t *testing.T) {
	systems := parseAndResolve(t, "00 Home\n\t00-09 Management\n")

	ctx := TemplateContext(systems[0], ".")
	if ctx["id"] != "00" {
		t.Errorf("expected id 00, got %v", ctx["id"])
	}
	if ctx["name"] != "Home" || ctx["topic"] != "Home" {
		t.Errorf("expected name and topic Home, got name=%v topic=%v", ctx["name"], ctx["topic"])
	}
	if _, ok := ctx["start"]; ok {
		t.Error("system context must not carry a range start")
	}
}

func TestTemplateContext_AreaRange(t *testing.T) {
	systems := parseAndResolve(t, "00 Home\n\t00-09 Management\n")

	ctx := TemplateContext(systems[0].Children[0], ".")
	if ctx["start"] != "00" || ctx["end"] != "09" {
		t.Errorf("expected zero-padded 00..09, got %v..%v", ctx["start"], ctx["end"])
	}
	if _, ok := ctx["name"]; ok {
		t.Error("area context must not carry a system name")
	}
}

func TestTemplateContext_KindAndSeparator(t *testing.T) {
	systems := parseAndResolve(t, "00 Home\n\t10-19 Tech\n\t\t10 -Notes\n")

	ctx := TemplateContext(systems[0].Children[0].Children[0], "/")
	if ctx["id"] != "10/10" {
		t.Errorf("expected id 10/10, got %v", ctx["id"])
	}
	if ctx["kind"] != "Note" {
		t.Errorf("expected kind Note, got %v", ctx["kind"])
	}
}
