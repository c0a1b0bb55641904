package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Flightly", "Dracula", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Flightly": "Dracula",
		"Dracula":  "Slate",
		"Slate":    "Flightly",
		"Unknown":  "Flightly",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Errorf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Flightly" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Flightly (fallback)", got)
	}
}

func TestThemesDefineAllColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Background": th.Background, "Surface": th.Surface,
			"SelectionBg": th.SelectionBg, "SelectionText": th.SelectionText,
			"Border": th.Border, "BorderFocus": th.BorderFocus,
			"Text": th.Text, "Muted": th.Muted, "Faint": th.Faint, "Accent": th.Accent,
			"Highlight": th.Highlight, "Success": th.Success, "Warning": th.Warning, "Danger": th.Danger,
		}
		for field, value := range colors {
			if value == "" {
				t.Errorf("theme %s: %s is empty", name, field)
			}
		}
	}
}
