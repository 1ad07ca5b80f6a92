package palette

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestFromThemeIsDeterministic(t *testing.T) {
	a := FromTheme("monokai")
	b := FromTheme("monokai")
	if a != b {
		t.Fatalf("palettes differ: %+v vs %+v", a, b)
	}
	for name, c := range map[string]string{
		"Bg": a.Bg, "Fg": a.Fg, "Border": a.Border, "Bar": a.Bar,
		"Dim": a.Dim, "Muted": a.Muted, "Accent": a.Accent, "Error": a.Error,
	} {
		if !hexColor.MatchString(c) {
			t.Errorf("%s = %q, not a #rrggbb color", name, c)
		}
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	if got := FromTheme("no-such-theme"); got != Default() {
		t.Fatalf("got %+v", got)
	}
	if Known("no-such-theme") {
		t.Fatal("Known reported a missing theme")
	}
	if !Known("monokai") {
		t.Fatal("monokai should be known")
	}
}

func TestLerpHex(t *testing.T) {
	tests := []struct {
		a, b string
		t    float64
		want string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#c8c8c8", 0.5, "#646464"},
		{"#102030", "#102030", 0.3, "#102030"},
	}
	for _, tt := range tests {
		if got := lerpHex(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("lerpHex(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestSaturation(t *testing.T) {
	if s := saturation("#ff0000"); s != 1 {
		t.Errorf("red saturation = %v", s)
	}
	if s := saturation("#808080"); s != 0 {
		t.Errorf("gray saturation = %v", s)
	}
	if s := saturation("#000000"); s != 0 {
		t.Errorf("black saturation = %v", s)
	}
}
