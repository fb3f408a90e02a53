package hints

// Notes:
// - ForInputNotFound tests that swap IsGoRunBuild cannot use t.Parallel()
//   because they modify a package-level variable.

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestForInputNotFound_GoRun(t *testing.T) {
	orig := IsGoRunBuild
	defer func() { IsGoRunBuild = orig }()
	IsGoRunBuild = func(string) bool { return true }

	hint := ForInputNotFound("/tmp/go-build123/b001/exe", true)

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want hint prefix", hint)
	}
	if !strings.Contains(hint, "--dir .") {
		t.Errorf("hint = %q, want go run suggestion", hint)
	}
	if !strings.Contains(hint, "--input") {
		t.Errorf("hint = %q, want --input suggestion", hint)
	}
}

func TestForInputNotFound_ExplicitDir(t *testing.T) {
	orig := IsGoRunBuild
	defer func() { IsGoRunBuild = orig }()
	IsGoRunBuild = func(string) bool { return true }

	hint := ForInputNotFound("/tmp/go-build123/b001/exe", false)

	if strings.Contains(hint, "go run") {
		t.Errorf("hint = %q, should not mention go run for an explicit dir", hint)
	}
	if !strings.Contains(hint, "--dir") {
		t.Errorf("hint = %q, want --dir suggestion", hint)
	}
}

func TestIsGoRunBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  string
		want bool
	}{
		{"/tmp/go-build2948/b001/exe", true},
		{"/usr/local/bin", false},
		{"/home/dev/site", false},
	}

	for _, tt := range tests {
		if got := IsGoRunBuild(tt.dir); got != tt.want {
			t.Errorf("IsGoRunBuild(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestForAssetNotFound(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("case-insensitive filesystems cannot hold the mismatched name")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Logo_V2.png"), []byte("png"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	hint := ForAssetNotFound(dir, "logo_v2.png")
	if !strings.Contains(hint, "found Logo_V2.png") {
		t.Errorf("hint = %q, want case mismatch suggestion", hint)
	}

	if got := ForAssetNotFound(dir, "MokotoRegular.ttf"); got != "" {
		t.Errorf("ForAssetNotFound(unrelated) = %q, want empty", got)
	}

	if got := ForAssetNotFound(filepath.Join(dir, "missing"), "logo_v2.png"); got != "" {
		t.Errorf("ForAssetNotFound(missing dir) = %q, want empty", got)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"bundle.yaml", "/home/u/.config/go-htmlbundle/bundle.yaml"})
		if !strings.Contains(hint, "--config") {
			t.Errorf("hint = %q, want --config suggestion", hint)
		}
		if !strings.Contains(hint, "create /home/u/.config/go-htmlbundle/bundle.yaml") {
			t.Errorf("hint = %q, want user path suggestion", hint)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"bundle.yaml"})
		if strings.Contains(hint, "create") {
			t.Errorf("hint = %q, should not suggest creating a file", hint)
		}
	})
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"ForUnresolved":  ForUnresolved(),
		"ForOutputWrite": ForOutputWrite(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s() = %q, want hint prefix", name, hint)
		}
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q, want %q", got, "\n  hint: a; b")
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
