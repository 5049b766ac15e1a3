package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-lumamod/pix/raster"
)

func writePNG(t *testing.T, path string, buf *raster.Buffer) {
	t.Helper()
	data, err := buf.PNG()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestModulateCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "white.png")
	writePNG(t, in, mustFilled(t, 4, 4, 255))

	outPath := filepath.Join(dir, "mod.png")
	histPath := filepath.Join(dir, "hist.png")
	origPath := filepath.Join(dir, "orig.png")

	out, err := run(t, "modulate", "-i", in, "-a", "y", "-f", "sin", "-p", "4",
		"-o", outPath, "--histogram", histPath, "--original", origPath)
	if err != nil {
		t.Fatalf("modulate: %v", err)
	}
	if !strings.Contains(out, "axis=y wave=sin period=4") {
		t.Fatalf("summary missing params:\n%s", out)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	mod, err := raster.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	for y, want := range []uint8{128, 255, 128, 0} {
		if r, _, _ := mod.At(2, y); r != want {
			t.Fatalf("row %d = %d, want %d", y, r, want)
		}
	}

	for _, p := range []string{histPath, origPath} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Fatalf("%s not written: %v", p, err)
		}
	}
}

func TestModulateCommandRejectsPeriod(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "gray.png")
	writePNG(t, in, mustFilled(t, 2, 2, 128))

	if _, err := run(t, "modulate", "-i", in, "-p", "1", "-o", filepath.Join(dir, "o.png"), "--histogram", ""); err == nil {
		t.Fatal("expected error for period 1")
	}
}

func TestCompareAndStatsCommands(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writePNG(t, a, mustFilled(t, 8, 8, 200))
	writePNG(t, b, mustFilled(t, 8, 8, 50))

	hist := filepath.Join(dir, "h.png")
	out, err := run(t, "compare", "--original", a, "--modulated", b, "-o", hist)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "original") || !strings.Contains(out, "modulated") {
		t.Fatalf("compare output:\n%s", out)
	}
	if _, err := os.Stat(hist); err != nil {
		t.Fatalf("histogram not written: %v", err)
	}

	out, err = run(t, "stats", "-i", a, "-a", "y")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "none") {
		t.Fatalf("flat image should have no dominant period:\n%s", out)
	}
}

func TestSetupLoggingRejectsLevel(t *testing.T) {
	if err := setupLogging(&bytes.Buffer{}, "loud", false); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := setupLogging(&bytes.Buffer{}, "warn", true); err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
}

func mustFilled(t *testing.T, h, w int, v uint8) *raster.Buffer {
	t.Helper()
	buf, err := raster.Filled(h, w, v, v, v)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}
