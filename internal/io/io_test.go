package ioutils

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "b.mp3", "b")
	writeTestFile(t, dir, "a.mp3", "a")
	writeTestFile(t, dir, "cover.jpg", "c")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := strings.Join(names, ","), "a.mp3,b.mp3,cover.jpg"; got != want {
		t.Errorf("ListFiles() = %q, want %q", got, want)
	}
}

func TestRenameFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeTestFile(t, dir, "artist-1-song.mp3", "song")
	writeTestFile(t, dir, "taken.mp3", "other")

	if err := RenameFile(ctx, dir, "artist-1-song.mp3", "Artist - 01 - Song.mp3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Artist - 01 - Song.mp3"))
	if err != nil || string(data) != "song" {
		t.Errorf("renamed file content = %q, %v", data, err)
	}

	err = RenameFile(ctx, dir, "Artist - 01 - Song.mp3", "taken.mp3")
	if !errors.Is(err, ErrTargetExists) {
		t.Errorf("RenameFile onto existing file error = %v, want ErrTargetExists", err)
	}
	data, _ = os.ReadFile(filepath.Join(dir, "taken.mp3"))
	if string(data) != "other" {
		t.Error("existing file was overwritten")
	}

	if err := RenameFile(ctx, dir, "taken.mp3", "taken.mp3"); err != nil {
		t.Errorf("same-name rename error = %v", err)
	}
}

func TestRenameFile_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.mp3", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RenameFile(ctx, dir, "a.mp3", "b.mp3"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.mp3")); err != nil {
		t.Error("file should not have been renamed")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Artist - 01 - Song.mp3", "Artist - 01 - Song.mp3"},
		{"AC/DC - 01 - T.N.T.mp3", "AC_DC - 01 - T.N.T.mp3"},
		{"What? - 02 - Why.mp3", "What_ - 02 - Why.mp3"},
		{"Track...", "Track"},
		{"Name   with  spaces", "Name with spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImageService_DetectImage(t *testing.T) {
	svc := NewImageService()

	mime, err := svc.DetectImage(testPNG(t, 4, 4))
	if err != nil || mime != "image/png" {
		t.Errorf("DetectImage(png) = %q, %v", mime, err)
	}

	if _, err := svc.DetectImage([]byte("ID3 not an image")); !errors.Is(err, ErrNotImage) {
		t.Errorf("DetectImage(text) error = %v, want ErrNotImage", err)
	}
}

func TestImageService_LoadCover(t *testing.T) {
	ctx := context.Background()
	svc := NewImageService()
	dir := t.TempDir()
	writeTestFile(t, dir, "cover.jpg", "not really a jpeg")
	if err := os.WriteFile(filepath.Join(dir, "folder.png"), testPNG(t, 8, 8), 0644); err != nil {
		t.Fatal(err)
	}

	_, name, err := svc.LoadCover(ctx, dir, []string{"missing.jpg", "cover.jpg", "folder.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "folder.png" {
		t.Errorf("LoadCover() used %q, want %q", name, "folder.png")
	}

	if _, _, err := svc.LoadCover(ctx, dir, []string{"missing.jpg"}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadCover(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestImageService_ResizeImage(t *testing.T) {
	ctx := context.Background()
	svc := NewImageService()

	small := testPNG(t, 10, 10)
	got, err := svc.ResizeImage(ctx, small, 20, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, small) {
		t.Error("image within bounds should be returned unchanged")
	}

	resized, err := svc.ResizeImage(ctx, testPNG(t, 40, 20), 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("decode resized: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("resized format = %q, want jpeg", format)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Errorf("resized bounds = %dx%d, want 10x5", b.Dx(), b.Dy())
	}
}

func TestImageService_ResizeImageExtremeAspect(t *testing.T) {
	resized, err := NewImageService().ResizeImage(context.Background(), testPNG(t, 300, 1), 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("decode resized: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 1 {
		t.Errorf("resized bounds = %dx%d, want 10x1", b.Dx(), b.Dy())
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Artist", "Album")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() unexpected error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Errorf("EnsureDir(%q) did not create a directory: %v", path, err)
	}
	if err := EnsureDir(path); err != nil {
		t.Errorf("EnsureDir() on existing directory: %v", err)
	}
}

func TestImageService_ConvertToJPEG(t *testing.T) {
	svc := NewImageService()

	out, err := svc.ConvertToJPEG(context.Background(), testPNG(t, 6, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mime, err := svc.DetectImage(out); err != nil || mime != "image/jpeg" {
		t.Errorf("ConvertToJPEG() produced %q, %v", mime, err)
	}
}
