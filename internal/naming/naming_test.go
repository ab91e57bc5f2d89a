package naming

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"jpg keeps extension", "a.jpg", "a.jpg"},
		{"jpeg keeps extension", "photo.jpeg", "photo.jpeg"},
		{"png keeps extension", "b.png", "b.png"},
		{"bmp keeps extension", "scan.bmp", "scan.bmp"},
		{"tiff keeps extension", "plate.tiff", "plate.tiff"},
		{"webp becomes png", "clip.webp", "clip.png"},
		{"webp uppercase becomes png", "CLIP.WEBP", "CLIP.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath("out", tt.filename)
			want := filepath.Join("out", tt.want)
			if got != want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.filename, got, want)
			}
		})
	}
}

func TestReencoded(t *testing.T) {
	if !Reencoded("clip.webp") {
		t.Error("Reencoded(clip.webp) should be true")
	}
	if !Reencoded("CLIP.WebP") {
		t.Error("Reencoded(CLIP.WebP) should be true")
	}
	if Reencoded("a.jpg") || Reencoded("b.png") {
		t.Error("Reencoded should be false for jpg/png")
	}
}

func TestCollisionResolver_NoCollision(t *testing.T) {
	cr := NewCollisionResolver()
	got := cr.Resolve("in/a.jpg", "out/a.jpg")
	if got != "out/a.jpg" {
		t.Errorf("Resolve() = %q, want unchanged path", got)
	}
}

func TestCollisionResolver_SameInputIsIdempotent(t *testing.T) {
	cr := NewCollisionResolver()
	first := cr.Resolve("in/a.jpg", "out/a.jpg")
	second := cr.Resolve("in/a.jpg", "out/a.jpg")
	if first != second {
		t.Errorf("Resolve() for same input differs: %q vs %q", first, second)
	}
}

func TestCollisionResolver_WebpVsPng(t *testing.T) {
	cr := NewCollisionResolver()
	out := filepath.Join("out", "photo.png")

	first := cr.Resolve("in/photo.png", out)
	if first != out {
		t.Fatalf("first Resolve() = %q, want %q", first, out)
	}

	second := cr.Resolve("in/photo.webp", out)
	want := filepath.Join("out", "photo_2.png")
	if second != want {
		t.Errorf("second Resolve() = %q, want %q", second, want)
	}
}

func TestCollisionResolver_ThreeWay(t *testing.T) {
	cr := NewCollisionResolver()
	out := "out/x.png"

	a := cr.Resolve("a", out)
	b := cr.Resolve("b", out)
	c := cr.Resolve("c", out)

	if a == b || b == c || a == c {
		t.Errorf("collisions not unique: %q %q %q", a, b, c)
	}
	if b != filepath.Join("out", "x_2.png") || c != filepath.Join("out", "x_3.png") {
		t.Errorf("suffix sequence wrong: %q %q", b, c)
	}
}
