package endpoint

import (
	"bytes"
	"strings"
	"testing"
)

func TestMultipartAddField(t *testing.T) {
	// Setup
	m := NewMultipartWithBoundary("X")
	m.AddField("a", "b")

	// Exercise
	actual := m.Finalize()

	// Verify: byte-exact framing
	expected := "--X\r\nContent-Disposition: form-data; name=\"a\"\r\n\r\nb\r\n--X--"
	if string(actual) != expected {
		t.Errorf("unexpected bytes: expected=%q, actual=%q", expected, actual)
	}
}

func TestMultipartAddFile(t *testing.T) {
	// Setup
	data := []byte{0x00, 0xff, 0x10} // binary-safe, copied verbatim
	m := NewMultipartWithBoundary("B")
	m.AddFile("photo", "cat.png", "image/png", data)

	// Exercise
	actual := m.Finalize()

	// Verify
	var expected bytes.Buffer
	expected.WriteString("--B\r\n")
	expected.WriteString("Content-Disposition: form-data; name=\"photo\"; filename=\"cat.png\"\r\n")
	expected.WriteString("Content-Type: image/png\r\n")
	expected.WriteString("\r\n")
	expected.Write(data)
	expected.WriteString("\r\n--B--")
	if !bytes.Equal(expected.Bytes(), actual) {
		t.Errorf("unexpected bytes: expected=%q, actual=%q", expected.Bytes(), actual)
	}
}

func TestMultipartFinalizeIsIdempotent(t *testing.T) {
	m := NewMultipartWithBoundary("X")
	m.AddField("a", "b")

	first := m.Finalize()
	second := m.Finalize()
	if !bytes.Equal(first, second) {
		t.Errorf("finalize mutated state: first=%q, second=%q", first, second)
	}
}

func TestMultipartContentType(t *testing.T) {
	m := NewMultipartWithBoundary("X")
	expected := "multipart/form-data; boundary=X"
	if m.ContentType() != expected {
		t.Errorf("unexpected content type: expected=%q, actual=%q", expected, m.ContentType())
	}
}

func TestMultipartRandomBoundary(t *testing.T) {
	a := NewMultipart()
	b := NewMultipart()
	if a.Boundary() == "" || a.Boundary() == b.Boundary() {
		t.Errorf("boundaries should be distinct opaque tokens: a=%q, b=%q", a.Boundary(), b.Boundary())
	}
	if strings.ContainsAny(a.Boundary(), "\r\n") {
		t.Errorf("boundary contains line breaks: %q", a.Boundary())
	}
}
