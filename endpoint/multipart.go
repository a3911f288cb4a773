package endpoint

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Multipart accumulates multipart/form-data parts into a byte buffer framed
// by a boundary. It is append-only and must not be shared across concurrent
// requests; each request builds its own. The boundary must not appear inside
// any part's content, which is the caller's responsibility.
type Multipart struct {
	boundary string
	buf      bytes.Buffer
}

// NewMultipart creates an accumulator with a random boundary token.
func NewMultipart() *Multipart {
	return NewMultipartWithBoundary(randomBoundary())
}

func NewMultipartWithBoundary(boundary string) *Multipart {
	return &Multipart{boundary: boundary}
}

func randomBoundary() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

func (m *Multipart) Boundary() string {
	return m.boundary
}

// ContentType returns the value to use for the Content-Type header.
func (m *Multipart) ContentType() string {
	return "multipart/form-data; boundary=" + m.boundary
}

// AddField appends a text part named name with the literal value.
func (m *Multipart) AddField(name, value string) {
	m.openPart(fmt.Sprintf(`Content-Disposition: form-data; name="%s"`, name))
	m.buf.WriteString(value)
	m.buf.WriteString("\r\n")
}

// AddFile appends a file part. The data bytes are copied verbatim, so
// binary content survives unmodified.
func (m *Multipart) AddFile(name, fileName, mimeType string, data []byte) {
	m.openPart(
		fmt.Sprintf(`Content-Disposition: form-data; name="%s"; filename="%s"`, name, fileName),
		"Content-Type: "+mimeType,
	)
	m.buf.Write(data)
	m.buf.WriteString("\r\n")
}

func (m *Multipart) openPart(headerLines ...string) {
	m.buf.WriteString("--")
	m.buf.WriteString(m.boundary)
	m.buf.WriteString("\r\n")
	for _, line := range headerLines {
		m.buf.WriteString(line)
		m.buf.WriteString("\r\n")
	}
	m.buf.WriteString("\r\n")
}

// Finalize returns the accumulated parts followed by the closing boundary
// marker. It does not mutate the accumulator, so calling it again yields
// the same bytes plus any parts added in between.
func (m *Multipart) Finalize() []byte {
	out := make([]byte, 0, m.buf.Len()+len(m.boundary)+4)
	out = append(out, m.buf.Bytes()...)
	out = append(out, "--"...)
	out = append(out, m.boundary...)
	out = append(out, "--"...)
	return out
}
