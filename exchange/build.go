package exchange

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/tenkiya/tenki-go/endpoint"
)

// BuildHTTPRequest assembles a transport-ready request from an endpoint
// description: the absolute URL with its query string, the uppercased
// method, static headers, and at most one of a form, JSON, or multipart
// body with its Content-Type.
func BuildHTTPRequest(e *endpoint.Endpoint) (*http.Request, error) {
	u, err := buildURL(e)
	if err != nil {
		return nil, err
	}

	header := buildHTTPHeader(e)

	bodyTuple, err := buildHTTPBody(e)
	if err != nil {
		return nil, err
	}
	if bodyTuple.contentType != "" {
		header.Set("Content-Type", bodyTuple.contentType)
	}

	r := http.Request{
		Method:        strings.ToUpper(string(e.Method)),
		URL:           u,
		Header:        header,
		Host:          header.Get("Host"),
		ContentLength: int64(len(bodyTuple.body)),
	}
	if bodyTuple.body != nil {
		body := bodyTuple.body
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}
	return &r, nil
}

func buildURL(e *endpoint.Endpoint) (*url.URL, error) {
	rawurl := e.BaseURL + e.Path
	u, err := url.Parse(rawurl)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &InvalidURLError{URL: rawurl}
	}

	if items := e.Body.QueryItems(); len(items) > 0 {
		// Re-encode the whole query component so a bare '+' never reaches
		// the wire, including one already present in the path's query.
		u.RawQuery = strings.ReplaceAll(appendQuery(u.RawQuery, items), "+", "%2B")
		reparsed, err := url.Parse(u.String())
		if err != nil {
			return nil, &InvalidURLError{URL: u.String()}
		}
		u = reparsed
	}
	return u, nil
}

// appendQuery encodes items in order after any query string already present
// on the URL. Spaces become %20 and literal plus signs %2B, so servers
// cannot misread values that legitimately contain '+'.
func appendQuery(existing string, items []endpoint.QueryItem) string {
	var b strings.Builder
	b.WriteString(existing)
	for _, item := range items {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeQueryComponent(item.Name))
		b.WriteByte('=')
		b.WriteString(escapeQueryComponent(item.Value))
	}
	return b.String()
}

func escapeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func buildHTTPHeader(e *endpoint.Endpoint) http.Header {
	header := make(http.Header)
	for name, value := range e.Header {
		header.Set(name, value)
	}
	return header
}

type bodyTuple struct {
	body        []byte
	contentType string
}

func buildHTTPBody(e *endpoint.Endpoint) (bodyTuple, error) {
	if fields, ok := e.Body.FormFields(); ok {
		return bodyTuple{
			body:        []byte(encodeForm(fields)),
			contentType: "application/x-www-form-urlencoded",
		}, nil
	}
	if fields, ok := e.Body.JSONFields(); ok {
		body, err := encodeJSON(fields)
		if err != nil {
			return bodyTuple{}, err
		}
		// Content-Type for JSON payloads belongs to the endpoint's static
		// headers, so none is forced here.
		return bodyTuple{body: body}, nil
	}
	if m := e.Body.MultipartPayload(); m != nil {
		return bodyTuple{
			body:        m.Finalize(),
			contentType: m.ContentType(),
		}, nil
	}
	return bodyTuple{}, nil
}

// encodeForm serializes fields as key=value pairs joined by '&', preserving
// field order. Values without a canonical string form are skipped, the same
// lenience the query-string conversion applies.
func encodeForm(fields []endpoint.Field) string {
	var b strings.Builder
	for _, field := range fields {
		value, ok := field.Value.CanonicalString()
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

func encodeJSON(fields []endpoint.Field) ([]byte, error) {
	obj := make(map[string]endpoint.Value, len(fields))
	for _, field := range fields {
		obj[field.Name] = field.Value
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling JSON of HTTP body")
	}
	return body, nil
}
