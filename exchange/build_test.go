package exchange

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/tenkiya/tenki-go/endpoint"
)

func readAll(t *testing.T, reader io.Reader) string {
	b, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read all: %s", err)
	}
	return string(b)
}

func TestBuildHTTPRequest(t *testing.T) {
	// Setup
	e := &endpoint.Endpoint{
		Method:  endpoint.GET,
		BaseURL: "https://api.example.com",
		Path:    "/v1/current.json",
		Header:  map[string]string{"Content-Type": "application/json"},
		Body: endpoint.Query(
			endpoint.Field{Name: "q", Value: endpoint.String("paris")},
			endpoint.Field{Name: "key", Value: endpoint.String("k")},
		),
	}

	// Exercise
	actual, err := BuildHTTPRequest(e)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	// Verify
	if actual.Method != "GET" {
		t.Errorf("unexpected method: expected=%v, actual=%v", "GET", actual.Method)
	}
	expectedURL := "https://api.example.com/v1/current.json?q=paris&key=k"
	if actual.URL.String() != expectedURL {
		t.Errorf("unexpected URL: expected=%v, actual=%v", expectedURL, actual.URL)
	}
	expectedHeader := http.Header{
		"Content-Type": []string{"application/json"},
	}
	if !reflect.DeepEqual(expectedHeader, actual.Header) {
		t.Errorf("unexpected header: expected=%v, actual=%v", expectedHeader, actual.Header)
	}
	if actual.Body != nil {
		t.Errorf("unexpected body: %v", actual.Body)
	}
}

func TestBuildURL(t *testing.T) {
	testCases := []struct {
		title         string
		baseURL       string
		path          string
		body          endpoint.Body
		expected      string
		shouldBeError bool
	}{
		{
			title:    "Empty path with valid base URL",
			baseURL:  "https://api.example.com",
			expected: "https://api.example.com",
		},
		{
			title:    "Query items attached in order",
			baseURL:  "http://example.com",
			path:     "/hello",
			body:     endpoint.Query(endpoint.Field{Name: "foo", Value: endpoint.String("bar")}, endpoint.Field{Name: "fizz", Value: endpoint.String("buzz")}),
			expected: "http://example.com/hello?foo=bar&fizz=buzz",
		},
		{
			title:    "URL already has a query string",
			baseURL:  "http://example.com",
			path:     "/hello?hoge=fuga",
			body:     endpoint.Query(endpoint.Field{Name: "foo", Value: endpoint.String("bar")}),
			expected: "http://example.com/hello?hoge=fuga&foo=bar",
		},
		{
			title:    "Plus already in the URL's query string is percent-escaped",
			baseURL:  "http://example.com",
			path:     "/hello?a=b+c",
			body:     endpoint.Query(endpoint.Field{Name: "q", Value: endpoint.String("v")}),
			expected: "http://example.com/hello?a=b%2Bc&q=v",
		},
		{
			title:    "Literal plus is percent-escaped",
			baseURL:  "http://example.com",
			path:     "/search",
			body:     endpoint.Query(endpoint.Field{Name: "q", Value: endpoint.String("c++")}),
			expected: "http://example.com/search?q=c%2B%2B",
		},
		{
			title:    "Space never encodes to a bare plus",
			baseURL:  "http://example.com",
			path:     "/search",
			body:     endpoint.Query(endpoint.Field{Name: "q", Value: endpoint.String("new york")}),
			expected: "http://example.com/search?q=new%20york",
		},
		{
			title:         "Whitespace-only base URL",
			baseURL:       "   ",
			path:          "/v1/current.json",
			shouldBeError: true,
		},
		{
			title:         "Control character in base URL",
			baseURL:       "https://api.example.com\x00",
			shouldBeError: true,
		},
		{
			title:         "Empty base URL",
			path:          "/v1/current.json",
			shouldBeError: true,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			e := &endpoint.Endpoint{BaseURL: tt.baseURL, Path: tt.path, Body: tt.body}
			u, err := buildURL(e)
			if tt.shouldBeError {
				if err == nil {
					t.Fatalf("expected error, got URL %v", u)
				}
				if !IsInvalidURL(err) {
					t.Errorf("expected InvalidURLError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: err=%v", err)
			}
			if u.String() != tt.expected {
				t.Errorf("unexpected URL: expected=%s, actual=%s", tt.expected, u)
			}
		})
	}
}

func TestBuildHTTPBody_OneBodyPerDescriptorCase(t *testing.T) {
	multipart := endpoint.NewMultipartWithBoundary("X")
	multipart.AddField("a", "b")

	testCases := []struct {
		title               string
		body                endpoint.Body
		expectedBody        string
		expectedContentType string
	}{
		{
			title: "Form body",
			body: endpoint.Form(
				endpoint.Field{Name: "a", Value: endpoint.String("b")},
				endpoint.Field{Name: "c", Value: endpoint.String("d e")},
			),
			expectedBody:        "a=b&c=d+e",
			expectedContentType: "application/x-www-form-urlencoded",
		},
		{
			title: "JSON body leaves Content-Type to static headers",
			body: endpoint.JSON(
				endpoint.Field{Name: "a", Value: endpoint.Number(1)},
			),
			expectedBody:        `{"a":1}`,
			expectedContentType: "",
		},
		{
			title:               "Multipart body",
			body:                endpoint.MultipartOf(multipart),
			expectedBody:        "--X\r\nContent-Disposition: form-data; name=\"a\"\r\n\r\nb\r\n--X--",
			expectedContentType: "multipart/form-data; boundary=X",
		},
		{
			title:               "Query case has no body",
			body:                endpoint.Query(endpoint.Field{Name: "a", Value: endpoint.String("b")}),
			expectedBody:        "",
			expectedContentType: "",
		},
		{
			title:               "No body",
			body:                endpoint.Body{},
			expectedBody:        "",
			expectedContentType: "",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			tuple, err := buildHTTPBody(&endpoint.Endpoint{Body: tt.body})
			if err != nil {
				t.Fatalf("unexpected error: err=%v", err)
			}
			if string(tuple.body) != tt.expectedBody {
				t.Errorf("unexpected body: expected=%q, actual=%q", tt.expectedBody, tuple.body)
			}
			if tuple.contentType != tt.expectedContentType {
				t.Errorf("unexpected content type: expected=%q, actual=%q", tt.expectedContentType, tuple.contentType)
			}
		})
	}
}

func TestBuildHTTPRequest_FormOverridesStaticContentType(t *testing.T) {
	e := &endpoint.Endpoint{
		Method:  endpoint.POST,
		BaseURL: "https://example.com",
		Path:    "/submit",
		Header:  map[string]string{"Content-Type": "application/json"},
		Body:    endpoint.Form(endpoint.Field{Name: "a", Value: endpoint.String("b")}),
	}

	actual, err := BuildHTTPRequest(e)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}
	if got := actual.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected content type: %q", got)
	}
	if body := readAll(t, actual.Body); body != "a=b" {
		t.Errorf("unexpected body: %q", body)
	}
	if actual.ContentLength != int64(len("a=b")) {
		t.Errorf("unexpected content length: %d", actual.ContentLength)
	}
}

func TestBuildHTTPRequest_JSONSerializationFailure(t *testing.T) {
	e := &endpoint.Endpoint{
		Method:  endpoint.POST,
		BaseURL: "https://example.com",
		Path:    "/submit",
		Body:    endpoint.JSON(endpoint.Field{Name: "bad", Value: endpoint.RawJSON(json.RawMessage(`{`))}),
	}

	_, err := BuildHTTPRequest(e)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if IsInvalidURL(err) || IsBadRequest(err) {
		t.Errorf("serialization failure misclassified: %v", err)
	}
	if !strings.Contains(err.Error(), "marshaling JSON") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestBuildHTTPRequest_MethodIsUppercased(t *testing.T) {
	e := &endpoint.Endpoint{
		Method:  endpoint.Method("get"),
		BaseURL: "https://example.com",
	}
	actual, err := BuildHTTPRequest(e)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}
	if actual.Method != "GET" {
		t.Errorf("unexpected method: %q", actual.Method)
	}
}
