// Package endpoint describes API calls as data. An Endpoint carries the
// method, base URL, path, static headers, and a Body descriptor; it has
// no network side effects until handed to the exchange package.
package endpoint

type Method string

const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// Endpoint is an immutable description of one API call. Construct one per
// call site; it is never mutated after construction.
type Endpoint struct {
	Method  Method
	BaseURL string
	Path    string
	Header  map[string]string
	Body    Body
}

type BodyType int

const (
	NoBody BodyType = iota
	JSONBody
	FormBody
	QueryBody
	MultipartBody
)

// Field is one named payload value. Slices of Field replace an unordered
// map so that insertion order is observable, which matters for query
// strings.
type Field struct {
	Name  string
	Value Value
}

// QueryItem is a single name/value pair destined for a URL's query string.
type QueryItem struct {
	Name  string
	Value string
}

// Body is a tagged union describing how a request's payload is encoded:
// as a JSON object, a URL-encoded form, query-string parameters, a
// multipart/form-data payload, or nothing. Exactly one case is populated;
// the accessor for every other case reports absence instead of failing.
// The zero Body is NoBody.
type Body struct {
	bodyType  BodyType
	fields    []Field
	multipart *Multipart
}

func JSON(fields ...Field) Body {
	return Body{bodyType: JSONBody, fields: fields}
}

func Form(fields ...Field) Body {
	return Body{bodyType: FormBody, fields: fields}
}

func Query(fields ...Field) Body {
	return Body{bodyType: QueryBody, fields: fields}
}

func MultipartOf(m *Multipart) Body {
	return Body{bodyType: MultipartBody, multipart: m}
}

func (b Body) Type() BodyType {
	return b.bodyType
}

// JSONFields returns the payload fields when the JSON case is populated.
func (b Body) JSONFields() ([]Field, bool) {
	if b.bodyType != JSONBody {
		return nil, false
	}
	return b.fields, true
}

// FormFields returns the payload fields when the URL-encoded case is
// populated.
func (b Body) FormFields() ([]Field, bool) {
	if b.bodyType != FormBody {
		return nil, false
	}
	return b.fields, true
}

// QueryItems converts the query-string case into ordered name/value pairs.
// Fields whose value has no canonical string form are skipped rather than
// reported as an error. Non-query cases yield no items.
func (b Body) QueryItems() []QueryItem {
	if b.bodyType != QueryBody {
		return nil
	}
	var items []QueryItem
	for _, field := range b.fields {
		value, ok := field.Value.CanonicalString()
		if !ok {
			continue
		}
		items = append(items, QueryItem{Name: field.Name, Value: value})
	}
	return items
}

// MultipartPayload returns the multipart accumulator when the multipart
// case is populated, nil otherwise.
func (b Body) MultipartPayload() *Multipart {
	if b.bodyType != MultipartBody {
		return nil
	}
	return b.multipart
}
