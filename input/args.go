// Package input turns positional CLI arguments into a weather query plus
// optional extra API parameters.
package input

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tenkiya/tenki-go/endpoint"
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// IsUsageError checks whether err calls for printing the usage text.
func IsUsageError(err error) bool {
	_, ok := errors.Cause(err).(*UsageError)
	return ok
}

// Query is the parsed request: the free-form search text and any extra
// query parameters given as NAME==VALUE items.
type Query struct {
	Text       string
	Parameters []endpoint.Field
}

// ParseArgs splits args into query words and request items. Bare words
// join into the search text ("new york"); NAME==VALUE items become extra
// API query parameters (aqi==yes, lang==fr). Other item forms are a usage
// error.
func ParseArgs(args []string) (*Query, error) {
	query := Query{}
	var words []string
	for _, arg := range args {
		name, value, isItem, err := splitItem(arg)
		if err != nil {
			return nil, err
		}
		if !isItem {
			words = append(words, arg)
			continue
		}
		query.Parameters = append(query.Parameters, endpoint.Field{
			Name:  name,
			Value: endpoint.String(value),
		})
	}
	query.Text = strings.Join(words, " ")
	return &query, nil
}

func splitItem(s string) (string, string, bool, error) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '=':
			if i+1 < len(s) && s[i+1] == '=' {
				if i == 0 {
					return "", "", false, newUsageError("parameter name is empty: " + s)
				}
				return s[:i], s[i+2:], true, nil
			}
			return "", "", false, newUsageError("use NAME==VALUE to add a query parameter: " + s)
		case ':':
			return "", "", false, newUsageError("unknown request item: " + s)
		}
	}
	return "", "", false, nil
}
