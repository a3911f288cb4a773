package exchange

import (
	"io"
	"net/http"
	"sort"
	"strings"
)

// CurlCommand renders a built request as a reproducible shell command.
// It exists for developer diagnostics (debug logging) only and is not part
// of the execution contract.
func CurlCommand(req *http.Request) string {
	var b strings.Builder
	b.WriteString("curl -X ")
	b.WriteString(req.Method)

	var names []string
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			b.WriteString(" -H ")
			b.WriteString(shellQuote(name + ": " + value))
		}
	}

	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			data, err := io.ReadAll(body)
			if err == nil && len(data) > 0 {
				b.WriteString(" --data-binary ")
				b.WriteString(shellQuote(string(data)))
			}
		}
	}

	b.WriteString(" ")
	b.WriteString(shellQuote(req.URL.String()))
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
