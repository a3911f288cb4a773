package exchange

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pkg/errors"
	"github.com/tenkiya/tenki-go/debug"
	"github.com/tenkiya/tenki-go/endpoint"
)

// ExecuteBytes builds the transport request for e, sends it, and returns
// the raw response body. A status code outside [200, 299] is a
// BadRequestError; an absent status code counts as 400. Transport failures
// propagate wrapped but unclassified. Cancel via ctx.
//
// Each call is a one-shot request/response cycle with no state shared
// across calls; concurrent executions are independent.
func ExecuteBytes(ctx context.Context, client *http.Client, e *endpoint.Endpoint) ([]byte, error) {
	req, err := BuildHTTPRequest(e)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	if debug.IsEnabled(ctx) {
		slog.Debug("sending request", "curl", CurlCommand(req))
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending HTTP request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusBadRequest
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("response received",
			"method", req.Method,
			"url", req.URL.String(),
			"status", status,
			"size", bytefmt.ByteSize(uint64(len(body))))
	}
	if status < 200 || status > 299 {
		return nil, &BadRequestError{StatusCode: status}
	}
	return body, nil
}

// Execute performs the request and decodes the JSON response body into T.
// A structural mismatch surfaces as a wrapped decode error, distinct from
// BadRequestError.
func Execute[T any](ctx context.Context, client *http.Client, e *endpoint.Endpoint) (T, error) {
	var decoded T
	body, err := ExecuteBytes(ctx, client, e)
	if err != nil {
		return decoded, err
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return decoded, errors.Wrap(err, "decoding response body")
	}
	return decoded, nil
}

// ExecuteMap performs the request and parses the response as a generic JSON
// object. A top-level value that is not an object is a BadRequestError.
func ExecuteMap(ctx context.Context, client *http.Client, e *endpoint.Endpoint) (map[string]interface{}, error) {
	body, err := ExecuteBytes(ctx, client, e)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, errors.Wrap(err, "decoding response body")
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, &BadRequestError{Reason: "top-level JSON value is not an object"}
	}
	return obj, nil
}
