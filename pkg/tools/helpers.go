package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// jsonResult renders v as an indented JSON text block.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult wraps a failed client call in an isError tool result, naming
// the operation and relaying the service's message verbatim.
func errorResult(op string, err error) *mcp.CallToolResult {
	switch {
	case raindrop.IsAuthError(err):
		return mcp.NewToolResultError(fmt.Sprintf("authentication failed while %s: %v", op, err))
	case raindrop.IsNotFound(err):
		return mcp.NewToolResultError(fmt.Sprintf("not found while %s: %v", op, err))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("error %s: %v", op, err))
	}
}

// invalidEnumResult rejects an out-of-range enum value before any request is
// made.
func invalidEnumResult(name, value string, allowed []string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("invalid %s %q: must be one of %s", name, value, strings.Join(allowed, ", ")))
}

// argReader reads the optional arguments of a request. An omitted (or null)
// argument reads as nil so partial updates only touch the fields the host
// actually sent; an argument that is present but not of the declared type is
// recorded as an error, never coerced to a zero value. Err reports the first
// such error after all reads.
type argReader struct {
	req mcp.CallToolRequest
	err error
}

func newArgReader(req mcp.CallToolRequest) *argReader {
	return &argReader{req: req}
}

// Err reports the first mistyped argument encountered, if any.
func (r *argReader) Err() error {
	return r.err
}

func (r *argReader) fail(key, want string) {
	if r.err == nil {
		r.err = fmt.Errorf("%s must be %s", key, want)
	}
}

func (r *argReader) arg(key string) (any, bool) {
	raw, ok := r.req.GetArguments()[key]
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}

func (r *argReader) String(key string) *string {
	raw, ok := r.arg(key)
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		r.fail(key, "a string")
		return nil
	}
	return &s
}

func (r *argReader) Int(key string) *int {
	raw, ok := r.arg(key)
	if !ok {
		return nil
	}
	switch n := raw.(type) {
	case float64:
		v := int(n)
		return &v
	case int:
		v := n
		return &v
	}
	r.fail(key, "a number")
	return nil
}

func (r *argReader) Bool(key string) *bool {
	raw, ok := r.arg(key)
	if !ok {
		return nil
	}
	b, ok := raw.(bool)
	if !ok {
		r.fail(key, "a boolean")
		return nil
	}
	return &b
}

// StringSlice reads an array argument whose entries must all be strings. A
// single mistyped entry fails the whole read; it is never dropped.
func (r *argReader) StringSlice(key string) *[]string {
	raw, ok := r.arg(key)
	if !ok {
		return nil
	}
	switch items := raw.(type) {
	case []string:
		out := append([]string(nil), items...)
		return &out
	case []any:
		out := make([]string, 0, len(items))
		for _, v := range items {
			s, ok := v.(string)
			if !ok {
				r.fail(key, "an array of strings")
				return nil
			}
			out = append(out, s)
		}
		return &out
	}
	r.fail(key, "an array of strings")
	return nil
}

// IntSlice reads an array-of-ids argument. Decoded JSON numbers arrive as
// float64, so both numeric shapes are accepted.
func (r *argReader) IntSlice(key string) []int {
	raw, ok := r.arg(key)
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		r.fail(key, "an array of numbers")
		return nil
	}
	out := make([]int, 0, len(items))
	for _, v := range items {
		switch n := v.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		default:
			r.fail(key, "an array of numbers")
			return nil
		}
	}
	return out
}
