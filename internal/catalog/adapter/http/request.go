package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
)

// decodeBody parses the request body into generic JSON values. Numbers become
// int64 when integral and float64 otherwise, so integer fields keep their
// BSON integer type when stored. An empty body decodes to an empty object.
func decodeBody(c *fiber.Ctx) (interface{}, error) {
	raw := bytes.TrimSpace(c.Body())
	if len(raw) == 0 {
		return map[string]interface{}{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return normalizeNumbers(v), nil
}

func normalizeNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]interface{}:
		for k, item := range t {
			t[k] = normalizeNumbers(item)
		}
		return t
	case []interface{}:
		for i, item := range t {
			t[i] = normalizeNumbers(item)
		}
		return t
	default:
		return v
	}
}

// payload returns the decoded body, or nil when it is not valid JSON. The
// usecases reject a nil payload with their own client error.
func (h *CatalogHandler) payload(c *fiber.Ctx) interface{} {
	body, err := decodeBody(c)
	if err != nil {
		h.Log.WithContext(c.UserContext()).Debugf("malformed JSON body on %s %s: %v", c.Method(), c.Path(), err)
		return nil
	}
	return body
}
