package restapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// NewBinder returns an echo.Binder that reports json type errors as validation errors.
// The field of the detail keeps slice indices, e.g. body.items[0].quantity,
// the same way validator errors do.
func NewBinder() *Binder {
	return &Binder{}
}

type Binder struct {
	echo.DefaultBinder
}

var _ echo.Binder = (*Binder)(nil)

func (b *Binder) Bind(i any, c echo.Context) error {
	req := c.Request()

	var body []byte

	if req.ContentLength != 0 && req.Body != nil {
		read, err := io.ReadAll(req.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
		}

		body = read
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	err := b.DefaultBinder.Bind(i, c)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &echo.HTTPError{
			Code:     http.StatusUnprocessableEntity,
			Message:  ValidationErrorMessage,
			Internal: &ValidationError{Details: []ValidationDetail{typeErrorDetail(typeErr, body)}},
		}
	}

	return err //nolint:wrapcheck // keep echo's HTTPError
}

func typeErrorDetail(typeErr *json.UnmarshalTypeError, body []byte) ValidationDetail {
	path, found := jsonPathAt(body, typeErr.Offset)
	if !found {
		path = typeErr.Field
	}

	return ValidationDetail{
		Field:   fieldPath("." + path),
		Message: "expected type " + typeErr.Type.String() + ", got " + typeErr.Value,
		Type:    "type",
	}
}

type jsonFrame struct {
	array bool
	key   string
	index int
}

// jsonPathAt returns the path of the value in doc that ends at offset, e.g. items[0].quantity.
// An offset of a value at the top level returns an empty path.
func jsonPathAt(doc []byte, offset int64) (string, bool) {
	if len(doc) == 0 {
		return "", false
	}

	dec := json.NewDecoder(bytes.NewReader(doc))
	stack := []*jsonFrame{}
	expectKey := false

	for {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}

		if expectKey {
			if key, ok := tok.(string); ok {
				stack[len(stack)-1].key = key
				expectKey = false

				continue
			}
		}

		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				// a container of the wrong type is reported right after its opening delimiter
				if dec.InputOffset() >= offset {
					return jsonPath(stack), true
				}

				stack = append(stack, &jsonFrame{array: delim == '['})
				expectKey = delim == '{'

				continue
			case '}', ']':
				stack = stack[:len(stack)-1]
			}
		}

		if dec.InputOffset() >= offset {
			return jsonPath(stack), true
		}

		if len(stack) == 0 {
			return "", false
		}

		if top := stack[len(stack)-1]; top.array {
			top.index++
		} else {
			expectKey = true
		}
	}
}

func jsonPath(stack []*jsonFrame) string {
	var path strings.Builder

	for _, frame := range stack {
		if frame.array {
			path.WriteString("[" + strconv.Itoa(frame.index) + "]")

			continue
		}

		if path.Len() > 0 {
			path.WriteString(".")
		}

		path.WriteString(frame.key)
	}

	return path.String()
}
