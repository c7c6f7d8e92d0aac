package aassert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/restapi/aassert"
)

func TestJSONFields(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		object any
		except []string
		fields []string
	}{
		"nil":            {nil, nil, nil},
		"int":            {0, nil, nil},
		"slice":          {[]record{}, nil, nil},
		"struct":         {record{}, nil, []string{"createdAt", "id", "name"}},
		"ptr to struct":  {&record{}, nil, []string{"createdAt", "id", "name"}},
		"except":         {record{}, []string{"id", "createdAt"}, []string{"name"}},
		"untagged":       {untagged{}, nil, []string{"Name"}},
		"embedded":       {embedding{}, nil, []string{"createdAt", "id", "name", "total"}},
		"skipped fields": {skipped{}, nil, []string{"name"}},
		"empty struct":   {struct{}{}, nil, []string{}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.fields, aassert.JSONFields(tt.object, tt.except...))
		})
	}
}

func TestSameJSONFields(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		expected any
		actual   any
		pass     bool
	}{
		"nil":                 {nil, record{}, false},
		"no struct":           {record{}, "record", false},
		"same struct":         {record{}, record{}, true},
		"pointer fields":      {record{}, recordPayload{}, true},
		"order is irrelevant": {record{}, reordered{}, true},
		"missing field":       {record{}, skipped{}, false},
		"additional field":    {record{}, embedding{}, false},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pass := aassert.SameJSONFields(new(testing.T), tt.expected, tt.actual)
			assert.Equal(t, tt.pass, pass)
		})
	}
}

type (
	record struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		CreatedAt string `json:"createdAt"`
	}
	recordPayload struct {
		ID        *string `json:"id"`
		Name      *string `json:"name,omitempty"`
		CreatedAt *string `json:"createdAt"`
	}
	reordered struct {
		CreatedAt string `json:"createdAt"`
		Name      string `json:"name"`
		ID        string `json:"id"`
	}
	untagged struct {
		Name    string
		private int //nolint:unused
	}
	embedding struct {
		record
		Total float64 `json:"total"`
	}
	skipped struct {
		Name   string `json:"name"`
		Secret string `json:"-"`
	}
)
