package dataset

import (
	"bytes"
	"encoding/json"

	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/spf13/cast"
)

// valueColumn is the column a bare (non-object) JSON array element lands in.
const valueColumn = "value"

// parseJSON treats the whole text as one JSON value: an array becomes one row
// per element, a single object becomes a one-row dataset. Non-object array
// elements are coerced into a single-field record rather than rejected.
func parseJSON(content []byte) (*Dataset, error) {
	var parsed any
	if err := json.Unmarshal(content, &parsed); err != nil {
		return nil, &MalformedInputError{Format: "json", Reason: "invalid JSON text", Err: err}
	}

	var elements []any
	switch v := parsed.(type) {
	case []any:
		elements = v
	case map[string]any:
		elements = []any{v}
	default:
		elements = []any{parsed}
	}

	ds := &Dataset{}
	for _, el := range elements {
		obj, ok := el.(map[string]any)
		if !ok {
			ds.Records = append(ds.Records, domain.Record{valueColumn: cast.ToString(el)})
			continue
		}
		rec := make(domain.Record, len(obj))
		for k, val := range obj {
			rec[k] = cast.ToString(val)
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, ErrNoData
	}

	// The column set comes from row 0: its key order for an object, even an
	// empty one, and the synthetic value column otherwise.
	if _, ok := elements[0].(map[string]any); ok {
		ds.Columns = firstObjectKeys(content)
	} else {
		ds.Columns = []string{valueColumn}
	}
	return ds, nil
}

// firstObjectKeys scans the document for the key order of the first object,
// which map-based decoding loses. Returns nil when the first element is not
// an object.
func firstObjectKeys(content []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(content))

	t, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := t.(json.Delim); ok && d == '[' {
		t, err = dec.Token()
		if err != nil {
			return nil
		}
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := t.(string)
		if !ok {
			return nil
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return nil
		}
	}
	return keys
}

func skipValue(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := t.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := t.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
