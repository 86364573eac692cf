package programacion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchema))
	if err != nil {
		panic(fmt.Sprintf("programacion: invalid response schema: %v", err))
	}
	return schema
}

// Decode validates body against the response schema and decodes it into wrappers.
func Decode(body []byte) ([]Wrapper, error) {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, strings.Join(errs, "; "))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	wrappers := make([]Wrapper, 0, len(items))
	for i, item := range items {
		w, err := decodeWrapper(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrUnexpectedShape, i, err)
		}
		wrappers = append(wrappers, w)
	}
	return wrappers, nil
}

// decodeWrapper walks the object token by token so entry order follows the payload.
func decodeWrapper(raw json.RawMessage) (Wrapper, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return Wrapper{}, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Wrapper{}, fmt.Errorf("expected object, got %v", tok)
	}

	var w Wrapper
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Wrapper{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Wrapper{}, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var ev RawEvent
		if err := dec.Decode(&ev); err != nil {
			return Wrapper{}, fmt.Errorf("key %q: %w", key, err)
		}
		w.Entries = append(w.Entries, Entry{Key: key, Event: ev})
	}

	if _, err := dec.Token(); err != nil {
		return Wrapper{}, err
	}
	return w, nil
}
