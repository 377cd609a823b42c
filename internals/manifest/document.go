// Package manifest gives typed access to the few fields pillowgen touches in
// otherwise untyped vendor JSON documents. All other fields are passed through unchanged.
package manifest

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pkg/errors"
)

// Document is a parsed JSON object. Paths are dot separated keys, like "arguments.game"
type Document struct {
	name string
	root map[string]interface{}
}

// Decode reads a JSON object from r. name is used in error messages (usually the file name)
func Decode(r io.Reader, name string) (*Document, error) {
	dec := json.NewDecoder(r)
	// keep numbers exactly as they are
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", name)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Errorf("could not parse %s: unexpected data after the top level value", name)
	}

	root, ok := value.(map[string]interface{})
	if !ok {
		return nil, errors.Wrapf(merrors.ErrNotAnObject, "%s", name)
	}

	return &Document{name: name, root: root}, nil
}

// Encode writes the document as compact JSON. Object keys are sorted, so the
// same document always results in the same bytes
func (d *Document) Encode(w io.Writer) error {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.root); err != nil {
		return errors.Wrapf(err, "could not encode %s", d.name)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Name returns the name given to Decode
func (d *Document) Name() string {
	return d.name
}

// Get returns the value at path
func (d *Document) Get(path string) (interface{}, error) {
	parent, key, err := d.parent(path)
	if err != nil {
		return nil, err
	}
	value, ok := parent[key]
	if !ok {
		return nil, d.wrongType(path, "is missing")
	}
	return value, nil
}

// Has reports whether there is a value at path
func (d *Document) Has(path string) bool {
	_, err := d.Get(path)
	return err == nil
}

// String returns the string at path
func (d *Document) String(path string) (string, error) {
	value, err := d.Get(path)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", d.wrongType(path, "is not a string")
	}
	return s, nil
}

// Object returns the object at path. Changes to it change the document
func (d *Document) Object(path string) (map[string]interface{}, error) {
	value, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, errors.Wrapf(merrors.ErrNotAnObject, "%s: %s", d.name, path)
	}
	return obj, nil
}

// Array returns the array at path. Use Set to store a modified copy
func (d *Document) Array(path string) ([]interface{}, error) {
	value, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	arr, ok := value.([]interface{})
	if !ok {
		return nil, d.wrongType(path, "is not an array")
	}
	return arr, nil
}

// Strings returns the array at path as strings. Every element has to be a string
func (d *Document) Strings(path string) ([]string, error) {
	arr, err := d.Array(path)
	if err != nil {
		return nil, err
	}
	strs := make([]string, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, d.wrongType(path, "contains a value that is not a string")
		}
		strs[i] = s
	}
	return strs, nil
}

// Set sets the value at path. The parent object has to exist. value may be any
// json marshalable value, it is stored in its generic form
func (d *Document) Set(path string, value interface{}) error {
	parent, key, err := d.parent(path)
	if err != nil {
		return err
	}
	generic, err := ToValue(value)
	if err != nil {
		return errors.Wrapf(err, "%s: %s", d.name, path)
	}
	parent[key] = generic
	return nil
}

// Remove deletes the value at path. The parent object has to exist, the value itself may be missing
func (d *Document) Remove(path string) error {
	parent, key, err := d.parent(path)
	if err != nil {
		return err
	}
	delete(parent, key)
	return nil
}

// Append adds values to the end of the array at path
func (d *Document) Append(path string, values ...interface{}) error {
	arr, err := d.Array(path)
	if err != nil {
		return err
	}
	for _, v := range values {
		generic, err := ToValue(v)
		if err != nil {
			return errors.Wrapf(err, "%s: %s", d.name, path)
		}
		arr = append(arr, generic)
	}
	return d.Set(path, arr)
}

// parent walks to the object containing the last path segment
func (d *Document) parent(path string) (map[string]interface{}, string, error) {
	keys := strings.Split(path, ".")
	current := d.root
	for i, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil, "", errors.Wrapf(
				merrors.ErrNotAnObject,
				"%s: %s is missing or not an object",
				d.name,
				strings.Join(keys[:i+1], "."),
			)
		}
		current = next
	}
	return current, keys[len(keys)-1], nil
}

func (d *Document) wrongType(path string, what string) error {
	return errors.Wrapf(merrors.ErrWrongType, "%s: %s %s", d.name, path, what)
}

// ToValue converts v into its generic JSON form (maps, slices, strings, json.Number, bools and nil)
func ToValue(v interface{}) (interface{}, error) {
	switch v.(type) {
	case nil, string, bool, json.Number, map[string]interface{}, []interface{}:
		return v, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	return generic, nil
}
