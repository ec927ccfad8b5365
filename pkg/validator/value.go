package validator

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Tag identifies which variant a Value holds.
type Tag uint8

const (
	TagNull Tag = iota
	TagString
	TagNumber
	TagBool
	TagStrings
	TagFile
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagString:
		return "string"
	case TagNumber:
		return "number"
	case TagBool:
		return "bool"
	case TagStrings:
		return "strings"
	case TagFile:
		return "file"
	default:
		return "tag(" + strconv.Itoa(int(t)) + ")"
	}
}

// FileRef describes an uploaded file without holding its content.
type FileRef struct {
	Name string
	Size int64
	Type string
}

// Value is a form field value. The zero Value is Null, which stands for an unset field.
type Value struct {
	tag  Tag
	str  string
	num  float64
	b    bool
	list []string
	file FileRef
}

// Values maps field names to their current values.
type Values map[string]Value

func Null() Value                 { return Value{} }
func String(s string) Value       { return Value{tag: TagString, str: s} }
func NumberValue(n float64) Value { return Value{tag: TagNumber, num: n} }
func Int(n int) Value             { return Value{tag: TagNumber, num: float64(n)} }
func Bool(b bool) Value           { return Value{tag: TagBool, b: b} }
func File(f FileRef) Value        { return Value{tag: TagFile, file: f} }

// Strings holds a string list. The list is never nil, so an empty list
// stays a list when encoded.
func Strings(s ...string) Value { return Value{tag: TagStrings, list: append([]string{}, s...)} }

func (v Value) Tag() Tag      { return v.tag }
func (v Value) IsNull() bool  { return v.tag == TagNull }
func (v Value) Bool() bool    { return v.tag == TagBool && v.b }
func (v Value) File() FileRef { return v.file }

// IsEmpty reports whether the value counts as "not provided":
// null, the empty string, or an empty string list.
func (v Value) IsEmpty() bool {
	switch v.tag {
	case TagNull:
		return true
	case TagString:
		return v.str == ""
	case TagStrings:
		return len(v.list) == 0
	default:
		return false
	}
}

// Float returns the numeric payload of a Number value.
func (v Value) Float() (float64, bool) {
	if v.tag != TagNumber {
		return 0, false
	}
	return v.num, true
}

// List returns a copy of the items of a Strings value.
func (v Value) List() []string {
	return slices.Clone(v.list)
}

// String returns the text form of the value. Text rules evaluate against it.
func (v Value) String() string {
	switch v.tag {
	case TagString:
		return v.str
	case TagNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case TagBool:
		return strconv.FormatBool(v.b)
	case TagStrings:
		return strings.Join(v.list, ",")
	case TagFile:
		return v.file.Name
	default:
		return ""
	}
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.tag != o.tag {
		return false
	}
	switch v.tag {
	case TagNull:
		return true
	case TagString:
		return v.str == o.str
	case TagNumber:
		return v.num == o.num
	case TagBool:
		return v.b == o.b
	case TagStrings:
		return slices.Equal(v.list, o.list)
	case TagFile:
		return v.file == o.file
	}
	return false
}

// Any returns the value as plain Go data suitable for JSON encoding.
func (v Value) Any() any {
	switch v.tag {
	case TagString:
		return v.str
	case TagNumber:
		return v.num
	case TagBool:
		return v.b
	case TagStrings:
		return append([]string{}, v.list...)
	case TagFile:
		return map[string]any{"name": v.file.Name, "size": v.file.Size, "type": v.file.Type}
	default:
		return nil
	}
}

// ValueOf converts decoded JSON or YAML data into a Value.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return NumberValue(t), nil
	case float32:
		return NumberValue(float64(t)), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return NumberValue(reflect.ValueOf(t).Convert(reflect.TypeOf(float64(0))).Float()), nil
	case []string:
		return Strings(t...), nil
	case []any:
		items := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: list item %d is %T, want string", ErrUnsupportedValue, i, item)
			}
			items = append(items, s)
		}
		return Strings(items...), nil
	case FileRef:
		return File(t), nil
	case map[string]any:
		return fileFromMap(t)
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
	}
}

func fileFromMap(m map[string]any) (Value, error) {
	name, ok := m["name"].(string)
	if !ok {
		return Value{}, fmt.Errorf("%w: object without file name", ErrUnsupportedValue)
	}
	f := FileRef{Name: name}
	if typ, ok := m["type"].(string); ok {
		f.Type = typ
	}
	switch size := m["size"].(type) {
	case nil:
	case float64:
		if size < 0 || size != math.Trunc(size) {
			return Value{}, fmt.Errorf("%w: invalid file size %v", ErrUnsupportedValue, size)
		}
		f.Size = int64(size)
	case int:
		f.Size = int64(size)
	case int64:
		f.Size = size
	default:
		return Value{}, fmt.Errorf("%w: file size is %T", ErrUnsupportedValue, size)
	}
	return File(f), nil
}

// ValuesOf converts a map of decoded data into Values.
func ValuesOf(m map[string]any) (Values, error) {
	out := make(Values, len(m))
	for k, x := range m {
		v, err := ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Clone returns a shallow copy of the map. Values are immutable, so this is a full snapshot.
func (vs Values) Clone() Values {
	if vs == nil {
		return Values{}
	}
	return maps.Clone(vs)
}

// Any converts the map into plain Go data.
func (vs Values) Any() map[string]any {
	out := make(map[string]any, len(vs))
	for k, v := range vs {
		out[k] = v.Any()
	}
	return out
}
