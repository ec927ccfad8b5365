package validator

// Context is the read-only view a custom predicate gets of the form being validated.
type Context struct {
	field  string
	values Values
}

// NewContext snapshots values for evaluating field.
func NewContext(field string, values Values) Context {
	return Context{field: field, values: values.Clone()}
}

// Field is the name of the field under validation.
func (c Context) Field() string {
	return c.field
}

// Get returns the value of another field, or Null when it is unset.
func (c Context) Get(field string) Value {
	return c.values[field]
}

// Values returns a copy of the snapshot.
func (c Context) Values() Values {
	return c.values.Clone()
}

// forField reuses the snapshot for a sibling field without copying it again.
func (c Context) forField(field string) Context {
	c.field = field
	return c
}
