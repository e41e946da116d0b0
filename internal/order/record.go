package order

// Field is a single named value on an order record. Values are untyped text;
// validation and coercion happen in the payload builder, not here.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered set of named field values describing one order, or one
// line of a multi-line order. Field order is preserved across edits so a
// record renders the same way for the whole session.
type Record struct {
	fields []Field
}

// NewRecord builds a record from fields in the given order.
func NewRecord(fields ...Field) *Record {
	r := &Record{fields: make([]Field, len(fields))}
	copy(r.fields, fields)
	return r
}

// Get returns the value for name, and whether the field exists.
func (r *Record) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Value returns the value for name, or empty string when absent.
func (r *Record) Value(name string) string {
	v, _ := r.Get(name)
	return v
}

// Set updates the value for name, appending the field if it is not present.
func (r *Record) Set(name, value string) {
	for i, f := range r.fields {
		if f.Name == name {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Has reports whether the record carries a field with the given name.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the record's fields in order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	return NewRecord(r.fields...)
}

// DisplayOrder returns field names in presentation order: schema fields that
// exist on the record first, then any stored fields the schema does not know
// about, appended in record order.
func (r *Record) DisplayOrder(schema []string) []string {
	var names []string
	for _, name := range schema {
		if r.Has(name) {
			names = append(names, name)
		}
	}
	for _, f := range r.fields {
		if !containsString(schema, f.Name) {
			names = append(names, f.Name)
		}
	}
	return names
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
