package order

import "strconv"

// RecordSet is an ordered, non-empty collection of records sharing a schema.
// The last record can never be removed; callers get a defined error instead.
type RecordSet struct {
	records []*Record
}

// NewRecordSet builds a set from the given records. At least one record is
// required; passing none seeds the set with an empty record so the non-empty
// invariant holds from construction.
func NewRecordSet(records ...*Record) *RecordSet {
	if len(records) == 0 {
		records = []*Record{NewRecord()}
	}
	return &RecordSet{records: records}
}

// Len returns the number of records in the set.
func (s *RecordSet) Len() int {
	return len(s.records)
}

// At returns the record at index i.
func (s *RecordSet) At(i int) *Record {
	return s.records[i]
}

// Records returns the underlying records in order.
func (s *RecordSet) Records() []*Record {
	return s.records
}

// First returns the first record. The set is never empty so this is safe.
func (s *RecordSet) First() *Record {
	return s.records[0]
}

// Append adds a record cloned from the last one and returns its index.
func (s *RecordSet) Append() int {
	s.records = append(s.records, s.records[len(s.records)-1].Clone())
	return len(s.records) - 1
}

// Delete removes the record at index i. The removal is refused when it would
// empty the set; the return value reports whether anything was removed.
func (s *RecordSet) Delete(i int) bool {
	if len(s.records) <= 1 {
		return false
	}
	if i < 0 || i >= len(s.records) {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}

// Clone returns a deep copy of the set.
func (s *RecordSet) Clone() *RecordSet {
	out := make([]*Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return &RecordSet{records: out}
}

// Renumber rewrites the named field to the contiguous sequence 1..N in record
// order. Records missing the field are left untouched.
func (s *RecordSet) Renumber(field string) {
	for i, r := range s.records {
		if r.Has(field) {
			r.Set(field, strconv.Itoa(i+1))
		}
	}
}

// Broadcast writes the same value for the named field to every record that
// carries it, and returns how many records were updated.
func (s *RecordSet) Broadcast(field, value string) int {
	n := 0
	for _, r := range s.records {
		if r.Has(field) {
			r.Set(field, value)
			n++
		}
	}
	return n
}
