package order

import (
	"reflect"
	"strconv"
	"testing"
)

func TestRecordSetPreservesOrder(t *testing.T) {
	r := NewRecord(
		Field{"Quantity", "10"},
		Field{"Product Code", "test01"},
	)

	r.Set("Quantity", "25")
	r.Set("Notes", "fragile")

	got := r.Fields()
	want := []Field{
		{"Quantity", "25"},
		{"Product Code", "test01"},
		{"Notes", "fragile"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}

func TestRecordCloneIsIndependent(t *testing.T) {
	r := NewRecord(Field{"Quantity", "10"})
	c := r.Clone()
	c.Set("Quantity", "99")

	if r.Value("Quantity") != "10" {
		t.Errorf("mutating clone changed original: %q", r.Value("Quantity"))
	}
}

func TestRecordDisplayOrder(t *testing.T) {
	r := NewRecord(
		Field{"Extra A", "x"},
		Field{"Quantity", "10"},
		Field{"Product Code", "test01"},
		Field{"Extra B", "y"},
	)
	schema := []string{"Quantity", "Product Code", "Product Name"}

	got := r.DisplayOrder(schema)
	want := []string{"Quantity", "Product Code", "Extra A", "Extra B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DisplayOrder() = %v, want %v", got, want)
	}
}

func TestRecordSetNeverEmpties(t *testing.T) {
	set := NewRecordSet(DefaultRecord(PickStandard))

	// Random-ish add/delete sequence; length must stay >= 1 throughout.
	ops := []string{"d", "a", "a", "d", "d", "d", "d", "a", "d", "d"}
	for i, op := range ops {
		switch op {
		case "a":
			set.Append()
		case "d":
			set.Delete(0)
		}
		if set.Len() < 1 {
			t.Fatalf("after op %d (%s): set emptied", i, op)
		}
	}
}

func TestRecordSetDeleteLastRefused(t *testing.T) {
	set := NewRecordSet(DefaultRecord(PickManual))
	if set.Delete(0) {
		t.Error("Delete() on sole record should be refused")
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1", set.Len())
	}
}

func TestRecordSetAppendClonesLast(t *testing.T) {
	set := NewRecordSet(DefaultRecord(PickStandard))
	set.At(0).Set(FieldProductCode, "widget7")

	idx := set.Append()
	if idx != 1 {
		t.Fatalf("Append() index = %d, want 1", idx)
	}
	if got := set.At(1).Value(FieldProductCode); got != "widget7" {
		t.Errorf("appended record Product Code = %q, want widget7", got)
	}

	// Clone must be independent of the source line.
	set.At(1).Set(FieldProductCode, "widget8")
	if got := set.At(0).Value(FieldProductCode); got != "widget7" {
		t.Errorf("editing appended record changed source: %q", got)
	}
}

func TestRecordSetRenumber(t *testing.T) {
	set := NewRecordSet(DefaultRecord(Transport))
	set.Append()
	set.Append()
	set.Append()
	set.Delete(1)
	set.Renumber(FieldSlotNumber)

	for i := 0; i < set.Len(); i++ {
		want := strconv.Itoa(i + 1)
		if got := set.At(i).Value(FieldSlotNumber); got != want {
			t.Errorf("record %d Slot Number = %q, want %q", i, got, want)
		}
	}
}

func TestRecordSetBroadcast(t *testing.T) {
	set := NewRecordSet(DefaultRecord(PickStandard))
	set.Append()
	set.Append()

	n := set.Broadcast(FieldOrderNumber, "42")
	if n != 3 {
		t.Errorf("Broadcast() updated %d records, want 3", n)
	}
	for i := 0; i < set.Len(); i++ {
		if got := set.At(i).Value(FieldOrderNumber); got != "42" {
			t.Errorf("record %d Order Number = %q, want 42", i, got)
		}
	}
}

func TestModeSlugRoundTrip(t *testing.T) {
	for _, m := range Modes {
		got, ok := ModeFromSlug(m.Slug())
		if !ok || got != m {
			t.Errorf("ModeFromSlug(%q) = %q, %v", m.Slug(), got, ok)
		}
	}
}

func TestModeSchemasCoverDefaults(t *testing.T) {
	for _, m := range Modes {
		schema := m.Schema()
		if len(schema) == 0 {
			t.Errorf("%s: empty schema", m)
			continue
		}
		rec := DefaultRecord(m)
		for _, f := range rec.Fields() {
			if !containsString(schema, f.Name) {
				t.Errorf("%s: default field %q missing from schema", m, f.Name)
			}
		}
	}
}
