package order

// Mode identifies an order processing mode. The string form is what the
// operator sees in menus.
type Mode string

const (
	PickStandard Mode = "Pick Standard"
	PickManual   Mode = "Pick Manual"
	Inventory    Mode = "Inventory"
	GoodsIn      Mode = "Goods In"
	GoodsAdd     Mode = "Goods Add"
	Transport    Mode = "Transport"
)

// Modes lists all order modes in menu order.
var Modes = []Mode{
	PickStandard,
	PickManual,
	Inventory,
	GoodsIn,
	GoodsAdd,
	Transport,
}

// Well-known field names shared across schemas.
const (
	FieldOrderNumber    = "Order Number"
	FieldContainerTray  = "Container / Tray Number"
	FieldQuantity       = "Quantity"
	FieldProductCode    = "Product Code"
	FieldProductName    = "Product Name"
	FieldContainerType  = "Container Type"
	FieldOperator       = "Operator"
	FieldNewOwner       = "New Owner"
	FieldOwner          = "Owner"
	FieldTargetZone     = "Target Zone"
	FieldContainerNo    = "Container Number"
	FieldCompartment    = "Compartment Type"
	FieldSlotNumber     = "Slot Number"
)

// MultiLine reports whether the mode edits a RecordSet (one record per line
// or slot) instead of a single record.
func (m Mode) MultiLine() bool {
	switch m {
	case PickStandard, PickManual, Transport:
		return true
	}
	return false
}

// Slug returns the mode's stable identifier used in config files and the
// history store.
func (m Mode) Slug() string {
	switch m {
	case PickStandard:
		return "pick_standard"
	case PickManual:
		return "pick_manual"
	case Inventory:
		return "inventory"
	case GoodsIn:
		return "goods_in"
	case GoodsAdd:
		return "goods_add"
	case Transport:
		return "transport"
	}
	return "unknown"
}

// ModeFromSlug resolves a stored slug back to a Mode.
func ModeFromSlug(slug string) (Mode, bool) {
	for _, m := range Modes {
		if m.Slug() == slug {
			return m, true
		}
	}
	return "", false
}

// Schema returns the field display order for the mode.
func (m Mode) Schema() []string {
	return fieldOrder[m]
}

// SequenceField returns the name of the mode's sequencing field, if it has
// one. Sequenced fields are renumbered 1..N whenever lines are added or
// removed.
func (m Mode) SequenceField() (string, bool) {
	if m == Transport {
		return FieldSlotNumber, true
	}
	return "", false
}

// SharedFields returns the order-level fields that must hold the same value
// on every line of a multi-line order. Editing one line fans the new value
// out to all lines.
func (m Mode) SharedFields() []string {
	switch m {
	case PickStandard:
		return []string{FieldOrderNumber, FieldContainerTray}
	case PickManual:
		return []string{FieldOrderNumber}
	case Transport:
		return []string{
			FieldOrderNumber, FieldNewOwner, FieldOwner, FieldTargetZone,
			FieldContainerNo, FieldContainerType, FieldCompartment,
		}
	}
	return nil
}

// LookupFields returns the fields that support assisted lookup against the
// warehouse database.
var LookupFields = []string{FieldContainerType, FieldProductCode, FieldProductName}

// LookupEligible reports whether the named field supports assisted lookup.
func LookupEligible(field string) bool {
	return containsString(LookupFields, field)
}

var fieldOrder = map[Mode][]string{
	PickStandard: {
		FieldQuantity, FieldContainerTray, FieldProductCode, FieldProductName,
		FieldOrderNumber, FieldOperator,
	},
	PickManual: {
		FieldQuantity, FieldProductCode, FieldProductName,
		FieldOrderNumber, FieldOperator,
	},
	Inventory: {
		FieldContainerTray, FieldProductCode, FieldOrderNumber, FieldOperator,
	},
	GoodsIn: {
		FieldQuantity, FieldContainerTray, FieldProductCode, FieldProductName,
		FieldContainerType, FieldOrderNumber, FieldOperator,
	},
	GoodsAdd: {
		FieldQuantity, FieldProductCode, FieldProductName,
		FieldOrderNumber, FieldOperator,
	},
	Transport: {
		FieldQuantity, FieldContainerNo, FieldProductCode, FieldProductName,
		FieldTargetZone, FieldContainerType, FieldCompartment,
		FieldNewOwner, FieldOwner, FieldSlotNumber,
		FieldOrderNumber, FieldOperator,
	},
}
