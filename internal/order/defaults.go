package order

// DefaultRecord returns the seed record for a single-record mode, or the
// seed line for a multi-line mode.
func DefaultRecord(m Mode) *Record {
	switch m {
	case PickStandard:
		return NewRecord(
			Field{FieldOrderNumber, "1"},
			Field{FieldContainerTray, "T925001"},
			Field{FieldQuantity, "10"},
			Field{FieldProductCode, "test01"},
			Field{FieldProductName, "Test-Product-1"},
		)
	case PickManual:
		return NewRecord(
			Field{FieldOrderNumber, "1"},
			Field{FieldQuantity, "10"},
			Field{FieldProductCode, "test01"},
			Field{FieldProductName, "Test-Product-1"},
		)
	case Inventory:
		return NewRecord(
			Field{FieldOrderNumber, "1"},
			Field{FieldContainerTray, "T925001"},
			Field{FieldProductCode, "test01"},
		)
	case GoodsIn:
		return NewRecord(
			Field{FieldOrderNumber, "1"},
			Field{FieldContainerTray, "T925001"},
			Field{FieldContainerType, "full"},
			Field{FieldQuantity, "10"},
			Field{FieldProductCode, "test01"},
			Field{FieldProductName, "Test-Product-1"},
		)
	case GoodsAdd:
		return NewRecord(
			Field{FieldOrderNumber, "1"},
			Field{FieldQuantity, "10"},
			Field{FieldProductCode, "test01"},
			Field{FieldProductName, "Test-Product-1"},
		)
	case Transport:
		return NewRecord(
			Field{FieldOrderNumber, "1"},
			Field{FieldNewOwner, "SRC"},
			Field{FieldOwner, "SRC"},
			Field{FieldTargetZone, "CIRCULATION"},
			Field{FieldContainerNo, "T925001"},
			Field{FieldContainerType, "OSR_EVO"},
			Field{FieldCompartment, "full"},
			Field{FieldSlotNumber, "1"},
			Field{FieldQuantity, "10"},
			Field{FieldProductCode, "test01"},
			Field{FieldProductName, "Test-Product-1"},
		)
	}
	return NewRecord()
}

// DefaultSet returns the seed record set for a multi-line mode.
func DefaultSet(m Mode) *RecordSet {
	return NewRecordSet(DefaultRecord(m))
}
