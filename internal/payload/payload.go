// Package payload builds the host2osr XML documents the control system
// accepts, one document shape per order mode. Field values arrive as strings
// from the editor; validation and numeric coercion happen here, before a
// dispatch is ever offered.
package payload

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/osrtools/osrdesk/internal/order"
)

// ValidationError reports a field that blocks payload generation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order: %s: %s", e.Field, e.Reason)
}

// Options carries order-independent inputs to the builder.
type Options struct {
	// Operator prefixes every order number, e.g. "jo-pick-1".
	Operator string
	// CapacitySpecs declares compartment capacities on goods-in and
	// goods-add orders, keyed by compartment type.
	CapacitySpecs map[string]int
}

// Build renders the order collection into the mode's XML document. Multi-line
// modes emit one line element per record; order-level attributes come from
// the first record.
func Build(m order.Mode, set *order.RecordSet, opts Options) (string, error) {
	if opts.Operator == "" {
		return "", &ValidationError{Field: "operator", Reason: "operator name is required"}
	}
	if err := validate(m, set); err != nil {
		return "", err
	}

	head := set.First()
	switch m {
	case order.PickStandard:
		return buildPickStandard(head, set, opts), nil
	case order.PickManual:
		return buildPickManual(head, set, opts), nil
	case order.Inventory:
		return buildInventory(head, opts), nil
	case order.GoodsIn:
		return buildGoodsIn(head, opts), nil
	case order.GoodsAdd:
		return buildGoodsAdd(head, opts), nil
	case order.Transport:
		return buildTransport(head, set, opts), nil
	}
	return "", &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown order mode %q", m)}
}

func validate(m order.Mode, set *order.RecordSet) error {
	for _, rec := range set.Records() {
		for _, name := range requiredFields[m] {
			if strings.TrimSpace(rec.Value(name)) == "" {
				return &ValidationError{Field: name, Reason: "value is required"}
			}
		}
		if rec.Has(order.FieldQuantity) {
			qty := rec.Value(order.FieldQuantity)
			n, err := strconv.Atoi(qty)
			if err != nil || n <= 0 {
				return &ValidationError{Field: order.FieldQuantity, Reason: fmt.Sprintf("%q is not a positive integer", qty)}
			}
		}
	}
	return nil
}

var requiredFields = map[order.Mode][]string{
	order.PickStandard: {
		order.FieldOrderNumber, order.FieldContainerTray, order.FieldQuantity,
		order.FieldProductCode, order.FieldProductName,
	},
	order.PickManual: {
		order.FieldOrderNumber, order.FieldQuantity,
		order.FieldProductCode, order.FieldProductName,
	},
	order.Inventory: {
		order.FieldOrderNumber, order.FieldContainerTray, order.FieldProductCode,
	},
	order.GoodsIn: {
		order.FieldOrderNumber, order.FieldContainerTray, order.FieldContainerType,
		order.FieldQuantity, order.FieldProductCode, order.FieldProductName,
	},
	order.GoodsAdd: {
		order.FieldOrderNumber, order.FieldQuantity,
		order.FieldProductCode, order.FieldProductName,
	},
	order.Transport: {
		order.FieldOrderNumber, order.FieldNewOwner, order.FieldOwner,
		order.FieldTargetZone, order.FieldContainerNo, order.FieldContainerType,
		order.FieldCompartment, order.FieldSlotNumber, order.FieldQuantity,
		order.FieldProductCode, order.FieldProductName,
	},
}

func buildPickStandard(head *order.Record, set *order.RecordSet, opts Options) string {
	var lines strings.Builder
	for _, rec := range set.Records() {
		fmt.Fprintf(&lines, "    <pick_order_line quantity=\"%s\" target_slot=\"1\">\n", rec.Value(order.FieldQuantity))
		fmt.Fprintf(&lines, "      <product product_code=\"%s\" name=\"%s\" returned=\"false\"/>\n",
			esc(rec.Value(order.FieldProductCode)), esc(rec.Value(order.FieldProductName)))
		lines.WriteString("    </pick_order_line>\n")
	}
	return document(fmt.Sprintf(
		"  <pick_order order_number=\"%s\" container_number=\"%s\" processing_mode=\"standard\">\n%s  </pick_order>\n",
		esc(opts.Operator+"-pick-"+head.Value(order.FieldOrderNumber)),
		esc(head.Value(order.FieldContainerTray)),
		lines.String()))
}

func buildPickManual(head *order.Record, set *order.RecordSet, opts Options) string {
	var lines strings.Builder
	for _, rec := range set.Records() {
		fmt.Fprintf(&lines, "    <pick_order_line quantity=\"%s\">\n", rec.Value(order.FieldQuantity))
		fmt.Fprintf(&lines, "      <product product_code=\"%s\" name=\"%s\"/>\n",
			esc(rec.Value(order.FieldProductCode)), esc(rec.Value(order.FieldProductName)))
		lines.WriteString("    </pick_order_line>\n")
	}
	return document(fmt.Sprintf(
		"  <pick_order order_number=\"%s\" processing_mode=\"manual\">\n%s  </pick_order>\n",
		esc(opts.Operator+"-pick-manual-"+head.Value(order.FieldOrderNumber)),
		lines.String()))
}

func buildInventory(head *order.Record, opts Options) string {
	return document(fmt.Sprintf(
		"  <inventory_order order_number=\"%s\" processing_mode=\"standard\" container_number=\"%s\">\n"+
			"    <product product_code=\"%s\"/>\n"+
			"  </inventory_order>\n",
		esc(opts.Operator+"-inv-"+head.Value(order.FieldOrderNumber)),
		esc(head.Value(order.FieldContainerTray)),
		esc(head.Value(order.FieldProductCode))))
}

func buildGoodsIn(head *order.Record, opts Options) string {
	return document(fmt.Sprintf(
		"  <goods_in_order order_number=\"%s\" compartment_number=\"%s\" compartment_type=\"%s\" processing_mode=\"standard\">\n"+
			"    <goods_in_order_line quantity_advertised=\"%s\">\n"+
			"      <product product_code=\"%s\" name=\"%s\" returned=\"false\" bundle_size=\"1\">\n"+
			"%s"+
			"      </product>\n"+
			"    </goods_in_order_line>\n"+
			"  </goods_in_order>\n",
		esc(opts.Operator+"-goods-in-"+head.Value(order.FieldOrderNumber)),
		esc(head.Value(order.FieldContainerTray)),
		esc(head.Value(order.FieldContainerType)),
		head.Value(order.FieldQuantity),
		esc(head.Value(order.FieldProductCode)),
		esc(head.Value(order.FieldProductName)),
		capacitySpecs(opts.CapacitySpecs)))
}

func buildGoodsAdd(head *order.Record, opts Options) string {
	return document(fmt.Sprintf(
		"  <goods_in_order order_number=\"%s\" processing_mode=\"renewal\">\n"+
			"    <goods_in_order_line quantity_advertised=\"%s\">\n"+
			"      <product product_code=\"%s\" name=\"%s\" returned=\"false\" bundle_size=\"1\">\n"+
			"%s"+
			"      </product>\n"+
			"    </goods_in_order_line>\n"+
			"  </goods_in_order>\n",
		esc(opts.Operator+"-goods-add-"+head.Value(order.FieldOrderNumber)),
		head.Value(order.FieldQuantity),
		esc(head.Value(order.FieldProductCode)),
		esc(head.Value(order.FieldProductName)),
		capacitySpecs(opts.CapacitySpecs)))
}

func buildTransport(head *order.Record, set *order.RecordSet, opts Options) string {
	var slots strings.Builder
	for _, rec := range set.Records() {
		fmt.Fprintf(&slots, "      <slot_contents slot_number=\"%s\">\n", rec.Value(order.FieldSlotNumber))
		fmt.Fprintf(&slots, "        <inventory_order_line current_expected_quantity=\"%s\">\n", rec.Value(order.FieldQuantity))
		fmt.Fprintf(&slots, "          <product product_code=\"%s\" name=\"%s\" bundle_size=\"1\"/>\n",
			esc(rec.Value(order.FieldProductCode)), esc(rec.Value(order.FieldProductName)))
		slots.WriteString("        </inventory_order_line>\n")
		slots.WriteString("      </slot_contents>\n")
	}
	return document(fmt.Sprintf(
		"  <transport_order order_number=\"%s\" processing_mode=\"standard\" preannouncement=\"true\" new_owner=\"%s\" requires_route_assistance=\"false\">\n"+
			"    <transport_order_line target_zone=\"%s\"/>\n"+
			"    <container container_number=\"%s\" container_type=\"%s\" compartment_type=\"%s\" owner=\"%s\">\n"+
			"%s"+
			"    </container>\n"+
			"  </transport_order>\n",
		esc(opts.Operator+"-transport-"+head.Value(order.FieldOrderNumber)),
		esc(head.Value(order.FieldNewOwner)),
		esc(head.Value(order.FieldTargetZone)),
		esc(head.Value(order.FieldContainerNo)),
		esc(head.Value(order.FieldContainerType)),
		esc(head.Value(order.FieldCompartment)),
		esc(head.Value(order.FieldOwner)),
		slots.String()))
}

func capacitySpecs(specs map[string]int) string {
	if len(specs) == 0 {
		return ""
	}
	types := make([]string, 0, len(specs))
	for t := range specs {
		types = append(types, t)
	}
	sort.Strings(types)
	var b strings.Builder
	for _, t := range types {
		fmt.Fprintf(&b, "        <capacity_spec compartment_type=\"%s\" maximum_quantity=\"%d\"/>\n", esc(t), specs[t])
	}
	return b.String()
}

func document(body string) string {
	return "<host2osr>\n" + body + "</host2osr>"
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func esc(s string) string {
	return escaper.Replace(s)
}
