package payload

import (
	"regexp"
	"strings"
)

var orderNumberRe = regexp.MustCompile(`order_number="([^"]+)"`)

// OrderID extracts the order number from a payload, or "unknown" when the
// document carries none.
func OrderID(xml string) string {
	if m := orderNumberRe.FindStringSubmatch(xml); m != nil {
		return m[1]
	}
	return "unknown"
}

// OrderType classifies a payload by its root order element. Goods-add orders
// share the goods_in_order element and are told apart by processing mode.
// Transport must win over inventory: transport documents nest
// inventory_order_line elements.
func OrderType(xml string) string {
	switch {
	case strings.Contains(xml, "<pick_order"):
		return "pick"
	case strings.Contains(xml, "<goods_in_order"):
		if strings.Contains(xml, `processing_mode="renewal"`) {
			return "goods_add"
		}
		return "goods_in"
	case strings.Contains(xml, "<transport_order"):
		return "transport"
	case strings.Contains(xml, "<inventory_order"):
		return "inventory"
	}
	return "unknown"
}
