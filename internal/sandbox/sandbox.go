// Package sandbox generates simulator shell commands for test facilities:
// inserting and removing carriers, enabling and disabling workflow elements.
// Commands are offered to the operator and copied to the clipboard, never
// executed by the console itself.
package sandbox

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultElement is the insertion point offered when the operator has not
// saved one yet.
const DefaultElement = "workflow.input.station.01"

// ElementKind selects the --enable/--disable target type.
type ElementKind string

const (
	KindElement ElementKind = "element"
	KindStation ElementKind = "station"
	KindGateway ElementKind = "gateway"
)

func (k ElementKind) flag() string {
	switch k {
	case KindStation:
		return "s"
	case KindGateway:
		return "g"
	default:
		return "e"
	}
}

// Generator builds simulator commands for one facility.
type Generator struct {
	facility string
}

// NewGenerator creates a generator. The facility identifier is normalized to
// the simulator's naming scheme: "1" and "osr1" both yield the "simosr1"
// prefix.
func NewGenerator(facility string) *Generator {
	f := strings.ToLower(strings.TrimSpace(facility))
	if !strings.HasPrefix(f, "osr") {
		f = "osr" + f
	}
	return &Generator{facility: f}
}

// Prefix returns the simulator command prefix, e.g. "simosr1".
func (g *Generator) Prefix() string {
	return "sim" + g.facility
}

// Insert returns the command placing a carrier onto an element.
func (g *Generator) Insert(element, carrier string) string {
	return fmt.Sprintf("%s -i %s %s", g.Prefix(), element, carrier)
}

// Remove returns the command taking a carrier off an element.
func (g *Generator) Remove(element, carrier string) string {
	return fmt.Sprintf("%s -r %s %s", g.Prefix(), element, carrier)
}

// Enable returns the command enabling an element, station or gateway.
func (g *Generator) Enable(element string, kind ElementKind) string {
	return fmt.Sprintf("%s --enable-element %s %s", g.Prefix(), kind.flag(), element)
}

// Disable returns the command disabling an element, station or gateway.
func (g *Generator) Disable(element string, kind ElementKind) string {
	return fmt.Sprintf("%s --disable-element %s %s", g.Prefix(), kind.flag(), element)
}

// Carrier patterns, most specific first.
var carrierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)container_number="([^"]+)"`),
	regexp.MustCompile(`(?i)compartment_number="([^"]+)"`),
	regexp.MustCompile(`(?i)container_id="([^"]+)"`),
	regexp.MustCompile(`(?i)tray_id="([^"]+)"`),
	regexp.MustCompile(`(?i)carrier_id="([^"]+)"`),
	regexp.MustCompile(`(?i)<container[^>]*>([^<]+)</container>`),
	regexp.MustCompile(`(?i)<tray[^>]*>([^<]+)</tray>`),
}

var orderNumberPattern = regexp.MustCompile(`order_number="([^"]+)"`)

// CarrierFromPayload extracts the carrier identifier referenced by an order
// payload. When the payload names no carrier, a placeholder derived from the
// order number is returned so the insert command is still usable.
func CarrierFromPayload(xml string) string {
	for _, re := range carrierPatterns {
		if m := re.FindStringSubmatch(xml); m != nil {
			carrier := strings.TrimSpace(m[1])
			switch strings.ToLower(carrier) {
			case "", "none", "null", "undefined":
				continue
			}
			return carrier
		}
	}
	if m := orderNumberPattern.FindStringSubmatch(xml); m != nil {
		return "carrier_" + m[1]
	}
	return "carrier_test"
}

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
