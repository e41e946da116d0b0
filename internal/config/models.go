package config

import (
	"os"

	"github.com/osrtools/osrdesk/internal/order"
)

// FacilityEnvVar overrides the stored facility identifier. It exists so the
// console can run against a facility without touching the config file.
const FacilityEnvVar = "WCS_FACILITY_ID"

// Server types selectable during first-run setup.
const (
	ServerLive = "live"
	ServerTest = "test"
)

// Settings is the entire persisted state of the console: operator identity,
// server selection, facility, capacity declarations, and the last composed
// order per mode.
type Settings struct {
	Version        int                     `yaml:"version"`
	IntroSeen      bool                    `yaml:"intro_seen"`
	Operator       string                  `yaml:"operator,omitempty"`
	ServerType     string                  `yaml:"server_type,omitempty"`
	FacilityID     string                  `yaml:"facility_id,omitempty"`
	SandboxElement string                  `yaml:"sandbox_element,omitempty"`
	CapacitySpecs  map[string]int          `yaml:"capacity_specs,omitempty"`
	Orders         map[string]*StoredOrder `yaml:"orders,omitempty"`
}

// StoredOrder is one mode's last composed order. Lines keep their field
// order, which YAML maps would lose, so fields are stored as ordered pairs.
type StoredOrder struct {
	Lines []StoredRecord `yaml:"lines"`
}

// StoredRecord is an ordered list of field pairs.
type StoredRecord []StoredField

// StoredField is one name/value pair of a stored record.
type StoredField struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:       1,
		ServerType:    ServerTest,
		CapacitySpecs: make(map[string]int),
		Orders:        make(map[string]*StoredOrder),
	}
}

// Facility returns the facility identifier, preferring the stored value and
// falling back to the environment. Empty means not configured.
func (s *Settings) Facility() string {
	if s.FacilityID != "" {
		return s.FacilityID
	}
	return os.Getenv(FacilityEnvVar)
}

// FirstRun reports whether the first-run setup flow still needs to happen.
func (s *Settings) FirstRun() bool {
	return !s.IntroSeen
}

// SetOrder stores the given collection as the mode's last composed order.
func (s *Settings) SetOrder(m order.Mode, set *order.RecordSet) {
	if s.Orders == nil {
		s.Orders = make(map[string]*StoredOrder)
	}
	stored := &StoredOrder{}
	for _, rec := range set.Records() {
		var line StoredRecord
		for _, f := range rec.Fields() {
			line = append(line, StoredField{Name: f.Name, Value: f.Value})
		}
		stored.Lines = append(stored.Lines, line)
	}
	s.Orders[m.Slug()] = stored
}

// Order returns the mode's stored order as a record set, or the mode's
// default seed when nothing has been stored yet.
func (s *Settings) Order(m order.Mode) *order.RecordSet {
	stored, ok := s.Orders[m.Slug()]
	if !ok || len(stored.Lines) == 0 {
		return order.DefaultSet(m)
	}
	records := make([]*order.Record, 0, len(stored.Lines))
	for _, line := range stored.Lines {
		fields := make([]order.Field, 0, len(line))
		for _, f := range line {
			fields = append(fields, order.Field{Name: f.Name, Value: f.Value})
		}
		records = append(records, order.NewRecord(fields...))
	}
	return order.NewRecordSet(records...)
}
