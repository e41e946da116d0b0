package sandbox

import "testing"

func TestPrefixNormalization(t *testing.T) {
	tests := []struct {
		facility string
		want     string
	}{
		{"osr1", "simosr1"},
		{"1", "simosr1"},
		{"OSR2", "simosr2"},
		{" 3 ", "simosr3"},
	}
	for _, tt := range tests {
		if got := NewGenerator(tt.facility).Prefix(); got != tt.want {
			t.Errorf("NewGenerator(%q).Prefix() = %q, want %q", tt.facility, got, tt.want)
		}
	}
}

func TestInsertRemoveCommands(t *testing.T) {
	g := NewGenerator("osr1")
	if got := g.Insert("workflow.input.station.01", "T925001"); got != "simosr1 -i workflow.input.station.01 T925001" {
		t.Errorf("Insert = %q", got)
	}
	if got := g.Remove("workflow.input.station.01", "T925001"); got != "simosr1 -r workflow.input.station.01 T925001" {
		t.Errorf("Remove = %q", got)
	}
}

func TestEnableDisableCommands(t *testing.T) {
	g := NewGenerator("osr2")
	tests := []struct {
		kind ElementKind
		flag string
	}{
		{KindElement, "e"},
		{KindStation, "s"},
		{KindGateway, "g"},
		{ElementKind("bogus"), "e"},
	}
	for _, tt := range tests {
		want := "simosr2 --enable-element " + tt.flag + " workflow.x"
		if got := g.Enable("workflow.x", tt.kind); got != want {
			t.Errorf("Enable(%q) = %q, want %q", tt.kind, got, want)
		}
		want = "simosr2 --disable-element " + tt.flag + " workflow.x"
		if got := g.Disable("workflow.x", tt.kind); got != want {
			t.Errorf("Disable(%q) = %q, want %q", tt.kind, got, want)
		}
	}
}

func TestCarrierFromPayload(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			"pick order container",
			`<pick_order order_number="jo-pick-1" container_number="T925001"/>`,
			"T925001",
		},
		{
			"goods-in compartment",
			`<goods_in_order order_number="jo-goods-in-1" compartment_number="T925002"/>`,
			"T925002",
		},
		{
			"placeholder skipped",
			`<order container_id="none" order_number="jo-inv-1"/>`,
			"carrier_jo-inv-1",
		},
		{
			"fallback to order number",
			`<goods_in_order order_number="jo-goods-add-7" processing_mode="renewal"/>`,
			"carrier_jo-goods-add-7",
		},
		{
			"no hints at all",
			`<host2osr/>`,
			"carrier_test",
		},
	}
	for _, tt := range tests {
		if got := CarrierFromPayload(tt.xml); got != tt.want {
			t.Errorf("%s: CarrierFromPayload = %q, want %q", tt.name, got, tt.want)
		}
	}
}
