package domain

import "testing"

func TestZoneDisplayName(t *testing.T) {
	stored := ZoneAllStored
	if got := ZoneDisplayName(&stored); got == nil || *got != ZoneAllDisplay {
		t.Fatalf("expected sentinel %q, got %v", ZoneAllDisplay, got)
	}

	north := "Zona Norte"
	if got := ZoneDisplayName(&north); got == nil || *got != north {
		t.Fatalf("expected %q unchanged, got %v", north, got)
	}

	if got := ZoneDisplayName(nil); got != nil {
		t.Fatalf("expected nil to stay nil, got %v", *got)
	}
}

func TestZoneStoredName(t *testing.T) {
	if got := ZoneStoredName(ZoneAllDisplay); got != ZoneAllStored {
		t.Fatalf("expected %q, got %q", ZoneAllStored, got)
	}
	if got := ZoneStoredName("Zona Sur"); got != "Zona Sur" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
