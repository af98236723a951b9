package competition

import "testing"

func TestNewCatalog_NormalizesAndIndexes(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog([]Competition{
		{Code: " pl ", Slug: "Premier-League", Name: "Premier League", Preload: true},
		{Code: "PD", Slug: "la-liga", Name: "La Liga", Preload: true},
		{Code: "SA", Slug: "serie-a", Name: "Serie A"},
	})
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}

	item, ok := catalog.BySlug("premier-league")
	if !ok || item.Code != "PL" {
		t.Fatalf("unexpected slug lookup: %+v ok=%v", item, ok)
	}
	if _, ok := catalog.ByCode("sa"); !ok {
		t.Fatalf("expected code lookup to be case-insensitive")
	}

	codes := catalog.PreloadCodes()
	if len(codes) != 2 || codes[0] != "PL" || codes[1] != "PD" {
		t.Fatalf("unexpected preload codes: %v", codes)
	}
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog([]Competition{
		{Code: "PL", Slug: "premier-league", Name: "Premier League"},
		{Code: "PL", Slug: "epl", Name: "EPL"},
	})
	if err == nil {
		t.Fatalf("expected duplicate code error")
	}
}

func TestValidCode(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"PL", "PD", "BL1", "CL"} {
		if !ValidCode(code) {
			t.Fatalf("expected %q valid", code)
		}
	}
	for _, code := range []string{"", "P", "pl", "../x", "PL/standings"} {
		if ValidCode(code) {
			t.Fatalf("expected %q invalid", code)
		}
	}
}
