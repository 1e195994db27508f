package clone_test

import (
	"testing"

	"hotel_builder/internal/clone"
)

func locate(t *testing.T, page, lang string) map[clone.SlotKind]int {
	t.Helper()
	doc, err := clone.Parse(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	counts := map[clone.SlotKind]int{}
	for _, m := range clone.LocateSlots(doc, lang) {
		counts[m.Kind]++
	}
	return counts
}

func TestLocateSlots_SampleCoverage(t *testing.T) {
	counts := locate(t, samplePage, "en")

	wantAtLeast := map[clone.SlotKind]int{
		clone.SlotTitle:       1,
		clone.SlotHeading:     1,
		clone.SlotPhone:       1,
		clone.SlotEmail:       1,
		clone.SlotAddress:     1,
		clone.SlotDescription: 1,
		clone.SlotLogo:        1,
		clone.SlotSocial:      2,
		clone.SlotStars:       1,
		clone.SlotGallery:     5,
		clone.SlotCheckIn:     1,
		clone.SlotCheckOut:    1,
	}
	for kind, want := range wantAtLeast {
		if counts[kind] < want {
			t.Errorf("%s: got %d matches, want at least %d", kind, counts[kind], want)
		}
	}
}

// Every h1 is a brand heading; h2/h3 only qualify with hospitality vocabulary.
func TestLocateSlots_HeadingRules(t *testing.T) {
	counts := locate(t, `<html><body><h1>Lorem Ipsum</h1><h2>Latest News</h2></body></html>`, "en")
	if counts[clone.SlotHeading] != 1 {
		t.Fatalf("want only the h1 claimed: %v", counts)
	}
}

func TestLocateSlots_TurkishKeywords(t *testing.T) {
	page := `<html><body>
	  <h1>Palmiye Oteline Hoş Geldiniz</h1>
	  <div class="adres">Atatürk Caddesi 12, Antalya</div>
	</body></html>`
	counts := locate(t, page, "tr")
	if counts[clone.SlotHeading] != 1 {
		t.Errorf("turkish heading not matched: %v", counts)
	}
	if counts[clone.SlotAddress] != 1 {
		t.Errorf("turkish address hint not matched: %v", counts)
	}
}

// A leaf advertising an email address with a keyword counts even when the
// address itself sits elsewhere.
func TestLocateSlots_EmailKeywordHint(t *testing.T) {
	counts := locate(t, `<html><body><p>Bize e-posta gönderin</p></body></html>`, "tr")
	if counts[clone.SlotEmail] != 1 {
		t.Fatalf("keyword-hinted email leaf not claimed: %v", counts)
	}

	counts = locate(t, `<html><body><p>Email our front desk any time</p></body></html>`, "en")
	if counts[clone.SlotEmail] != 1 {
		t.Fatalf("english email keyword not claimed: %v", counts)
	}
}

// One node backs at most one text slot; the address block must not also be
// claimed as a description.
func TestLocateSlots_FirstRuleWins(t *testing.T) {
	page := `<html><body>
	  <p class="address about">Hotel Street 5</p>
	</body></html>`
	doc, err := clone.Parse(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var kinds []clone.SlotKind
	for _, m := range clone.LocateSlots(doc, "en") {
		if m.Attr == "" {
			kinds = append(kinds, m.Kind)
		}
	}
	if len(kinds) != 1 || kinds[0] != clone.SlotAddress {
		t.Fatalf("expected a single address claim, got %v", kinds)
	}
}
