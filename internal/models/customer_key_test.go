package models

import "testing"

func TestNewCustomerKeyNormalizes(t *testing.T) {
	billing := Address{
		Line1:  " 1 Rue de la Paix ",
		Line2:  "",
		City:   "Paris",
		Postal: " 75002",
	}
	key := NewCustomerKey(" Jane@Example.COM ", " +33612345678 ", billing, 75, 0)

	if key.Email != "jane@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", key.Email)
	}
	if key.Phone != "+33612345678" {
		t.Fatalf("expected trimmed phone, got %q", key.Phone)
	}
	if key.Street != "1 Rue de la Paix" || key.Zip != "75002" {
		t.Fatalf("expected trimmed address fields, got %+v", key)
	}
}

func TestCustomerKeyMatches(t *testing.T) {
	billing := Address{Line1: "1 Rue de la Paix", City: "Paris", Postal: "75002"}

	a := NewCustomerKey("jane@example.com", "+33612345678", billing, 75, 0)
	b := NewCustomerKey("JANE@example.com ", "+33612345678", billing, 75, 0)
	if !a.Matches(b) {
		t.Fatal("expected keys differing only in email case to match")
	}

	c := NewCustomerKey("jane@example.com", "+33612345678", billing, 75, 12)
	if a.Matches(c) {
		t.Fatal("expected keys with different state ids not to match")
	}
}

func TestCustomerKeyDomain(t *testing.T) {
	billing := Address{Line1: "1 Rue de la Paix", City: "Paris", Postal: "75002"}

	key := NewCustomerKey("jane@example.com", "+336", billing, 75, 0)
	if got := len(key.Domain()); got != 7 {
		t.Fatalf("expected 7 clauses without state, got %d", got)
	}

	withState := NewCustomerKey("jane@example.com", "+336", billing, 75, 12)
	domain := withState.Domain()
	if len(domain) != 8 {
		t.Fatalf("expected 8 clauses with state, got %d", len(domain))
	}
	last, ok := domain[len(domain)-1].([]any)
	if !ok || last[0] != "state_id" || last[2] != int64(12) {
		t.Fatalf("expected trailing state_id clause, got %v", domain[len(domain)-1])
	}
}
