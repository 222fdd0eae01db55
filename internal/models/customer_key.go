package models

import "strings"

// CustomerKey is the normalized deduplication key for a customer record.
// Two submissions that produce equal keys refer to the same customer. The
// key is pure data so matching can be tested without the ERP.
type CustomerKey struct {
	Email     string
	Phone     string
	Street    string
	Street2   string
	City      string
	Zip       string
	CountryID int64
	StateID   int64 // zero when the state could not be resolved
}

// NewCustomerKey builds a normalized key: the email is lowercased and all
// free-text fields are trimmed.
func NewCustomerKey(email, phone string, billing Address, countryID, stateID int64) CustomerKey {
	return CustomerKey{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		Street:    strings.TrimSpace(billing.Line1),
		Street2:   strings.TrimSpace(billing.Line2),
		City:      strings.TrimSpace(billing.City),
		Zip:       strings.TrimSpace(billing.Postal),
		CountryID: countryID,
		StateID:   stateID,
	}
}

// Matches reports whether two keys identify the same customer.
func (k CustomerKey) Matches(other CustomerKey) bool {
	return k == other
}

// Domain returns the exact-match search filter for the key in the ERP's
// triple format. The state clause is only present when a state was resolved.
func (k CustomerKey) Domain() []any {
	domain := []any{
		[]any{"email", "=", k.Email},
		[]any{"phone", "=", k.Phone},
		[]any{"street", "=", k.Street},
		[]any{"street2", "=", k.Street2},
		[]any{"city", "=", k.City},
		[]any{"zip", "=", k.Zip},
		[]any{"country_id", "=", k.CountryID},
	}
	if k.StateID != 0 {
		domain = append(domain, []any{"state_id", "=", k.StateID})
	}
	return domain
}
