package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one product entry from the submitted form. Immutable once
// parsed.
type LineItem struct {
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Options     []string
}

// DisplayName returns the catalog name for the item: the product name
// suffixed with the selected options, when any were picked.
func (l LineItem) DisplayName() string {
	if len(l.Options) == 0 {
		return l.ProductName
	}
	return fmt.Sprintf("%s (%s)", l.ProductName, strings.Join(l.Options, ", "))
}

// OrderLine is the denormalized join of a LineItem with its resolved catalog
// product, ready to be attached to a sale order.
type OrderLine struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Quantity decodes whether the form sent the value as a JSON number or as a
// quoted string.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("cannot decode %q as quantity", data)
	}
	*q = Quantity(n)
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(q))
}
