package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Submission is one parsed form payload. It only lives for the duration of a
// single webhook request.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Billing Address
	Comment string
	Items   []LineItem
}

// Address holds the billing/delivery address fields as submitted.
type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Postal  string
	Country string
}

/* =========================
   RAW FORM PAYLOAD
========================= */

// The form builder posts a rawRequest field keyed by question ids. Numeric
// values may arrive either as JSON numbers or as quoted strings, so the
// product entries use tolerant wrapper types.

type rawRequest struct {
	FullName rawFullName `json:"q20_fullName"`
	Phone    rawPhone    `json:"q19_phoneNumber"`
	Email    string      `json:"q23_email"`
	Address  rawAddress  `json:"q21_deliveryAddress"`
	Comment  string      `json:"q22_commentsplease"`
	Product  rawProduct  `json:"q54_myProduct"`
}

type rawFullName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

type rawPhone struct {
	Full string `json:"full"`
}

type rawAddress struct {
	Line1   string `json:"addr_line1"`
	Line2   string `json:"addr_line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Postal  string `json:"postal"`
	Country string `json:"country"`
}

type rawProduct struct {
	Products []rawProductEntry `json:"products"`
}

type rawProductEntry struct {
	ProductName    string          `json:"productName"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Quantity       Quantity        `json:"quantity"`
	ProductOptions []string        `json:"productOptions"`
}

// ParseSubmission decodes a rawRequest JSON document into a Submission.
// Items keep their submitted order. When no email was entered the form still
// needs a unique customer key, so a timestamped placeholder is generated.
func ParseSubmission(raw []byte) (Submission, error) {
	var req rawRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return Submission{}, fmt.Errorf("invalid submission payload: %w", err)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = fmt.Sprintf("%d@noemail.com", time.Now().UnixMilli())
	}

	items := make([]LineItem, 0, len(req.Product.Products))
	for _, p := range req.Product.Products {
		items = append(items, LineItem{
			ProductName: strings.TrimSpace(p.ProductName),
			UnitPrice:   p.UnitPrice,
			Quantity:    int(p.Quantity),
			Options:     p.ProductOptions,
		})
	}

	return Submission{
		Name:    strings.TrimSpace(req.FullName.First + " " + req.FullName.Last),
		Email:   email,
		Phone:   req.Phone.Full,
		Billing: Address(req.Address),
		Comment: strings.TrimSpace(req.Comment),
		Items:   items,
	}, nil
}
