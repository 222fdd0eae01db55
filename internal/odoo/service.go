package odoo

import "orderbridge/internal/models"

// Service is the typed surface of the ERP used by the order flow. It exists
// so the resolvers can be exercised against a fake without a live Odoo.
type Service interface {
	FindCountry(name string) (int64, bool, error)
	FindState(name string, countryID int64) (int64, bool, error)
	SearchPartners(domain []any) ([]int64, error)
	CreatePartner(fields map[string]any) (int64, error)
	FindProduct(name string, price float64) (int64, bool, error)
	CreateProduct(name string, price float64) (int64, error)
	CreateSaleOrder(partnerID int64, lines []any, note string) (int64, error)
	ConfirmSaleOrder(orderID int64) error
}

var _ Service = (*Client)(nil)

// FindCountry resolves a country name to its record id.
func (c *Client) FindCountry(name string) (int64, bool, error) {
	ids, err := c.search("res.country", []any{[]any{"name", "=", name}})
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// FindState resolves a state name scoped to a country. A miss is not an
// error; callers omit the state in that case.
func (c *Client) FindState(name string, countryID int64) (int64, bool, error) {
	ids, err := c.search("res.country.state", []any{
		[]any{"name", "=", name},
		[]any{"country_id", "=", countryID},
	})
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// SearchPartners returns the ids of partners matching the given domain, in
// whatever order the store returns them.
func (c *Client) SearchPartners(domain []any) ([]int64, error) {
	return c.search("res.partner", domain)
}

// CreatePartner creates a res.partner record and returns its id.
func (c *Client) CreatePartner(fields map[string]any) (int64, error) {
	return c.create("res.partner", fields)
}

// FindProduct looks up a product by exact name and list price.
func (c *Client) FindProduct(name string, price float64) (int64, bool, error) {
	var rows []struct {
		ID int64 `xmlrpc:"id"`
	}
	domain := []any{
		[]any{"name", "=", name},
		[]any{"list_price", "=", price},
	}
	err := c.ExecuteKw("product.product", "search_read", []any{domain},
		map[string]any{"fields": []string{"id"}, "limit": 1}, &rows)
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0].ID, true, nil
}

// CreateProduct creates a consumable product with the given list price.
func (c *Client) CreateProduct(name string, price float64) (int64, error) {
	return c.create("product.product", map[string]any{
		"name":       name,
		"list_price": price,
		"type":       "consu",
	})
}

// CreateSaleOrder creates a sale.order for the partner with the given order
// line commands.
func (c *Client) CreateSaleOrder(partnerID int64, lines []any, note string) (int64, error) {
	return c.create("sale.order", map[string]any{
		"partner_id": partnerID,
		"order_line": lines,
		"note":       note,
	})
}

// ConfirmSaleOrder runs action_confirm on an existing sale order.
func (c *Client) ConfirmSaleOrder(orderID int64) error {
	var res any
	return c.ExecuteKw("sale.order", "action_confirm", []any{orderID}, nil, &res)
}

func (c *Client) search(model string, domain []any) ([]int64, error) {
	var ids []int64
	if err := c.ExecuteKw(model, "search", []any{domain}, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) create(model string, fields map[string]any) (int64, error) {
	var id int64
	if err := c.ExecuteKw(model, "create", []any{fields}, nil, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// LineCommand builds the (0, 0, values) tuple that attaches a new order line
// to a sale order on create.
func LineCommand(line models.OrderLine) []any {
	return []any{0, 0, map[string]any{
		"product_id":      line.ProductID,
		"name":            line.Name,
		"product_uom_qty": line.Quantity,
		"price_unit":      line.UnitPrice.InexactFloat64(),
	}}
}
