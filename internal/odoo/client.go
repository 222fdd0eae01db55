package odoo

import (
	"fmt"

	"github.com/kolo/xmlrpc"
)

// Client talks to an Odoo instance over the /xmlrpc/2 endpoints. The two
// underlying connections are stateless request/response pairs, so a single
// Client is safe to share between requests.
type Client struct {
	common   *xmlrpc.Client
	object   *xmlrpc.Client
	db       string
	username string
	password string
	uid      int64
}

// NewClient builds a client for the given instance. Authenticate must be
// called before any object call.
func NewClient(url, db, username, password string) (*Client, error) {
	common, err := xmlrpc.NewClient(url+"/xmlrpc/2/common", nil)
	if err != nil {
		return nil, fmt.Errorf("odoo: common endpoint: %w", err)
	}
	object, err := xmlrpc.NewClient(url+"/xmlrpc/2/object", nil)
	if err != nil {
		return nil, fmt.Errorf("odoo: object endpoint: %w", err)
	}
	return &Client{
		common:   common,
		object:   object,
		db:       db,
		username: username,
		password: password,
	}, nil
}

// Authenticate performs the single credential exchange. The returned uid is
// stored on the client and reused for every subsequent call. Odoo answers
// boolean false instead of a uid on bad credentials.
func (c *Client) Authenticate() error {
	var res any
	err := c.common.Call("authenticate", []any{c.db, c.username, c.password, map[string]any{}}, &res)
	if err != nil {
		return fmt.Errorf("odoo: authenticate: %w", err)
	}
	uid, ok := res.(int64)
	if !ok || uid == 0 {
		return fmt.Errorf("odoo: invalid credentials for %q", c.username)
	}
	c.uid = uid
	return nil
}

// UID returns the session uid obtained by Authenticate.
func (c *Client) UID() int64 {
	return c.uid
}

// ExecuteKw invokes execute_kw on the object endpoint. options may be nil.
func (c *Client) ExecuteKw(model, method string, args []any, options map[string]any, result any) error {
	params := []any{c.db, c.uid, c.password, model, method, args}
	if options != nil {
		params = append(params, options)
	}
	if err := c.object.Call("execute_kw", params, result); err != nil {
		return fmt.Errorf("odoo: %s.%s: %w", model, method, err)
	}
	return nil
}
