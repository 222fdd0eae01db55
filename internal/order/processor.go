package order

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"orderbridge/internal/models"
	"orderbridge/internal/odoo"
)

// ErrNoProducts rejects submissions with an empty product list before any
// remote call is made.
var ErrNoProducts = errors.New("no products found in the form submission")

// ErrCountryNotFound aborts the whole submission; an order with an
// unresolvable billing country is never created.
var ErrCountryNotFound = errors.New("country not found")

// Result is the outcome of a fully processed submission.
type Result struct {
	SaleOrderID  int64
	ProductCount int
}

// Processor runs one submission through the pipeline: resolve the customer,
// resolve every product, create the sale order, confirm it. Each step gates
// the next; there is no retry and no rollback.
type Processor struct {
	erp            odoo.Service
	defaultCountry string
	log            *zap.Logger
}

func NewProcessor(erp odoo.Service, defaultCountry string, log *zap.Logger) *Processor {
	return &Processor{
		erp:            erp,
		defaultCountry: defaultCountry,
		log:            log,
	}
}

// Process handles a parsed submission end to end. Errors are stage-tagged
// StageErrors.
func (p *Processor) Process(sub models.Submission) (Result, error) {
	if len(sub.Items) == 0 {
		return Result{}, fail(StageParse, ErrNoProducts)
	}

	customerID, err := p.resolveCustomer(sub)
	if err != nil {
		return Result{}, fail(StageCustomer, err)
	}

	lines, err := p.assembleLines(sub.Items)
	if err != nil {
		return Result{}, fail(StageLines, err)
	}

	orderID, err := p.erp.CreateSaleOrder(customerID, lines, orderNote(sub.Comment))
	if err != nil {
		return Result{}, fail(StageCreate, err)
	}

	if err := p.erp.ConfirmSaleOrder(orderID); err != nil {
		// The order exists but stays unconfirmed in the ERP; it has to be
		// reconciled manually. Keep the id in the log for that.
		p.log.Warn("sale order created but not confirmed",
			zap.Int64("sale_order_id", orderID),
			zap.Error(err),
		)
		return Result{}, fail(StageConfirm, err)
	}

	return Result{SaleOrderID: orderID, ProductCount: len(sub.Items)}, nil
}

// resolveCustomer finds an existing partner matching the submission's
// deduplication key or creates a new one. At most one create call happens
// per submission.
func (p *Processor) resolveCustomer(sub models.Submission) (int64, error) {
	countryName := sub.Billing.Country
	if countryName == "" {
		countryName = p.defaultCountry
	}
	countryID, found, err := p.erp.FindCountry(countryName)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrCountryNotFound, countryName)
	}

	var stateID int64
	if sub.Billing.State != "" {
		id, found, err := p.erp.FindState(sub.Billing.State, countryID)
		if err != nil {
			return 0, err
		}
		if found {
			stateID = id
		}
	}

	key := models.NewCustomerKey(sub.Email, sub.Phone, sub.Billing, countryID, stateID)
	ids, err := p.erp.SearchPartners(key.Domain())
	if err != nil {
		return 0, err
	}
	if len(ids) > 0 {
		p.log.Debug("reusing existing customer", zap.Int64("partner_id", ids[0]))
		return ids[0], nil
	}

	// Store the same normalized values the search domain uses, otherwise a
	// created partner would never match an identical resubmission.
	fields := map[string]any{
		"name":       sub.Name,
		"email":      key.Email,
		"phone":      key.Phone,
		"street":     key.Street,
		"street2":    key.Street2,
		"city":       key.City,
		"zip":        key.Zip,
		"country_id": countryID,
	}
	if stateID != 0 {
		fields["state_id"] = stateID
	}
	return p.erp.CreatePartner(fields)
}

// assembleLines resolves a product per item, in submission order, and builds
// the order line commands. Items are processed sequentially so a failure is
// attributable to one item and the ERP sees at most one call at a time.
func (p *Processor) assembleLines(items []models.LineItem) ([]any, error) {
	lines := make([]any, 0, len(items))
	for _, item := range items {
		name := item.DisplayName()
		productID, err := p.resolveProduct(name, item.UnitPrice.InexactFloat64())
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", name, err)
		}
		lines = append(lines, odoo.LineCommand(models.OrderLine{
			ProductID: productID,
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}))
	}
	return lines, nil
}

// resolveProduct reuses a catalog product only on an exact name and price
// match; the same name at another price becomes a new catalog entry.
func (p *Processor) resolveProduct(name string, price float64) (int64, error) {
	id, found, err := p.erp.FindProduct(name, price)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}
	return p.erp.CreateProduct(name, price)
}

func orderNote(comment string) string {
	if comment == "" {
		return ""
	}
	return "Customer Comments: " + comment
}
