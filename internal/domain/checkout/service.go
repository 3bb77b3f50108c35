// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/proof"
)

// Mailer sends the best-effort order confirmation email
type Mailer interface {
	SendOrderConfirmation(order *order.Order) error
}

// Service orchestrates the guest checkout flow: pricing, validation,
// proof capture and order assembly.
type Service struct {
	carts  cart.Store
	orders order.Store
	proofs *proof.Encoder
	mailer Mailer
	config *config.Config
	logger *logrus.Logger

	// One order write per submit: a session holds the lock for the
	// duration of the persistence call.
	mu         sync.Mutex
	submitting map[string]struct{}
}

// NewService creates a new checkout service. mailer may be nil.
func NewService(carts cart.Store, orders order.Store, proofs *proof.Encoder, mailer Mailer, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		carts:      carts,
		orders:     orders,
		proofs:     proofs,
		mailer:     mailer,
		config:     cfg,
		logger:     logger,
		submitting: make(map[string]struct{}),
	}
}

// ErrCartEmpty is returned when checkout starts with no cart items
var ErrCartEmpty = fmt.Errorf("cart is empty")

// ErrSubmitInProgress is returned when a second submit arrives while an
// order write is still running for the session
var ErrSubmitInProgress = fmt.Errorf("an order is already being placed for this session")

// ErrEncodingPending is returned when a proof conversion is still running
var ErrEncodingPending = fmt.Errorf("a proof upload is still being processed")

// ValidationError carries the field-scoped messages that block submission
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout validation failed: %d field(s)", len(e.Fields))
}

// PaymentInstructions is the transfer account block shown at checkout
type PaymentInstructions struct {
	AccountName    string `json:"account_name"`
	EasyPaisaPhone string `json:"easypaisa_phone"`
	BankName       string `json:"bank_name"`
	IBAN           string `json:"iban"`
}

// Summary is the derived pricing state, recomputed on every relevant
// input change
type Summary struct {
	Items                 []cart.Item         `json:"items"`
	Subtotal              int64               `json:"subtotal"`
	BaseShippingCost      int64               `json:"base_shipping_cost"`
	ShippingCost          int64               `json:"shipping_cost"`
	Total                 int64               `json:"total"`
	AmountForFreeShipping int64               `json:"amount_for_free_shipping"`
	AdvanceRequired       bool                `json:"advance_required"`
	AdvanceAmount         int64               `json:"advance_amount"`
	RemainingAtDelivery   int64               `json:"remaining_at_delivery"`
	ShippingMethod        string              `json:"shipping_method"`
	PaymentInstructions   PaymentInstructions `json:"payment_instructions"`
}

// Summarize prices the session cart for the given destination city and
// payment method
func (s *Service) Summarize(ctx context.Context, sessionID, city string, method PaymentMethod) (*Summary, error) {
	items, err := s.carts.Read(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	return s.summarize(items, city, method), nil
}

func (s *Service) summarize(items []cart.Item, city string, method PaymentMethod) *Summary {
	subtotal := Subtotal(items)
	base := BaseShippingCost(city)
	shipping := ShippingCost(subtotal, base)
	total := Total(subtotal, shipping)
	advance := IsAdvanceRequired(method, shipping)

	summary := &Summary{
		Items:                 items,
		Subtotal:              subtotal,
		BaseShippingCost:      base,
		ShippingCost:          shipping,
		Total:                 total,
		AmountForFreeShipping: AmountForFreeShipping(subtotal),
		AdvanceRequired:       advance,
		ShippingMethod:        StandardDelivery,
		RemainingAtDelivery:   total,
		PaymentInstructions: PaymentInstructions{
			AccountName:    s.config.Payment.AccountName,
			EasyPaisaPhone: s.config.Payment.EasyPaisaPhone,
			BankName:       s.config.Payment.BankName,
			IBAN:           s.config.Payment.IBAN,
		},
	}

	if advance {
		summary.AdvanceAmount = CODAdvanceAmount
		summary.RemainingAtDelivery = total - CODAdvanceAmount
	}

	return summary
}

// Validate runs the form rules against the current session state without
// placing an order. An empty map means the form would pass submission.
func (s *Service) Validate(ctx context.Context, sessionID string, form *Form) (map[string]string, error) {
	items, err := s.carts.Read(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	bankProof, err := s.proofs.Get(ctx, sessionID, proof.SlotBankTransfer)
	if err != nil {
		return nil, err
	}
	codProof, err := s.proofs.Get(ctx, sessionID, proof.SlotCODAdvance)
	if err != nil {
		return nil, err
	}

	summary := s.summarize(items, form.City, form.PaymentMethod)
	return ValidateForm(form, bankProof != "", codProof != "", summary.AdvanceRequired), nil
}

// PlaceOrderResult reports a successful submission
type PlaceOrderResult struct {
	OrderID string `json:"order_id"`
	Total   int64  `json:"total"`
}

// PlaceOrder runs the full submit flow: validate, attach captured proofs,
// assemble the order document and write it exactly once. The cart is
// cleared if and only if the write succeeds; any failure leaves cart and
// captured proofs untouched so the user may resubmit.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, form *Form) (*PlaceOrderResult, error) {
	if s.proofs.Pending(sessionID) {
		return nil, ErrEncodingPending
	}

	if !s.acquireSubmit(sessionID) {
		return nil, ErrSubmitInProgress
	}
	defer s.releaseSubmit(sessionID)

	items, err := s.carts.Read(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	bankProof, err := s.proofs.Get(ctx, sessionID, proof.SlotBankTransfer)
	if err != nil {
		return nil, err
	}
	codProof, err := s.proofs.Get(ctx, sessionID, proof.SlotCODAdvance)
	if err != nil {
		return nil, err
	}

	summary := s.summarize(items, form.City, form.PaymentMethod)

	fieldErrors := ValidateForm(form, bankProof != "", codProof != "", summary.AdvanceRequired)
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	newOrder := s.assemble(form, items, summary, bankProof, codProof)

	if err := s.orders.Create(ctx, newOrder); err != nil {
		if errors.Is(err, order.ErrPayloadTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Cart is cleared only after the write succeeded. A failed cleanup is
	// logged but never turns a placed order into a reported failure.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("order_id", newOrder.OrderID).Warn("Failed to clear cart after order placement")
	}
	if err := s.proofs.Clear(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("order_id", newOrder.OrderID).Warn("Failed to clear proof encodings after order placement")
	}

	if s.mailer != nil && newOrder.CustomerEmail != "" {
		if err := s.mailer.SendOrderConfirmation(newOrder); err != nil {
			s.logger.WithError(err).WithField("order_id", newOrder.OrderID).Warn("Failed to send order confirmation email")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"order_id": newOrder.OrderID,
		"total":    newOrder.Total,
		"payment":  newOrder.Payment,
	}).Info("Order placed")

	return &PlaceOrderResult{OrderID: newOrder.OrderID, Total: newOrder.Total}, nil
}

// assemble builds the immutable order document. Only the proof matching
// the chosen payment method is persisted; the other slot is discarded.
func (s *Service) assemble(form *Form, items []cart.Item, summary *Summary, bankProof, codProof string) *order.Order {
	orderItems := make([]order.Item, len(items))
	for i, item := range items {
		productID := item.ProductID
		if productID == "" {
			productID = item.ID
		}
		orderItems[i] = order.Item{
			ProductID: productID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
			Variation: item.Variation,
			Type:      item.Type,
			Size:      item.Size,
			Lining:    item.Lining,
		}
	}

	newOrder := &order.Order{
		OrderID:       order.NewOrderID(),
		CustomerType:  "guest",
		CustomerEmail: form.Email,
		Items:         orderItems,
		Shipping:      StandardDelivery,
		Payment:       string(form.PaymentMethod),
		ShippingAddress: order.ShippingAddress{
			FullName:   form.FullName,
			Phone:      form.Phone,
			Address:    form.Address,
			City:       form.City,
			PostalCode: form.PostalCode,
			Region:     form.Region,
			Country:    form.Country,
		},
		PromoCode:          form.PromoCode,
		Notes:              form.Notes,
		Subtotal:           summary.Subtotal,
		ShippingCost:       summary.ShippingCost,
		Total:              summary.Total,
		CreatedAt:          time.Now().UTC(),
		Status:             order.StatusProcessing,
		CODAdvanceRequired: summary.AdvanceRequired,
		CODAdvanceAmount:   summary.AdvanceAmount,
	}

	switch form.PaymentMethod {
	case PaymentOnline:
		newOrder.BankTransferProof = bankProof
	case PaymentCashOnDelivery:
		newOrder.CODDeliveryProof = codProof
	}

	return newOrder
}

func (s *Service) acquireSubmit(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.submitting[sessionID]; busy {
		return false
	}
	s.submitting[sessionID] = struct{}{}
	return true
}

func (s *Service) releaseSubmit(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submitting, sessionID)
}
