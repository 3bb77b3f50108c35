package checkout

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/proof"
)

const testSession = "session-1"

func newTestService(orders order.Store) (*Service, *cart.MemoryStore, *proof.Encoder) {
	carts := cart.NewMemoryStore()
	encoder := proof.NewEncoder(proof.NewMemoryStore(), 5<<20)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Payment: config.PaymentConfig{
			AccountName:    "Sabahat Fatima",
			EasyPaisaPhone: "03414787267",
			BankName:       "UBL",
			IBAN:           "PK18UNIL0109000338906728",
		},
	}

	return NewService(carts, orders, encoder, nil, cfg, logger), carts, encoder
}

func seedCart(t *testing.T, carts *cart.MemoryStore, items []cart.Item) {
	t.Helper()
	require.NoError(t, carts.Write(context.Background(), testSession, items))
}

func uploadProof(t *testing.T, encoder *proof.Encoder, slot proof.Slot) {
	t.Helper()
	content := strings.NewReader("fake image bytes")
	require.NoError(t, encoder.Encode(context.Background(), testSession, slot, "image/png", content.Size(), content))
}

func TestSummarizeSahiwalCODWithAdvance(t *testing.T) {
	svc, carts, _ := newTestService(order.NewMemoryStore())
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Pearl Set", Price: 1000, Quantity: 2},
	})

	summary, err := svc.Summarize(context.Background(), testSession, "Sahiwal", PaymentCashOnDelivery)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), summary.Subtotal)
	assert.Equal(t, int64(150), summary.BaseShippingCost)
	assert.Equal(t, int64(150), summary.ShippingCost)
	assert.Equal(t, int64(2150), summary.Total)
	assert.Equal(t, int64(500), summary.AmountForFreeShipping)
	assert.True(t, summary.AdvanceRequired)
	assert.Equal(t, int64(250), summary.AdvanceAmount)
	assert.Equal(t, int64(1900), summary.RemainingAtDelivery)
	assert.Equal(t, "Standard Delivery", summary.ShippingMethod)
	assert.Equal(t, "Sabahat Fatima", summary.PaymentInstructions.AccountName)
}

func TestSummarizeFreeShippingOnlinePayment(t *testing.T) {
	svc, carts, _ := newTestService(order.NewMemoryStore())
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Bridal Set", Price: 1500, Quantity: 2},
	})

	summary, err := svc.Summarize(context.Background(), testSession, "Lahore", PaymentOnline)
	require.NoError(t, err)

	assert.Equal(t, int64(3000), summary.Subtotal)
	assert.Equal(t, int64(250), summary.BaseShippingCost)
	assert.Equal(t, int64(0), summary.ShippingCost)
	assert.Equal(t, int64(3000), summary.Total)
	assert.Equal(t, int64(0), summary.AmountForFreeShipping)
	assert.False(t, summary.AdvanceRequired)
	assert.Equal(t, int64(0), summary.AdvanceAmount)
	assert.Equal(t, int64(3000), summary.RemainingAtDelivery)
}

func TestPlaceOrderSuccessClearsCart(t *testing.T) {
	orders := order.NewMemoryStore()
	svc, carts, encoder := newTestService(orders)
	seedCart(t, carts, []cart.Item{
		{ID: "p1", ProductID: "p1", Title: "Bridal Set", Price: 1500, Quantity: 2, Variation: "Gold"},
	})
	uploadProof(t, encoder, proof.SlotBankTransfer)

	form := validForm()
	form.PaymentMethod = PaymentOnline

	result, err := svc.PlaceOrder(context.Background(), testSession, form)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.OrderID, "ORDER_"))
	assert.Equal(t, int64(3000), result.Total)
	assert.Equal(t, 1, orders.Len())

	placed, err := orders.Get(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "guest", placed.CustomerType)
	assert.Equal(t, order.StatusProcessing, placed.Status)
	assert.Equal(t, "Online Payment", placed.Payment)
	assert.Equal(t, "Jane Doe", placed.ShippingAddress.FullName)
	require.Len(t, placed.Items, 1)
	assert.Equal(t, "Gold", placed.Items[0].Variation)
	assert.NotEmpty(t, placed.BankTransferProof)
	assert.Empty(t, placed.CODDeliveryProof)

	items, err := carts.Read(context.Background(), testSession)
	require.NoError(t, err)
	assert.Empty(t, items)

	remaining, err := encoder.Get(context.Background(), testSession, proof.SlotBankTransfer)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestPlaceOrderAttachesOnlyMatchingProof(t *testing.T) {
	orders := order.NewMemoryStore()
	svc, carts, encoder := newTestService(orders)
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Pearl Set", Price: 1000, Quantity: 2},
	})
	uploadProof(t, encoder, proof.SlotBankTransfer)
	uploadProof(t, encoder, proof.SlotCODAdvance)

	form := validForm()
	form.City = "Sahiwal"
	form.PaymentMethod = PaymentCashOnDelivery

	result, err := svc.PlaceOrder(context.Background(), testSession, form)
	require.NoError(t, err)

	placed, err := orders.Get(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.NotEmpty(t, placed.CODDeliveryProof)
	assert.Empty(t, placed.BankTransferProof)
	assert.True(t, placed.CODAdvanceRequired)
	assert.Equal(t, int64(250), placed.CODAdvanceAmount)
	assert.Equal(t, int64(1900), placed.RemainingAtDelivery())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _, _ := newTestService(order.NewMemoryStore())

	_, err := svc.PlaceOrder(context.Background(), testSession, validForm())
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlaceOrderValidationFailureLeavesState(t *testing.T) {
	orders := order.NewMemoryStore()
	svc, carts, _ := newTestService(orders)
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Pearl Set", Price: 1000, Quantity: 1},
	})

	form := validForm()
	form.FullName = ""

	_, err := svc.PlaceOrder(context.Background(), testSession, form)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "This field is required", validationErr.Fields["fullName"])
	assert.Equal(t, 0, orders.Len())

	items, readErr := carts.Read(context.Background(), testSession)
	require.NoError(t, readErr)
	assert.Len(t, items, 1)
}

func TestPlaceOrderMissingAdvanceProofBlocksCOD(t *testing.T) {
	orders := order.NewMemoryStore()
	svc, carts, _ := newTestService(orders)
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Pearl Set", Price: 1000, Quantity: 1},
	})

	form := validForm()
	form.PaymentMethod = PaymentCashOnDelivery

	_, err := svc.PlaceOrder(context.Background(), testSession, form)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "codDeliveryProof")
	assert.Equal(t, 0, orders.Len())
}

func TestPlaceOrderStoreFailureKeepsCart(t *testing.T) {
	orders := order.NewMemoryStore()
	orders.FailWith = errors.New("backend unavailable")
	svc, carts, encoder := newTestService(orders)
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Pearl Set", Price: 1000, Quantity: 3},
	})
	uploadProof(t, encoder, proof.SlotBankTransfer)

	form := validForm()
	form.PaymentMethod = PaymentOnline

	_, err := svc.PlaceOrder(context.Background(), testSession, form)
	require.Error(t, err)
	assert.NotErrorIs(t, err, order.ErrPayloadTooLarge)

	items, readErr := carts.Read(context.Background(), testSession)
	require.NoError(t, readErr)
	assert.Len(t, items, 1)

	retained, getErr := encoder.Get(context.Background(), testSession, proof.SlotBankTransfer)
	require.NoError(t, getErr)
	assert.NotEmpty(t, retained)
}

func TestPlaceOrderPayloadTooLarge(t *testing.T) {
	orders := order.NewMemoryStore()
	orders.FailWith = order.ErrPayloadTooLarge
	svc, carts, encoder := newTestService(orders)
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Pearl Set", Price: 1000, Quantity: 3},
	})
	uploadProof(t, encoder, proof.SlotBankTransfer)

	form := validForm()
	form.PaymentMethod = PaymentOnline

	_, err := svc.PlaceOrder(context.Background(), testSession, form)
	assert.ErrorIs(t, err, order.ErrPayloadTooLarge)

	items, readErr := carts.Read(context.Background(), testSession)
	require.NoError(t, readErr)
	assert.Len(t, items, 1)
}

func TestValidateReportsSessionState(t *testing.T) {
	svc, carts, encoder := newTestService(order.NewMemoryStore())
	seedCart(t, carts, []cart.Item{
		{ID: "p1", Title: "Pearl Set", Price: 1000, Quantity: 1},
	})

	form := validForm()
	form.PaymentMethod = PaymentOnline

	fieldErrors, err := svc.Validate(context.Background(), testSession, form)
	require.NoError(t, err)
	assert.Contains(t, fieldErrors, "bankTransferProof")

	uploadProof(t, encoder, proof.SlotBankTransfer)

	fieldErrors, err = svc.Validate(context.Background(), testSession, form)
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
}
