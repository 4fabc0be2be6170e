package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httpdelivery "github.com/addispay/chapa-pay-hub/internal/delivery/http"
	"github.com/addispay/chapa-pay-hub/internal/domain/entity"
	"github.com/addispay/chapa-pay-hub/internal/domain/mocks"
	"github.com/addispay/chapa-pay-hub/internal/domain/payment"
	"github.com/addispay/chapa-pay-hub/internal/domain/repository"
	"github.com/addispay/chapa-pay-hub/internal/usecase/checkout"
	"github.com/addispay/chapa-pay-hub/internal/usecase/generateqr"
	"github.com/addispay/chapa-pay-hub/internal/usecase/verify"
	"github.com/addispay/chapa-pay-hub/pkg/chapa"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockGateway, *mocks.MockPaymentRepository, *mocks.MockGenerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	payments := mocks.NewMockPaymentRepository(ctrl)
	generator := mocks.NewMockGenerator(ctrl)

	handler := httpdelivery.NewHandler(
		checkout.NewUseCase(gateway, payments),
		verify.NewUseCase(gateway, payments),
		generateqr.NewUseCase(payments, generator),
	)
	return httpdelivery.NewRouter(handler), gateway, payments, generator
}

func storedPayment(txRef, checkoutURL string) *entity.Payment {
	return entity.ReconstructPayment(
		uuid.New(),
		txRef,
		100,
		"ETB",
		"abebe@example.com",
		checkoutURL,
		entity.StatusPending,
		time.Now(),
	)
}

func TestHandler_Checkout_Success(t *testing.T) {
	router, gateway, payments, _ := newTestRouter(t)

	gateway.EXPECT().
		Initialize(gomock.Any(), gomock.Any()).
		Return(&payment.InitResult{
			TxRef:       "tx-20001",
			CheckoutURL: "https://checkout.chapa.co/checkout/payment/tx-20001",
		}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"amount":100,"currency":"ETB","email":"abebe@example.com","first_name":"Abebe","last_name":"Bikila","callback_url":"https://example.com/callback"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp httpdelivery.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tx-20001", resp.TxRef)
	assert.Equal(t, "https://checkout.chapa.co/checkout/payment/tx-20001", resp.CheckoutURL)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_Checkout_InvalidJSON(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Checkout_ValidationErrorMapsTo400(t *testing.T) {
	router, gateway, _, _ := newTestRouter(t)

	gateway.EXPECT().
		Initialize(gomock.Any(), gomock.Any()).
		Return(nil, &chapa.ValidationError{Violations: []string{"Field 'amount' is required!"}})

	body := `{"currency":"ETB","email":"abebe@example.com","first_name":"Abebe","last_name":"Bikila","callback_url":"https://example.com/callback"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Field 'amount' is required!")
}

func TestHandler_Checkout_ProviderRejectionMapsTo502(t *testing.T) {
	router, gateway, _, _ := newTestRouter(t)

	gateway.EXPECT().
		Initialize(gomock.Any(), gomock.Any()).
		Return(nil, &chapa.APIError{
			StatusCode: http.StatusUnauthorized,
			Payload:    chapa.Result{"message": "Invalid API Key", "tx_ref": "tx-20002"},
		})

	body := `{"amount":100,"currency":"ETB","email":"abebe@example.com","first_name":"Abebe","last_name":"Bikila","callback_url":"https://example.com/callback"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Invalid API Key")
}

func TestHandler_Verify_Success(t *testing.T) {
	router, gateway, payments, _ := newTestRouter(t)

	payments.EXPECT().FindByTxRef(gomock.Any(), "tx-10001").Return(storedPayment("tx-10001", "https://checkout.chapa.co/checkout/payment/tx-10001"), nil)
	gateway.EXPECT().Verify(gomock.Any(), "tx-10001").Return(&payment.VerifyResult{
		TxRef:   "tx-10001",
		Status:  "success",
		Amount:  100,
		Message: "Payment details",
	}, nil)
	payments.EXPECT().UpdateStatus(gomock.Any(), "tx-10001", entity.StatusSuccess).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/tx-10001/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp httpdelivery.VerifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tx-10001", resp.TxRef)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, float64(100), resp.Amount)
}

func TestHandler_Verify_UnknownReferenceMapsTo404(t *testing.T) {
	router, _, payments, _ := newTestRouter(t)

	payments.EXPECT().FindByTxRef(gomock.Any(), "missing").Return(nil, repository.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/missing/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_QR_Success(t *testing.T) {
	router, _, payments, generator := newTestRouter(t)

	checkoutURL := "https://checkout.chapa.co/checkout/payment/tx-10001"
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	payments.EXPECT().FindByTxRef(gomock.Any(), "tx-10001").Return(storedPayment("tx-10001", checkoutURL), nil)
	generator.EXPECT().Generate(checkoutURL).Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/tx-10001/qr", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())
}
