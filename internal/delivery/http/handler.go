package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/addispay/chapa-pay-hub/internal/domain/repository"
	"github.com/addispay/chapa-pay-hub/internal/usecase/checkout"
	"github.com/addispay/chapa-pay-hub/internal/usecase/generateqr"
	"github.com/addispay/chapa-pay-hub/internal/usecase/verify"
	"github.com/addispay/chapa-pay-hub/pkg/chapa"
)

type Handler struct {
	checkoutUC   *checkout.UseCase
	verifyUC     *verify.UseCase
	generateQRUC *generateqr.UseCase
}

func NewHandler(checkoutUC *checkout.UseCase, verifyUC *verify.UseCase, generateQRUC *generateqr.UseCase) *Handler {
	return &Handler{
		checkoutUC:   checkoutUC,
		verifyUC:     verifyUC,
		generateQRUC: generateQRUC,
	}
}

type CheckoutRequest struct {
	TxRef         string         `json:"tx_ref,omitempty"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Email         string         `json:"email"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	CallbackURL   string         `json:"callback_url"`
	Customization map[string]any `json:"customization,omitempty"`
}

type CheckoutResponse struct {
	TxRef       string `json:"tx_ref"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

type VerifyResponse struct {
	TxRef   string  `json:"tx_ref"`
	Status  string  `json:"status"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message,omitempty"`
}

func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}

	resp, err := h.checkoutUC.Execute(r.Context(), checkout.Request{
		TxRef:         req.TxRef,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CallbackURL:   req.CallbackURL,
		Customization: req.Customization,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(CheckoutResponse{
		TxRef:       resp.TxRef,
		CheckoutURL: resp.CheckoutURL,
		Status:      string(resp.Status),
	})
}

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	txRef := chi.URLParam(r, "tx_ref")
	if txRef == "" {
		http.Error(w, `{"error":"tx_ref required"}`, http.StatusBadRequest)
		return
	}

	resp, err := h.verifyUC.Execute(r.Context(), txRef)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(VerifyResponse{
		TxRef:   resp.TxRef,
		Status:  string(resp.Status),
		Amount:  resp.Amount,
		Message: resp.Message,
	})
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	txRef := chi.URLParam(r, "tx_ref")
	if txRef == "" {
		http.Error(w, `{"error":"tx_ref required"}`, http.StatusBadRequest)
		return
	}

	png, err := h.generateQRUC.Execute(r.Context(), txRef)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}

// writeError encodes the message instead of splicing it into a literal:
// validation errors carry newlines and provider payloads carry quotes.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusForError(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func statusForError(err error) int {
	var verr *chapa.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	var apiErr *chapa.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}

	var terr *chapa.TransportError
	if errors.As(err, &terr) {
		return http.StatusBadGateway
	}

	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}
