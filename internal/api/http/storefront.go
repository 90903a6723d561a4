package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"taam-menu/internal/service"
)

// storefrontMenu renders the public menu for a tenant subdomain. Every
// failure mode collapses into the same not-found payload; the customer page
// does not distinguish transient from permanent.
func (h *Handler) storefrontMenu(w http.ResponseWriter, r *http.Request) {
	subdomain := mux.Vars(r)["subdomain"]

	menu, err := h.Storefront.Menu(r.Context(), subdomain)
	if err != nil {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "restaurant not found"})
		return
	}
	respondJSON(w, http.StatusOK, menu)
}

func (h *Handler) storefrontQR(w http.ResponseWriter, r *http.Request) {
	subdomain := mux.Vars(r)["subdomain"]

	if _, err := h.Storefront.Resolve(r.Context(), subdomain); err != nil {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "restaurant not found"})
		return
	}

	png, err := h.Storefront.QRCode(subdomain)
	if err != nil {
		http.Error(w, "failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// storefrontCheckout places the session cart as a backend order and clears
// the cart once the order is accepted.
func (h *Handler) storefrontCheckout(w http.ResponseWriter, r *http.Request) {
	subdomain := mux.Vars(r)["subdomain"]
	sessionID := cartSession(w, r)

	var payload struct {
		Table   string `json:"table"`
		Comment string `json:"comment"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&payload)
	}

	cart, err := h.Carts.Get(r.Context(), sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	order, err := h.Storefront.Checkout(r.Context(), subdomain, cart, payload.Table, payload.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrRestaurantNotFound):
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "restaurant not found"})
		default:
			respondError(w, err)
		}
		return
	}

	if err := h.Carts.Clear(r.Context(), sessionID); err != nil {
		// Order already placed; a stale cart is the lesser problem.
		respondJSON(w, http.StatusCreated, order)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}
