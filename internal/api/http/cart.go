package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"taam-menu/internal/domain"
)

// cartView is the response shape for cart reads: lines plus the derived
// values, recomputed on every read.
type cartView struct {
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

func viewOf(cart domain.Cart) cartView {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartView{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Get(r.Context(), cartSession(w, r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.ID == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.AddItem(r.Context(), cartSession(w, r), item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.UpdateQuantity(r.Context(), cartSession(w, r), mux.Vars(r)["itemId"], payload.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.RemoveItem(r.Context(), cartSession(w, r), mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), cartSession(w, r)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(domain.Cart{}))
}
