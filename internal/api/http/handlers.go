package httpapi

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"taam-menu/internal/apiclient"
	"taam-menu/internal/bus"
	"taam-menu/internal/service"
)

const cartSessionCookie = "cart_session"

type Handler struct {
	Backend    service.DashboardAPI
	Storefront service.StorefrontServiceInterface
	Carts      service.CartServiceInterface
	Events     *bus.Bus
}

func NewHandler(backend service.DashboardAPI, storefront service.StorefrontServiceInterface, carts service.CartServiceInterface, events *bus.Bus) *Handler {
	return &Handler{
		Backend:    backend,
		Storefront: storefront,
		Carts:      carts,
		Events:     events,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Owner dashboard
	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/photo", h.uploadRestaurantPhoto).Methods("POST")

	r.HandleFunc("/api/restaurants/{id}/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/categories/{categoryId}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/categories/{categoryId}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{id}/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/items/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/items/{itemId}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/items/{itemId}/photo", h.uploadMenuItemPhoto).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu/import", h.importMenuCSV).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu/export", h.exportMenuCSV).Methods("GET")

	r.HandleFunc("/api/restaurants/{id}/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders/{orderId}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/orders/{orderId}", h.cancelOrder).Methods("DELETE")

	r.HandleFunc("/api/notifications", h.listNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/{id}/read", h.markNotificationRead).Methods("PUT")

	r.HandleFunc("/api/tariffs", h.listPlans).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/subscriptions", h.getSubscriptionHistory).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/subscriptions", h.subscribe).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/subscriptions/{subscriptionId}", h.cancelSubscription).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/subscriptions/refresh", h.refreshSubscription).Methods("POST")

	r.HandleFunc("/api/admin/users", h.listUsers).Methods("GET")
	r.HandleFunc("/api/admin/users/{id}", h.updateUser).Methods("PUT")
	r.HandleFunc("/api/admin/users/{id}", h.deleteUser).Methods("DELETE")

	r.HandleFunc("/api/navigate", h.navigate).Methods("POST")
	r.HandleFunc("/api/events", h.streamEvents).Methods("GET")

	// Customer cart
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	// Public storefront; the host rewriter lands wildcard-subdomain traffic
	// on these paths. Registered last so the fixed prefixes above win.
	r.HandleFunc("/{subdomain}", h.storefrontMenu).Methods("GET")
	r.HandleFunc("/{subdomain}/menu", h.storefrontMenu).Methods("GET")
	r.HandleFunc("/{subdomain}/qr", h.storefrontQR).Methods("GET")
	r.HandleFunc("/{subdomain}/order", h.storefrontCheckout).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "taam-menu-web",
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Backend.GetProfile(r.Context(), bearerToken(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// bearerToken extracts the session token forwarded by the browser. Empty
// when absent; anonymous requests stay anonymous downstream.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps an outbound failure to the dashboard's error shape. The
// backend's status code is passed through; transport failures become 502.
// Limit-style rejections carry an action hint so the UI can offer a jump to
// the tariffs panel instead of a plain dismiss.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}

	body := map[string]string{"error": err.Error()}
	if apiclient.IsLimitReached(err) {
		body["action"] = "tariffs"
	}
	respondJSON(w, status, body)
}

// cartSession returns the session id from the cart cookie, minting one on
// first use.
func cartSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cartSessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     cartSessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return id
}
