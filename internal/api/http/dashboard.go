package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"taam-menu/internal/domain"
)

// Dashboard endpoints are thin typed calls into the backend gateway. Each
// successful mutation publishes a bus event so sibling panels (sidebar, team
// switcher, public storefront cache) refetch instead of trusting stale state.

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Backend.ListRestaurants(r.Context(), bearerToken(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Backend.GetRestaurant(r.Context(), bearerToken(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Backend.CreateRestaurant(r.Context(), bearerToken(r), &restaurant)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: created.ID})
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	restaurant.ID = mux.Vars(r)["id"]

	updated, err := h.Backend.UpdateRestaurant(r.Context(), bearerToken(r), &restaurant)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: updated.ID})
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Backend.DeleteRestaurant(r.Context(), bearerToken(r), id); err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: id})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadRestaurantPhoto(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	contentType := r.Header.Get("Content-Type")

	updated, err := h.Backend.UploadRestaurantPhoto(r.Context(), bearerToken(r), id, contentType, r.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: id})
	respondJSON(w, http.StatusOK, updated)
}

// --- Menu ---

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Backend.ListCategories(r.Context(), bearerToken(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	var category domain.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Backend.CreateCategory(r.Context(), bearerToken(r), restaurantID, &category)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["id"]

	var category domain.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	category.ID = vars["categoryId"]

	updated, err := h.Backend.UpdateCategory(r.Context(), bearerToken(r), restaurantID, &category)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["id"]

	if err := h.Backend.DeleteCategory(r.Context(), bearerToken(r), restaurantID, vars["categoryId"]); err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Backend.CreateMenuItem(r.Context(), bearerToken(r), restaurantID, &item)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["id"]

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = vars["itemId"]

	updated, err := h.Backend.UpdateMenuItem(r.Context(), bearerToken(r), restaurantID, &item)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["id"]

	if err := h.Backend.DeleteMenuItem(r.Context(), bearerToken(r), restaurantID, vars["itemId"]); err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuItemPhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["id"]

	updated, err := h.Backend.UploadMenuItemPhoto(r.Context(), bearerToken(r), restaurantID, vars["itemId"], r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) importMenuCSV(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	// Reject before uploading when there is no file part at all.
	contentType := r.Header.Get("Content-Type")
	if contentType == "" || r.Body == nil || r.ContentLength == 0 {
		http.Error(w, "csv file is required", http.StatusBadRequest)
		return
	}

	if err := h.Backend.ImportMenuCSV(r.Context(), bearerToken(r), restaurantID, contentType, r.Body); err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: restaurantID})
	respondJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

func (h *Handler) exportMenuCSV(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	data, contentType, err := h.Backend.ExportMenuCSV(r.Context(), bearerToken(r), restaurantID)
	if err != nil {
		respondError(w, err)
		return
	}

	if contentType == "" {
		contentType = "text/csv"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="menu.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// --- Orders ---

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Backend.ListOrders(r.Context(), bearerToken(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	order, err := h.Backend.GetOrder(r.Context(), bearerToken(r), vars["id"], vars["orderId"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	order, err := h.Backend.UpdateOrderStatus(r.Context(), bearerToken(r), vars["id"], vars["orderId"], payload.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Backend.CancelOrder(r.Context(), bearerToken(r), vars["id"], vars["orderId"]); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Notifications ---

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Backend.ListNotifications(r.Context(), bearerToken(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Backend.MarkNotificationRead(r.Context(), bearerToken(r), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// --- Subscriptions ---

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Backend.ListPlans(r.Context(), bearerToken(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, plans)
}

func (h *Handler) getSubscriptionHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Backend.GetSubscriptionHistory(r.Context(), bearerToken(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	var payload struct {
		PlanCode string `json:"plan_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.PlanCode == "" {
		http.Error(w, "plan_code is required", http.StatusBadRequest)
		return
	}

	entry, err := h.Backend.Subscribe(r.Context(), bearerToken(r), restaurantID, payload.PlanCode)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventSubscriptionUpdated, domain.EventDetail{})
	respondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) cancelSubscription(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Backend.CancelSubscription(r.Context(), bearerToken(r), vars["id"], vars["subscriptionId"]); err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventSubscriptionUpdated, domain.EventDetail{})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) refreshSubscription(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Backend.RefreshSubscription(r.Context(), bearerToken(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	h.Events.Publish(domain.EventSubscriptionUpdated, domain.EventDetail{})
	respondJSON(w, http.StatusOK, summary)
}

// --- Admin users ---

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Backend.ListUsers(r.Context(), bearerToken(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var user domain.AdminUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user.ID = mux.Vars(r)["id"]

	updated, err := h.Backend.UpdateUser(r.Context(), bearerToken(r), &user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Backend.DeleteUser(r.Context(), bearerToken(r), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// navigate lets one dashboard component steer the shell to another panel
// through the bus, mirroring the sidebar's cross-component convention.
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var detail domain.EventDetail
	if err := json.NewDecoder(r.Body).Decode(&detail); err != nil || detail.Panel == "" {
		http.Error(w, "panel is required", http.StatusBadRequest)
		return
	}

	h.Events.Publish(domain.EventDashboardNavigate, detail)
	respondJSON(w, http.StatusOK, map[string]string{"status": "published"})
}
