package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"taam-menu/internal/domain"
)

// HTTPClient is the transport the gateway issues requests through.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the single outbound path to the backend API. It injects the
// caller's bearer token, defaults JSON content types, and maps non-success
// responses to *APIError.
type Client struct {
	baseURL string
	client  HTTPClient
}

func New(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// do issues one JSON request. An empty token omits the Authorization header
// (anonymous requests are allowed for public endpoints). A 2xx with an empty
// body leaves out untouched rather than failing to decode.
func (c *Client) do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setAuth(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// doMultipart sends a prepared multipart body. The content type comes from
// the multipart writer so the boundary survives intact.
func (c *Client) doMultipart(ctx context.Context, token, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	setAuth(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// FetchBinary follows the same auth injection as do but returns the raw
// payload and its content type, for file-download endpoints.
func (c *Client) FetchBinary(ctx context.Context, token, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	setAuth(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", decodeError(resp.StatusCode, data)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeError extracts a structured message from an error body, falling back
// to the raw text and finally the status text.
func decodeError(status int, body []byte) error {
	var parsed struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	detail := ""
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Detail != "":
			detail = parsed.Detail
		case parsed.Error != "":
			detail = parsed.Error
		case parsed.Message != "":
			detail = parsed.Message
		}
	}
	if detail == "" {
		detail = strings.TrimSpace(string(body))
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Detail: detail}
}

// --- Session ---

func (c *Client) GetProfile(ctx context.Context, token string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, token, http.MethodGet, "/api/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// --- Restaurants ---

func (c *Client) ListRestaurants(ctx context.Context, token string) ([]domain.Restaurant, error) {
	restaurants := []domain.Restaurant{}
	if err := c.do(ctx, token, http.MethodGet, "/api/restaurants", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) GetRestaurant(ctx context.Context, token, id string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.do(ctx, token, http.MethodGet, "/api/restaurants/"+url.PathEscape(id), nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) GetRestaurantBySubdomain(ctx context.Context, subdomain string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	path := "/api/restaurants/by-subdomain/" + url.PathEscape(subdomain)
	if err := c.do(ctx, "", http.MethodGet, path, nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, token string, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	var created domain.Restaurant
	if err := c.do(ctx, token, http.MethodPost, "/api/restaurants", restaurant, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, token string, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	var updated domain.Restaurant
	path := "/api/restaurants/" + url.PathEscape(restaurant.ID)
	if err := c.do(ctx, token, http.MethodPut, path, restaurant, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteRestaurant(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/restaurants/"+url.PathEscape(id), nil, nil)
}

func (c *Client) UploadRestaurantPhoto(ctx context.Context, token, id, contentType string, body io.Reader) (*domain.Restaurant, error) {
	var updated domain.Restaurant
	path := "/api/restaurants/" + url.PathEscape(id) + "/photo"
	if err := c.doMultipart(ctx, token, http.MethodPost, path, contentType, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// --- Menu ---

func (c *Client) GetPublicMenu(ctx context.Context, restaurantID string) (*domain.Menu, error) {
	var menu domain.Menu
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/menu"
	if err := c.do(ctx, "", http.MethodGet, path, nil, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (c *Client) ListCategories(ctx context.Context, token, restaurantID string) ([]domain.MenuCategory, error) {
	categories := []domain.MenuCategory{}
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/categories"
	if err := c.do(ctx, token, http.MethodGet, path, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, token, restaurantID string, category *domain.MenuCategory) (*domain.MenuCategory, error) {
	var created domain.MenuCategory
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/categories"
	if err := c.do(ctx, token, http.MethodPost, path, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token, restaurantID string, category *domain.MenuCategory) (*domain.MenuCategory, error) {
	var updated domain.MenuCategory
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/categories/" + url.PathEscape(category.ID)
	if err := c.do(ctx, token, http.MethodPut, path, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, restaurantID, categoryID string) error {
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/categories/" + url.PathEscape(categoryID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}

func (c *Client) CreateMenuItem(ctx context.Context, token, restaurantID string, item *domain.MenuItem) (*domain.MenuItem, error) {
	var created domain.MenuItem
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/items"
	if err := c.do(ctx, token, http.MethodPost, path, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, token, restaurantID string, item *domain.MenuItem) (*domain.MenuItem, error) {
	var updated domain.MenuItem
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/items/" + url.PathEscape(item.ID)
	if err := c.do(ctx, token, http.MethodPut, path, item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, token, restaurantID, itemID string) error {
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/items/" + url.PathEscape(itemID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}

func (c *Client) UploadMenuItemPhoto(ctx context.Context, token, restaurantID, itemID, contentType string, body io.Reader) (*domain.MenuItem, error) {
	var updated domain.MenuItem
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/items/" + url.PathEscape(itemID) + "/photo"
	if err := c.doMultipart(ctx, token, http.MethodPost, path, contentType, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ImportMenuCSV forwards the owner's CSV upload untouched; the backend does
// the parsing.
func (c *Client) ImportMenuCSV(ctx context.Context, token, restaurantID, contentType string, body io.Reader) error {
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/menu/import"
	return c.doMultipart(ctx, token, http.MethodPost, path, contentType, body, nil)
}

func (c *Client) ExportMenuCSV(ctx context.Context, token, restaurantID string) ([]byte, string, error) {
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/menu/export"
	return c.FetchBinary(ctx, token, path)
}

// --- Orders ---

func (c *Client) ListOrders(ctx context.Context, token, restaurantID string) ([]domain.Order, error) {
	orders := []domain.Order{}
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/orders"
	if err := c.do(ctx, token, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token, restaurantID, orderID string) (*domain.Order, error) {
	var order domain.Order
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, restaurantID, orderID, status string) (*domain.Order, error) {
	var order domain.Order
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/orders/" + url.PathEscape(orderID) + "/status"
	payload := map[string]string{"status": status}
	if err := c.do(ctx, token, http.MethodPut, path, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, token, restaurantID, orderID string) error {
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/orders/" + url.PathEscape(orderID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, restaurantID string, order *domain.Order) (*domain.Order, error) {
	var created domain.Order
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/orders"
	if err := c.do(ctx, "", http.MethodPost, path, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// --- Notifications ---

func (c *Client) ListNotifications(ctx context.Context, token string) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	if err := c.do(ctx, token, http.MethodGet, "/api/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodPut, "/api/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

// --- Subscriptions ---

func (c *Client) ListPlans(ctx context.Context, token string) ([]domain.Plan, error) {
	plans := []domain.Plan{}
	if err := c.do(ctx, token, http.MethodGet, "/api/tariffs", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) GetSubscriptionHistory(ctx context.Context, token, restaurantID string) ([]domain.SubscriptionHistoryEntry, error) {
	history := []domain.SubscriptionHistoryEntry{}
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/subscriptions"
	if err := c.do(ctx, token, http.MethodGet, path, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) Subscribe(ctx context.Context, token, restaurantID, planCode string) (*domain.SubscriptionHistoryEntry, error) {
	var entry domain.SubscriptionHistoryEntry
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/subscriptions"
	payload := map[string]string{"plan_code": planCode}
	if err := c.do(ctx, token, http.MethodPost, path, payload, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) CancelSubscription(ctx context.Context, token, restaurantID, subscriptionID string) error {
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/subscriptions/" + url.PathEscape(subscriptionID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}

func (c *Client) RefreshSubscription(ctx context.Context, token, restaurantID string) (*domain.SubscriptionSummary, error) {
	var summary domain.SubscriptionSummary
	path := "/api/restaurants/" + url.PathEscape(restaurantID) + "/subscriptions/refresh"
	if err := c.do(ctx, token, http.MethodPost, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// --- Admin users ---

func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.AdminUser, error) {
	users := []domain.AdminUser{}
	if err := c.do(ctx, token, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, user *domain.AdminUser) (*domain.AdminUser, error) {
	var updated domain.AdminUser
	if err := c.do(ctx, token, http.MethodPut, "/api/admin/users/"+url.PathEscape(user.ID), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/admin/users/"+url.PathEscape(id), nil, nil)
}
