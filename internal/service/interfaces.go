package service

import (
	"context"
	"io"

	"taam-menu/internal/domain"
)

// CartStore persists per-session carts. The memory store is the default; the
// Redis store lets multiple replicas share sessions.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// TenantResolver is the slice of the backend API the storefront needs.
type TenantResolver interface {
	GetRestaurantBySubdomain(ctx context.Context, subdomain string) (*domain.Restaurant, error)
	GetPublicMenu(ctx context.Context, restaurantID string) (*domain.Menu, error)
	PlaceOrder(ctx context.Context, restaurantID string, order *domain.Order) (*domain.Order, error)
}

// DashboardAPI is the backend surface the owner dashboard proxies through.
// *apiclient.Client satisfies it.
type DashboardAPI interface {
	GetProfile(ctx context.Context, token string) (*domain.Profile, error)

	ListRestaurants(ctx context.Context, token string) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, token, id string) (*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, token string, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, token string, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, token, id string) error
	UploadRestaurantPhoto(ctx context.Context, token, id, contentType string, body io.Reader) (*domain.Restaurant, error)

	ListCategories(ctx context.Context, token, restaurantID string) ([]domain.MenuCategory, error)
	CreateCategory(ctx context.Context, token, restaurantID string, category *domain.MenuCategory) (*domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, token, restaurantID string, category *domain.MenuCategory) (*domain.MenuCategory, error)
	DeleteCategory(ctx context.Context, token, restaurantID, categoryID string) error

	CreateMenuItem(ctx context.Context, token, restaurantID string, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, token, restaurantID string, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, token, restaurantID, itemID string) error
	UploadMenuItemPhoto(ctx context.Context, token, restaurantID, itemID, contentType string, body io.Reader) (*domain.MenuItem, error)
	ImportMenuCSV(ctx context.Context, token, restaurantID, contentType string, body io.Reader) error
	ExportMenuCSV(ctx context.Context, token, restaurantID string) ([]byte, string, error)

	ListOrders(ctx context.Context, token, restaurantID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, token, restaurantID, orderID string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, restaurantID, orderID, status string) (*domain.Order, error)
	CancelOrder(ctx context.Context, token, restaurantID, orderID string) error

	ListNotifications(ctx context.Context, token string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, token, id string) error

	ListPlans(ctx context.Context, token string) ([]domain.Plan, error)
	GetSubscriptionHistory(ctx context.Context, token, restaurantID string) ([]domain.SubscriptionHistoryEntry, error)
	Subscribe(ctx context.Context, token, restaurantID, planCode string) (*domain.SubscriptionHistoryEntry, error)
	CancelSubscription(ctx context.Context, token, restaurantID, subscriptionID string) error
	RefreshSubscription(ctx context.Context, token, restaurantID string) (*domain.SubscriptionSummary, error)

	ListUsers(ctx context.Context, token string) ([]domain.AdminUser, error)
	UpdateUser(ctx context.Context, token string, user *domain.AdminUser) (*domain.AdminUser, error)
	DeleteUser(ctx context.Context, token, id string) error
}

// QRGenerator renders the QR code that points customers at a tenant's menu.
type QRGenerator interface {
	Generate(subdomain string) ([]byte, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, item domain.CartItem) (domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type StorefrontServiceInterface interface {
	Resolve(ctx context.Context, subdomain string) (*domain.Restaurant, error)
	Menu(ctx context.Context, subdomain string) (*domain.Menu, error)
	QRCode(subdomain string) ([]byte, error)
	Checkout(ctx context.Context, subdomain string, cart domain.Cart, table, comment string) (*domain.Order, error)
}
