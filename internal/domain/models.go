package domain

import "time"

// Restaurant is the tenant record as the backend serves it. The web tier
// never persists it; copies live in the storefront cache until invalidated.
type Restaurant struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Subdomain    string               `json:"subdomain"`
	Description  string               `json:"description"`
	Phone        string               `json:"phone"`
	Address      string               `json:"address"`
	Instagram    string               `json:"instagram"`
	Whatsapp     string               `json:"whatsapp"`
	Features     []string             `json:"features"`
	Currency     string               `json:"currency"`
	PhotoURL     string               `json:"photo_url"`
	QRCodeURL    string               `json:"qr_code_url"`
	Subscription *SubscriptionSummary `json:"subscription,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// SubscriptionSummary is the plan state embedded in a restaurant record.
type SubscriptionSummary struct {
	PlanCode  string     `json:"plan_code"`
	PlanName  string     `json:"plan_name"`
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type Plan struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	PeriodDays  int     `json:"period_days"`
	MaxItems    int     `json:"max_items"`
}

// Subscription history statuses as the backend reports them.
const (
	SubscriptionActive   = "active"
	SubscriptionPending  = "pending"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
)

// SubscriptionHistoryEntry is append-only on the backend; the web tier only
// displays these and mutates them through subscribe/cancel calls.
type SubscriptionHistoryEntry struct {
	ID        string     `json:"id"`
	PlanCode  string     `json:"plan_code"`
	PlanName  string     `json:"plan_name"`
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type MenuCategory struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Position     int    `json:"position"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PhotoURL    string  `json:"photo_url"`
	Available   bool    `json:"available"`
	Position    int     `json:"position"`
}

// Menu is the public storefront payload: the restaurant with its categories
// and the items grouped under them.
type Menu struct {
	Restaurant Restaurant     `json:"restaurant"`
	Categories []MenuCategory `json:"categories"`
	Items      []MenuItem     `json:"items"`
}

type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	Table        string      `json:"table"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"total_amount"`
	Comment      string      `json:"comment"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
