package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"taam-menu/internal/bus"
	"taam-menu/internal/domain"
)

// ErrRestaurantNotFound covers every resolution failure: reserved labels,
// backend 404s, and transport errors alike. The storefront does not
// distinguish transient from permanent failure.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// Labels that are never tenants. The static entries cover root-domain
// requests for assets that fall into the catch-all storefront route; they
// fail fast without a backend round trip.
var reservedSubdomains = map[string]bool{
	"taam":        true,
	"www":         true,
	"static":      true,
	"favicon.ico": true,
}

// CandidateFromHost derives the tenant candidate from a hostname: the first
// label before the first dot, lowercased, with any port stripped. A hostname
// without a dot yields no candidate.
func CandidateFromHost(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	i := strings.Index(host, ".")
	if i <= 0 {
		return ""
	}
	return host[:i]
}

// StorefrontService resolves subdomains to restaurants through a transient
// cache. Bus events invalidate cached copies so mutations from the dashboard
// show up on the public page without a restart.
type StorefrontService struct {
	resolver TenantResolver
	qr       QRGenerator

	mu    sync.RWMutex
	cache map[string]*domain.Restaurant
}

func NewStorefrontService(resolver TenantResolver, qr QRGenerator, events *bus.Bus) *StorefrontService {
	s := &StorefrontService{
		resolver: resolver,
		qr:       qr,
		cache:    make(map[string]*domain.Restaurant),
	}

	if events != nil {
		// A detail with a team id only evicts that restaurant; an empty id
		// means the event affects all teams, so everything goes.
		events.Subscribe(domain.EventRestaurantUpdated, func(detail domain.EventDetail) {
			if detail.Team == "" {
				s.flush()
				return
			}
			s.evictByID(detail.Team)
		})
		// The cached restaurant embeds its subscription summary, so any
		// subscription change flushes the lot.
		events.Subscribe(domain.EventSubscriptionUpdated, func(domain.EventDetail) {
			s.flush()
		})
	}

	return s
}

// Resolve looks the subdomain up against the backend, one attempt per call.
func (s *StorefrontService) Resolve(ctx context.Context, subdomain string) (*domain.Restaurant, error) {
	subdomain = strings.ToLower(subdomain)
	if subdomain == "" || reservedSubdomains[subdomain] {
		return nil, ErrRestaurantNotFound
	}

	s.mu.RLock()
	cached, ok := s.cache[subdomain]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	restaurant, err := s.resolver.GetRestaurantBySubdomain(ctx, subdomain)
	if err != nil {
		log.Printf("[storefront] lookup failed for %q: %v", subdomain, err)
		return nil, ErrRestaurantNotFound
	}

	s.mu.Lock()
	s.cache[subdomain] = restaurant
	s.mu.Unlock()

	return restaurant, nil
}

// Menu resolves the tenant and fetches its public menu.
func (s *StorefrontService) Menu(ctx context.Context, subdomain string) (*domain.Menu, error) {
	restaurant, err := s.Resolve(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	menu, err := s.resolver.GetPublicMenu(ctx, restaurant.ID)
	if err != nil {
		log.Printf("[storefront] menu fetch failed for %q: %v", subdomain, err)
		return nil, ErrRestaurantNotFound
	}
	return menu, nil
}

func (s *StorefrontService) QRCode(subdomain string) ([]byte, error) {
	return s.qr.Generate(subdomain)
}

var ErrEmptyCart = errors.New("cart is empty")

// Checkout turns the session cart into a backend order for the resolved
// tenant. The caller clears the cart once the order is accepted.
func (s *StorefrontService) Checkout(ctx context.Context, subdomain string, cart domain.Cart, table, comment string) (*domain.Order, error) {
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	restaurant, err := s.Resolve(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		RestaurantID: restaurant.ID,
		Table:        table,
		Comment:      comment,
		TotalAmount:  cart.Total(),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ItemID:   item.ID,
			ItemName: item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return s.resolver.PlaceOrder(ctx, restaurant.ID, order)
}

func (s *StorefrontService) flush() {
	s.mu.Lock()
	s.cache = make(map[string]*domain.Restaurant)
	s.mu.Unlock()
}

func (s *StorefrontService) evictByID(restaurantID string) {
	s.mu.Lock()
	for subdomain, restaurant := range s.cache {
		if restaurant.ID == restaurantID {
			delete(s.cache, subdomain)
		}
	}
	s.mu.Unlock()
}

var _ StorefrontServiceInterface = (*StorefrontService)(nil)
