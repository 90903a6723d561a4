package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taam-menu/internal/bus"
	"taam-menu/internal/domain"
	"taam-menu/internal/mocks"
)

func TestCandidateFromHost(t *testing.T) {
	tests := []struct {
		host     string
		expected string
	}{
		{"bobscafe.taam.menu", "bobscafe"},
		{"bobscafe.rest.taam.menu", "bobscafe"},
		{"BobsCafe.Taam.Menu", "bobscafe"},
		{"bobscafe.taam.menu:8080", "bobscafe"},
		{"bobscafe.taam.menu.", "bobscafe"},
		{"taam.menu", "taam"},
		{"localhost", ""},
		{"", ""},
		{".taam.menu", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.host, func(t *testing.T) {
			assert.Equal(t, testCase.expected, CandidateFromHost(testCase.host))
		})
	}
}

func TestStorefront_ReservedLabelsAreNotTenants(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	svc := NewStorefrontService(resolver, nil, nil)

	for _, label := range []string{"taam", "www", "WWW", "static", "favicon.ico", ""} {
		_, err := svc.Resolve(context.Background(), label)
		assert.ErrorIs(t, err, ErrRestaurantNotFound, "label %q", label)
	}
}

func TestStorefront_LookupFailureMapsToNotFound(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(nil, errors.New("backend unreachable"))

	svc := NewStorefrontService(resolver, nil, nil)

	_, err := svc.Resolve(context.Background(), "bobscafe")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestStorefront_ResolveCachesUntilInvalidated(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1", Subdomain: "bobscafe"}, nil).
		Twice()

	events := bus.New()
	svc := NewStorefrontService(resolver, nil, events)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
	second, err := svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
	assert.Same(t, first, second)

	events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: "r1"})

	_, err = svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
}

func TestStorefront_EmptyTeamEvictsEverything(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1", Subdomain: "bobscafe"}, nil).
		Twice()
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "sakura").
		Return(&domain.Restaurant{ID: "r2", Subdomain: "sakura"}, nil).
		Twice()

	events := bus.New()
	svc := NewStorefrontService(resolver, nil, events)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
	_, err = svc.Resolve(ctx, "sakura")
	assert.NoError(t, err)

	events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{})

	_, err = svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
	_, err = svc.Resolve(ctx, "sakura")
	assert.NoError(t, err)
}

func TestStorefront_EvictionIsScopedToTeam(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1", Subdomain: "bobscafe"}, nil).
		Twice()
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "sakura").
		Return(&domain.Restaurant{ID: "r2", Subdomain: "sakura"}, nil).
		Once()

	events := bus.New()
	svc := NewStorefrontService(resolver, nil, events)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
	_, err = svc.Resolve(ctx, "sakura")
	assert.NoError(t, err)

	events.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: "r1"})

	_, err = svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
	_, err = svc.Resolve(ctx, "sakura")
	assert.NoError(t, err)
}

func TestStorefront_SubscriptionUpdateFlushesCache(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1", Subdomain: "bobscafe"}, nil).
		Twice()

	events := bus.New()
	svc := NewStorefrontService(resolver, nil, events)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)

	events.Publish(domain.EventSubscriptionUpdated, domain.EventDetail{})

	_, err = svc.Resolve(ctx, "bobscafe")
	assert.NoError(t, err)
}

func TestStorefront_MenuFetchFailureMapsToNotFound(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1", Subdomain: "bobscafe"}, nil)
	resolver.On("GetPublicMenu", mock.Anything, "r1").
		Return(nil, errors.New("timeout"))

	svc := NewStorefrontService(resolver, nil, nil)

	_, err := svc.Menu(context.Background(), "bobscafe")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestStorefront_Menu(t *testing.T) {
	menu := &domain.Menu{
		Restaurant: domain.Restaurant{ID: "r1", Subdomain: "bobscafe"},
		Items:      []domain.MenuItem{{ID: "i1", Name: "Pizza", Price: 9.5}},
	}

	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1", Subdomain: "bobscafe"}, nil)
	resolver.On("GetPublicMenu", mock.Anything, "r1").Return(menu, nil)

	svc := NewStorefrontService(resolver, nil, nil)

	got, err := svc.Menu(context.Background(), "bobscafe")
	assert.NoError(t, err)
	assert.Equal(t, menu, got)
}

func TestStorefront_CheckoutRejectsEmptyCart(t *testing.T) {
	resolver := mocks.NewTenantResolver(t)
	svc := NewStorefrontService(resolver, nil, nil)

	_, err := svc.Checkout(context.Background(), "bobscafe", domain.Cart{}, "5", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestStorefront_CheckoutPlacesOrderFromCart(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{
		{ID: "i1", Name: "Pizza", Price: 9.5, Quantity: 2},
		{ID: "i2", Name: "Cola", Price: 2, Quantity: 1},
	}}

	resolver := mocks.NewTenantResolver(t)
	resolver.On("GetRestaurantBySubdomain", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1", Subdomain: "bobscafe"}, nil)
	resolver.On("PlaceOrder", mock.Anything, "r1", mock.MatchedBy(func(order *domain.Order) bool {
		return order.RestaurantID == "r1" &&
			order.Table == "5" &&
			order.Comment == "no onions" &&
			len(order.Items) == 2 &&
			order.Items[0].Quantity == 2
	})).Return(&domain.Order{ID: "o1", Status: "new"}, nil)

	svc := NewStorefrontService(resolver, nil, nil)

	order, err := svc.Checkout(context.Background(), "bobscafe", cart, "5", "no onions")
	assert.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
}
