package httpapi

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taam-menu/internal/apiclient"
	"taam-menu/internal/bus"
	"taam-menu/internal/domain"
	"taam-menu/internal/mocks"
	"taam-menu/internal/service"
	"taam-menu/internal/storage"
)

type fixture struct {
	backend    *mocks.DashboardAPI
	storefront *mocks.StorefrontServiceInterface
	carts      *service.CartService
	events     *bus.Bus
	router     *mux.Router
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		backend:    mocks.NewDashboardAPI(t),
		storefront: mocks.NewStorefrontServiceInterface(t),
		carts:      service.NewCartService(storage.NewMemoryCartStore()),
		events:     bus.New(),
	}
	handler := NewHandler(f.backend, f.storefront, f.carts, f.events)
	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}

func TestGetProfile_ForwardsBearerToken(t *testing.T) {
	f := newFixture(t)
	f.backend.On("GetProfile", mock.Anything, "tok-123").
		Return(&domain.Profile{Email: "owner@example.com"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	recorder := f.do(req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "owner@example.com")
}

func TestCreateRestaurant_PublishesUpdateEvent(t *testing.T) {
	f := newFixture(t)
	f.backend.On("CreateRestaurant", mock.Anything, "tok", mock.Anything).
		Return(&domain.Restaurant{ID: "r1", Name: "Cafe"}, nil)

	var published []domain.EventDetail
	f.events.Subscribe(domain.EventRestaurantUpdated, func(detail domain.EventDetail) {
		published = append(published, detail)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants", strings.NewReader(`{"name":"Cafe"}`))
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, published, 1)
	assert.Equal(t, "r1", published[0].Team)
}

func TestDeleteRestaurant_PublishesUpdateEvent(t *testing.T) {
	f := newFixture(t)
	f.backend.On("DeleteRestaurant", mock.Anything, "tok", "r1").Return(nil)

	var published []domain.EventDetail
	f.events.Subscribe(domain.EventRestaurantUpdated, func(detail domain.EventDetail) {
		published = append(published, detail)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/restaurants/r1", nil)
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Len(t, published, 1)
	assert.Equal(t, "r1", published[0].Team)
}

func TestCreateMenuItem_FailureDoesNotPublish(t *testing.T) {
	f := newFixture(t)
	f.backend.On("CreateMenuItem", mock.Anything, "tok", "r1", mock.Anything).
		Return(nil, &apiclient.APIError{StatusCode: 422, Detail: "name is required"})

	published := 0
	f.events.Subscribe(domain.EventRestaurantUpdated, func(domain.EventDetail) { published++ })

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/items", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, 422, recorder.Code)
	assert.Zero(t, published)
}

func TestBackendErrorStatusPassesThrough(t *testing.T) {
	f := newFixture(t)
	f.backend.On("GetRestaurant", mock.Anything, "tok", "missing").
		Return(nil, &apiclient.APIError{StatusCode: http.StatusNotFound, Detail: "not found"})

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/missing", nil)
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "not found")
	assert.NotContains(t, body, "action")
}

func TestTransportErrorBecomesBadGateway(t *testing.T) {
	f := newFixture(t)
	f.backend.On("ListRestaurants", mock.Anything, "tok").
		Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestLimitErrorCarriesTariffsAction(t *testing.T) {
	f := newFixture(t)
	f.backend.On("CreateMenuItem", mock.Anything, "tok", "r1", mock.Anything).
		Return(nil, &apiclient.APIError{StatusCode: http.StatusForbidden, Detail: "menu item limit reached for your plan"})

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/items", strings.NewReader(`{"name":"Pizza"}`))
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "tariffs", body["action"])
}

func TestSubscribe_PublishesSubscriptionEvent(t *testing.T) {
	f := newFixture(t)
	f.backend.On("Subscribe", mock.Anything, "tok", "r1", "pro").
		Return(&domain.SubscriptionHistoryEntry{ID: "sub1", PlanCode: "pro"}, nil)

	published := 0
	f.events.Subscribe(domain.EventSubscriptionUpdated, func(domain.EventDetail) { published++ })

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/subscriptions", strings.NewReader(`{"plan_code":"pro"}`))
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, published)
}

func TestSubscribe_RequiresPlanCode(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/subscriptions", strings.NewReader(`{}`))
	recorder := f.do(req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestImportMenuCSV_RejectsEmptyBody(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/menu/import", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	recorder := f.do(req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "csv file is required")
}

func TestExportMenuCSV_SetsDownloadHeaders(t *testing.T) {
	f := newFixture(t)
	f.backend.On("ExportMenuCSV", mock.Anything, "tok", "r1").
		Return([]byte("name,price\n"), "text/csv", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1/menu/export", nil)
	req.Header.Set("Authorization", "Bearer tok")
	recorder := f.do(req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "menu.csv")
}

func TestNavigate_PublishesAndRequiresPanel(t *testing.T) {
	f := newFixture(t)

	var got domain.EventDetail
	f.events.Subscribe(domain.EventDashboardNavigate, func(detail domain.EventDetail) { got = detail })

	recorder := f.do(httptest.NewRequest(http.MethodPost, "/api/navigate", strings.NewReader(`{"panel":"orders","team":"r1"}`)))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "orders", got.Panel)
	assert.Equal(t, "r1", got.Team)

	recorder = f.do(httptest.NewRequest(http.MethodPost, "/api/navigate", strings.NewReader(`{"team":"r1"}`)))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// --- Cart endpoints ---

func TestCart_SessionCookieMintedOnFirstUse(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	var session *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == cartSessionCookie {
			session = cookie
		}
	}
	assert.NotNil(t, session)
	assert.Len(t, session.Value, 32)
	_, err := hex.DecodeString(session.Value)
	assert.NoError(t, err)
}

func TestCart_AddAndReadRoundTrip(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"i1","name":"Pizza","price":9.5}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	recorder := f.do(req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"i1","name":"Pizza","price":9.5}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	f.do(req)

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	recorder = f.do(req)

	var view struct {
		Items     []domain.CartItem `json:"items"`
		Total     float64           `json:"total"`
		ItemCount int               `json:"item_count"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.ItemCount)
	assert.InDelta(t, 19.0, view.Total, 0.001)
}

func TestCart_AddRequiresItemID(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"name":"Pizza"}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCart_ZeroQuantityRemovesLine(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"i1","price":5}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	f.do(req)

	req = httptest.NewRequest(http.MethodPut, "/api/cart/items/i1", strings.NewReader(`{"quantity":0}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	recorder := f.do(req)

	var view struct {
		Items []domain.CartItem `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
}

func TestCart_ClearEmptiesView(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"i1","price":5}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	f.do(req)

	req = httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	recorder := f.do(req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"item_count":0`)
}

// --- Storefront endpoints ---

func TestStorefrontMenu(t *testing.T) {
	f := newFixture(t)
	f.storefront.On("Menu", mock.Anything, "bobscafe").
		Return(&domain.Menu{Restaurant: domain.Restaurant{ID: "r1", Name: "Bob's Cafe"}}, nil)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/bobscafe/menu", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Bob's Cafe")
}

func TestStorefrontMenu_AllFailuresCollapseToNotFound(t *testing.T) {
	f := newFixture(t)
	f.storefront.On("Menu", mock.Anything, "ghost").
		Return(nil, service.ErrRestaurantNotFound)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/ghost", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "restaurant not found")
}

func TestStorefrontQR(t *testing.T) {
	f := newFixture(t)
	f.storefront.On("Resolve", mock.Anything, "bobscafe").
		Return(&domain.Restaurant{ID: "r1"}, nil)
	f.storefront.On("QRCode", "bobscafe").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/bobscafe/qr", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestStorefrontCheckout_PlacesOrderAndClearsCart(t *testing.T) {
	f := newFixture(t)
	f.storefront.On("Checkout", mock.Anything, "bobscafe", mock.MatchedBy(func(cart domain.Cart) bool {
		return cart.ItemCount() == 1
	}), "5", "no onions").Return(&domain.Order{ID: "o1", Status: "new"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"i1","price":9.5}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	f.do(req)

	req = httptest.NewRequest(http.MethodPost, "/bobscafe/order", strings.NewReader(`{"table":"5","comment":"no onions"}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	recorder := f.do(req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "o1")

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	recorder = f.do(req)
	assert.Contains(t, recorder.Body.String(), `"item_count":0`)
}

func TestStorefrontCheckout_EmptyCartIsBadRequest(t *testing.T) {
	f := newFixture(t)
	f.storefront.On("Checkout", mock.Anything, "bobscafe", mock.Anything, "", "").
		Return(nil, service.ErrEmptyCart)

	req := httptest.NewRequest(http.MethodPost, "/bobscafe/order", strings.NewReader(`{}`))
	req.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "sess-1"})
	recorder := f.do(req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
