package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taam-menu/internal/domain"
)

func TestBus_SubscribePublishUnsubscribe(t *testing.T) {
	b := New()

	calls := 0
	unsubscribe := b.Subscribe(domain.EventRestaurantUpdated, func(domain.EventDetail) {
		calls++
	})

	b.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: "r1"})
	unsubscribe()
	b.Publish(domain.EventRestaurantUpdated, domain.EventDetail{Team: "r1"})

	assert.Equal(t, 1, calls)
}

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	b := New()

	var order []string
	b.Subscribe("test", func(domain.EventDetail) { order = append(order, "first") })
	b.Subscribe("test", func(domain.EventDetail) { order = append(order, "second") })
	b.Subscribe("test", func(domain.EventDetail) { order = append(order, "third") })

	b.Publish("test", domain.EventDetail{})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	b := New()

	delivered := false
	b.Subscribe("test", func(domain.EventDetail) { panic("boom") })
	b.Subscribe("test", func(domain.EventDetail) { delivered = true })

	b.Publish("test", domain.EventDetail{})

	assert.True(t, delivered)
}

func TestBus_DetailReachesHandler(t *testing.T) {
	b := New()

	var got domain.EventDetail
	b.Subscribe(domain.EventDashboardNavigate, func(detail domain.EventDetail) {
		got = detail
	})

	b.Publish(domain.EventDashboardNavigate, domain.EventDetail{Team: "r7", Panel: "orders"})

	assert.Equal(t, "r7", got.Team)
	assert.Equal(t, "orders", got.Panel)
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	b := New()
	assert.NotPanics(t, func() {
		b.Publish("nobody-listens", domain.EventDetail{})
	})
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	b := New()

	calls := 0
	unsubscribe := b.Subscribe("test", func(domain.EventDetail) { calls++ })
	other := 0
	b.Subscribe("test", func(domain.EventDetail) { other++ })

	unsubscribe()
	unsubscribe()

	assert.Equal(t, 1, b.Subscribers("test"))

	b.Publish("test", domain.EventDetail{})
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, other)
}
