package main

import (
	"net/http"
	"time"

	"taam-menu/config"
	httpapi "taam-menu/internal/api/http"
	"taam-menu/internal/apiclient"
	"taam-menu/internal/bus"
	"taam-menu/internal/service"
	"taam-menu/internal/storage"
)

func main() {
	rootDomain := config.GetEnv("ROOT_DOMAIN", "taam.menu")
	backendURL := config.GetEnv("BACKEND_API_URL", "http://localhost:8000")
	scheme := config.GetEnv("PUBLIC_SCHEME", "https")

	events := bus.New()
	backend := apiclient.New(backendURL, &http.Client{Timeout: 30 * time.Second})

	var cartStore service.CartStore
	if config.RedisConfigured() {
		cartStore = storage.NewRedisCartStore(config.MustInitRedis(), 24*time.Hour)
	} else {
		cartStore = storage.NewMemoryCartStore()
	}
	carts := service.NewCartService(cartStore)

	qr := service.DefaultQRGenerator{Scheme: scheme, RootDomain: rootDomain}
	storefront := service.NewStorefrontService(backend, qr, events)

	if config.KafkaConfigured() {
		mirror := storage.NewKafkaEventMirror(config.NewKafkaWriter(config.GetEnv("KAFKA_TOPIC", "dashboard-events")))
		mirror.Attach(events)
	}

	handler := httpapi.NewHandler(backend, storefront, carts, events)
	router := httpapi.NewRouter(handler, rootDomain)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8080"), router)
}
