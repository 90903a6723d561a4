package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter assembles the full handler chain: mux routes inside, then the
// host rewriter (so wildcard subdomains land on the storefront routes), then
// CORS outermost.
func NewRouter(handler *Handler, rootDomain string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./static/"))))

	rewritten := NewHostRewriter(r, rootDomain)
	return cors.Default().Handler(rewritten)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("taam-menu web tier starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
