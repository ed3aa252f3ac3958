package main

import (
	"log"
	"net/http"
	"time"

	"cbd-storefront/internal/config"
	"cbd-storefront/internal/handlers"
	"cbd-storefront/internal/middleware"
	"cbd-storefront/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store for CSRF tokens
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 1 day
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Commerce backend client and services on top of it
	backend := services.NewBackendService(cfg.Backend)
	loyaltyService := services.NewLoyaltyService(backend)
	cartSyncService := services.NewCartSyncService(backend)

	// Handlers
	pricingHandler := handlers.NewPricingHandler()
	cartHandler := handlers.NewCartHandler(cartSyncService, backend)
	checkoutHandler := handlers.NewCheckoutHandler(loyaltyService)
	accountHandler := handlers.NewAccountHandler()

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(backend, cfg.Auth)
	csrfMiddleware := middleware.NewCSRFMiddleware(sessionStore, []byte(cfg.Session.Secret))
	originCheck := middleware.OriginCheckMiddleware(cfg.CORS.AllowedOrigins)
	pricingLimiter := middleware.NewRateLimiter(60, time.Minute)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins)))

	r.Route("/api", func(api chi.Router) {
		api.With(originCheck, pricingLimiter.Middleware).Post("/pricing", pricingHandler.ComputePricing)

		api.Route("/cart", func(cart chi.Router) {
			cart.Use(authMiddleware.LoadCustomer)
			cart.Get("/sync", cartHandler.GetSync)
			cart.With(originCheck).Post("/sync", cartHandler.PostSync)
			cart.With(originCheck, csrfMiddleware.Protect).Post("/apply-promo", cartHandler.ApplyPromo)
			cart.With(originCheck, csrfMiddleware.Protect).Post("/apply-referral", cartHandler.ApplyReferral)
		})

		api.With(originCheck).Post("/checkout/apply-loyalty", checkoutHandler.ApplyLoyalty)
		api.With(authMiddleware.LoadCustomer).Get("/account/wallet", accountHandler.Wallet)
		api.Get("/csrf", csrfMiddleware.TokenHandler())
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.NotFound(middleware.NotFoundHandler().ServeHTTP)

	addr := ":" + cfg.Server.Port
	log.Printf("Storefront API listening on %s (backend: %s)", addr, cfg.Backend.BaseURL)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
