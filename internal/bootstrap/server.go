package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"tripma/api"
	"tripma/config"
	"tripma/internal/service/auth"
	"tripma/internal/service/booking"
	"tripma/internal/service/flights"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, authSvc auth.AuthUseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, flightSvc, bookingSvc, authSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, authSvc auth.AuthUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), rateLimitMiddleware())

	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))
	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewAuthHandler(authSvc).Register(router.Group("/auth"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))

		router.GET("/docs/bookings", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/bookings.swagger.json")
		})
		router.GET("/docs/flights", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/flights.swagger.json")
		})
	}

	return router
}

var (
	visitors   = make(map[string]*rate.Limiter)
	visitorsMu sync.Mutex
)

func getVisitor(ip string) *rate.Limiter {
	visitorsMu.Lock()
	defer visitorsMu.Unlock()

	limiter, exists := visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(10, 30)
		visitors[ip] = limiter
	}
	return limiter
}

func rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !getVisitor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
