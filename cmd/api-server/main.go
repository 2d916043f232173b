package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"quotehub/internal/quotes"
	"quotehub/internal/scraper"
	synchub "quotehub/internal/sync"
	"quotehub/pkg/utils"
)

func main() {
	scrapeCfg := utils.LoadScraperConfig()
	srvCfg := utils.LoadServerConfig()

	store := quotes.NewStore()

	hub := synchub.NewHub()
	tcpSrv := synchub.NewServer(srvCfg.TCPAddr, hub)

	scr := scraper.New(scraper.NewHTTPFetcher(scrapeCfg.UserAgent), store, scrapeCfg.BaseURL)
	scr.PageDelay = scrapeCfg.PageDelay
	scr.Events = hub

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/ws", synchub.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "quotes": store.Len()})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"quotes":      store.Len(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	handler := quotes.NewHandler(store, scr.Run, scrapeCfg.DefaultPages)
	handler.RegisterRoutes(router.Group("/api"))

	httpSrv := &http.Server{
		Addr:    srvCfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("[api] listening on %s", srvCfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("[api] shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("[api] server error: %v", err)
	}

	log.Println("[api] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("[api] tcp shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("[api] servers stopped")
}
