// loadtest hammers the dashboard read endpoints to exercise caching and
// rate limiting under concurrent load.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

var paths = []string{
	"/api/status",
	"/api/matches/live",
	"/api/matches/recent",
	"/api/events",
}

func main() {
	base := flag.String("base", "http://localhost:9210", "dashboard base URL")
	workers := flag.Int("workers", 8, "concurrent workers")
	duration := flag.Duration("duration", 30*time.Second, "how long to run")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var requests, failures, limited int64
	deadline := time.Now().Add(*duration)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for n := 0; time.Now().Before(deadline); n++ {
				url := *base + paths[n%len(paths)]
				resp, err := client.Get(url)
				atomic.AddInt64(&requests, 1)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					log.Printf("worker %d: %v", worker, err)
					continue
				}
				switch {
				case resp.StatusCode == http.StatusTooManyRequests:
					atomic.AddInt64(&limited, 1)
				case resp.StatusCode >= 500:
					atomic.AddInt64(&failures, 1)
				}
				_ = resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	total := atomic.LoadInt64(&requests)
	fmt.Printf("requests: %d (%.0f/s)\n", total, float64(total) / duration.Seconds())
	fmt.Printf("failures: %d\n", atomic.LoadInt64(&failures))
	fmt.Printf("rate limited: %d\n", atomic.LoadInt64(&limited))
}
