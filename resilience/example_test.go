package resilience_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/keyfort/keyfort-go/client"
	"github.com/keyfort/keyfort-go/resilience"
)

func ExampleNewFetcher() {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"detail":"upstream unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"name":"API_TOKEN","value":"tok-123","project_id":"proj-1"}`))
	}))
	defer server.Close()

	c, _ := client.New(client.Config{
		AccessKey: "ak_demo",
		ProjectID: "proj-1",
		BaseURL:   server.URL,
	})

	fetcher := resilience.NewFetcher(c, resilience.FetcherConfig{
		Retry: resilience.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
		},
		Timeout: 5 * time.Second,
	})

	value, err := fetcher.GetKey(context.Background(), "API_TOKEN")
	if err != nil {
		fmt.Println("fetch failed:", err)
		return
	}
	fmt.Println("value:", value)
	fmt.Println("attempts:", hits)
	// Output:
	// value: tok-123
	// attempts: 2
}
