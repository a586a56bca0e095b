package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/keyfort/keyfort-go/client"
)

func ExampleNew() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"DATABASE_URL","value":"postgres://db","project_id":"proj-1"}`))
	}))
	defer server.Close()

	c, err := client.New(client.Config{
		AccessKey: "ak_demo",
		SecretKey: "demo-secret",
		ProjectID: "proj-1",
		BaseURL:   server.URL,
	})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	value, err := c.GetKey(context.Background(), "DATABASE_URL")
	if err != nil {
		fmt.Println("fetch failed:", err)
		return
	}
	fmt.Println("value:", value)
	// Output:
	// value: postgres://db
}

func ExampleRetryable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"API key not found"}`))
	}))
	defer server.Close()

	c, _ := client.New(client.Config{
		AccessKey: "ak_demo",
		ProjectID: "proj-1",
		BaseURL:   server.URL,
	})

	_, err := c.GetKey(context.Background(), "MISSING")

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Println("status:", apiErr.StatusCode)
		fmt.Println("retryable:", client.Retryable(err))
	}
	// Output:
	// status: 404
	// retryable: false
}
