//nolint:mnd
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

type orderPayload struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Quantity   int    `json:"quantity"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the order service")
	numOrders := flag.Int("count", 1, "Number of orders to submit")
	interval := flag.Duration("interval", 1*time.Second, "Interval between submissions")

	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf(
		"Submitting %d fake orders to '%s' every %v\n",
		*numOrders,
		*baseURL,
		*interval,
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	ordersSent := 0

	submitOrder(ctx, client, *baseURL)

	ordersSent++
	if ordersSent >= *numOrders {
		log.Printf("Submitted all %d orders. Exiting.\n", *numOrders)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down generator...")
			return
		case <-ticker.C:
			submitOrder(ctx, client, *baseURL)
			ordersSent++
			if ordersSent >= *numOrders {
				log.Printf("Submitted all %d orders. Exiting.\n", *numOrders)
				return
			}
		}
	}
}

func submitOrder(ctx context.Context, client *http.Client, baseURL string) {
	order := generateFakeOrder()

	body, err := json.Marshal(order)
	if err != nil {
		log.Printf("Failed to marshal order: %v\n", err)
		return
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		baseURL+"/api/orders",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Printf("Failed to build request: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Failed to submit order: %v\n", err)
		return
	}
	defer resp.Body.Close()

	log.Printf("Submitted order for %q, status %d\n", order.Name, resp.StatusCode)
}

func generateFakeOrder() orderPayload {
	return orderPayload{
		Name:       gofakeit.Name(),
		Phone:      fmt.Sprintf("9%08d", gofakeit.Number(0, 99999999)),
		Address:    gofakeit.Address().Address,
		PostalCode: fmt.Sprintf("%04d-%03d", gofakeit.Number(1000, 9999), gofakeit.Number(1, 999)),
		Quantity:   gofakeit.Number(1, 10),
	}
}
