package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches the public product feed used to seed an empty catalog.
type Client struct {
	feedURL    string
	httpClient *http.Client
}

// NewClient creates a feed client for the given products.json URL.
func NewClient(feedURL string) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ---- feed response structs ----

// Variant carries the price as a decimal string, as published by the feed.
type Variant struct {
	Title     string `json:"title"`
	SKU       string `json:"sku"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
	Option1   string `json:"option1"`
	Option2   string `json:"option2"`
}

type Product struct {
	Title       string    `json:"title"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Variants    []Variant `json:"variants"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// FetchProducts downloads and decodes the feed.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch product feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("product feed returned %d: %s", resp.StatusCode, string(body))
	}

	var decoded productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode product feed: %w", err)
	}
	return decoded.Products, nil
}
