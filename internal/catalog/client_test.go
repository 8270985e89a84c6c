package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const productsJSON = `{
	"products": [
		{
			"id": "esim_TH_7d_5gb",
			"name": "Thailand 5 GB - 7 Days",
			"type": "esim",
			"duration": 7,
			"duration_unit": "DAYS",
			"price": 9.99,
			"price_currency": "EUR",
			"data": 5,
			"data_raw": 5368709120,
			"data_unit": "GB"
		},
		{
			"id": "esim_TH_15d_10gb",
			"name": "Thailand 10 GB - 15 Days",
			"type": "esim",
			"duration": 15,
			"duration_unit": "DAYS",
			"price": 14.99,
			"price_currency": "EUR",
			"data": 10,
			"data_raw": 10737418240,
			"data_unit": "GB"
		}
	],
	"availableCountries": ["THA", "BRA"]
}`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/products/default/" {
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
		if r.URL.Query().Get("currency") == "" {
			t.Error("expected currency query parameter")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestGetProducts(t *testing.T) {
	server := newTestServer(t, http.StatusOK, productsJSON)
	defer server.Close()

	client := NewClient(server.URL)

	data, err := client.GetProducts(context.Background(), "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(data.Products))
	}

	first := data.Products[0]
	if first.ID != "esim_TH_7d_5gb" {
		t.Errorf("expected first product esim_TH_7d_5gb, got %s", first.ID)
	}
	if first.Price != 9.99 || first.PriceCurrency != "EUR" {
		t.Errorf("unexpected price: %v %s", first.Price, first.PriceCurrency)
	}
	if first.Data != 5 || first.DataUnit != "GB" {
		t.Errorf("unexpected data allowance: %v %s", first.Data, first.DataUnit)
	}
	if len(data.AvailableCountries) != 2 {
		t.Errorf("expected 2 available countries, got %d", len(data.AvailableCountries))
	}
}

func TestGetProductsNon2xxIsFatal(t *testing.T) {
	server := newTestServer(t, http.StatusBadGateway, "upstream unavailable")
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetProducts(context.Background(), "EUR")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected error to carry the status code, got: %v", err)
	}
	if !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("expected error to carry the response body, got: %v", err)
	}
}

func TestGetProductsMalformedBody(t *testing.T) {
	server := newTestServer(t, http.StatusOK, "{not json")
	defer server.Close()

	client := NewClient(server.URL)

	if _, err := client.GetProducts(context.Background(), "EUR"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetProductByID(t *testing.T) {
	server := newTestServer(t, http.StatusOK, productsJSON)
	defer server.Close()

	client := NewClient(server.URL)

	product, err := client.GetProductByID(context.Background(), "EUR", "esim_TH_15d_10gb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Thailand 10 GB - 15 Days" {
		t.Errorf("unexpected product name %q", product.Name)
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	server := newTestServer(t, http.StatusOK, productsJSON)
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetProductByID(context.Background(), "EUR", "esim_XX_none")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}
