package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/facilities/osr1/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"code":"test01","name":"Test-Product-1"},{"code":"test02","name":"Test-Product-2"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	products, err := c.Products(context.Background(), "osr1")
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].Code != "test01" || products[0].Name != "Test-Product-1" {
		t.Errorf("products[0] = %+v", products[0])
	}
}

func TestContainerTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/facilities/osr1/container_types" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`["full","half","quarter"]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	types, err := c.ContainerTypes(context.Background(), "osr1")
	if err != nil {
		t.Fatalf("ContainerTypes() error = %v", err)
	}
	if len(types) != 3 || types[0] != "full" {
		t.Errorf("types = %v", types)
	}
}

func TestNoFacility(t *testing.T) {
	c := NewClient("http://localhost:0")
	_, err := c.Products(context.Background(), "")
	if !errors.Is(err, ErrNoFacility) {
		t.Errorf("Products() error = %v, want ErrNoFacility", err)
	}
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Products(context.Background(), "osr1"); err == nil {
		t.Error("Products() accepted a 500 response")
	}
}

func TestBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Products(context.Background(), "osr1"); err == nil {
		t.Error("Products() accepted malformed JSON")
	}
}
