package repository_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

type fakeRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type fakeProduct struct {
	ID          int         `json:"id"`
	Title       string      `json:"title,omitempty"`
	Price       float64     `json:"price,omitempty"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Image       string      `json:"image,omitempty"`
	Rating      *fakeRating `json:"rating,omitempty"`
}

// productAPI mimics the product endpoints of fakestoreapi.com: creation and
// update echo the request fields plus an id and never store anything.
type productAPI struct {
	mu       sync.Mutex
	products []fakeProduct
	failWith int
}

func startProductAPI(products []fakeProduct) (*productAPI, *httptest.Server) {
	api := &productAPI{products: products}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", api.list)
	mux.HandleFunc("GET /products/{id}", api.get)
	mux.HandleFunc("POST /products", api.create)
	mux.HandleFunc("PUT /products/{id}", api.update)
	mux.HandleFunc("DELETE /products/{id}", api.delete)
	mux.HandleFunc("GET /products/category/{category}", api.byCategory)

	return api, httptest.NewServer(api.failing(mux))
}

func (a *productAPI) setFailure(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failWith = status
}

func (a *productAPI) failing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		status := a.failWith
		a.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *productAPI) list(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := a.products
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit < len(result) {
		result = result[:limit]
	}
	writeJSON(w, result)
}

func (a *productAPI) get(w http.ResponseWriter, r *http.Request) {
	p, ok := a.find(r.PathValue("id"))
	if !ok {
		// fakestoreapi answers unknown ids with 200 and an empty body
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, p)
}

func (a *productAPI) create(w http.ResponseWriter, r *http.Request) {
	var in fakeProduct
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	in.ID = len(a.products) + 1
	a.mu.Unlock()

	writeJSON(w, in)
}

func (a *productAPI) update(w http.ResponseWriter, r *http.Request) {
	var in fakeProduct
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in.ID = id

	writeJSON(w, in)
}

func (a *productAPI) delete(w http.ResponseWriter, r *http.Request) {
	p, ok := a.find(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, p)
}

func (a *productAPI) byCategory(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	category := r.PathValue("category")

	result := []fakeProduct{}
	for _, p := range a.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	writeJSON(w, result)
}

func (a *productAPI) find(rawID string) (fakeProduct, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fakeProduct{}, false
	}

	for _, p := range a.products {
		if p.ID == id {
			return p, true
		}
	}
	return fakeProduct{}, false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func randomFakeProducts(n int) []fakeProduct {
	products := make([]fakeProduct, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, randomFakeProduct(i))
	}
	return products
}

func randomFakeProduct(id int) fakeProduct {
	return fakeProduct{
		ID:          id,
		Title:       gofakeit.ProductName(),
		Price:       gofakeit.Price(1, 500),
		Description: gofakeit.ProductDescription(),
		Category:    gofakeit.RandomString([]string{"men's clothing", "women's clothing", "electronics", "jewelery"}),
		Image:       gofakeit.URL(),
		Rating: &fakeRating{
			Rate:  gofakeit.Float64Range(0, 5),
			Count: gofakeit.IntRange(1, 500),
		},
	}
}
