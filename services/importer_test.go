package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"catalog-service/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFeed struct {
	products []feed.Product
	err      error
	calls    int
}

func (f *fakeFeed) FetchProducts(ctx context.Context) ([]feed.Product, error) {
	f.calls++
	return f.products, f.err
}

func feedProducts(n int) []feed.Product {
	var out []feed.Product
	for i := 0; i < n; i++ {
		out = append(out, feed.Product{
			Title:       fmt.Sprintf("Product %d", i),
			Vendor:      "Acme",
			ProductType: "Shoes",
			Variants: []feed.Variant{
				{Title: "One Size", SKU: fmt.Sprintf("P%d-OS", i), Price: "129.00", Available: true},
			},
		})
	}
	return out
}

func TestImport_SavesAtMostLimitProducts(t *testing.T) {
	repo := &fakeProductRepository{count: 0}
	fetcher := &fakeFeed{products: feedProducts(12)}
	importer := NewImporter(repo, fetcher, 10, zap.NewNop())

	importer.ImportSampleProducts(context.Background())

	require.Len(t, repo.savedProducts, 10)
	first := repo.savedProducts[0]
	assert.Equal(t, "Product 0", first.Title)
	assert.Equal(t, "Acme", first.Vendor)
	assert.Equal(t, "Shoes", first.Type)
	require.Len(t, first.Variants, 1)
	assert.Equal(t, 129.0, first.Variants[0].Price)
	assert.True(t, first.Variants[0].Available)
}

func TestImport_SkipsWhenCatalogNotEmpty(t *testing.T) {
	repo := &fakeProductRepository{count: 5}
	fetcher := &fakeFeed{products: feedProducts(3)}
	importer := NewImporter(repo, fetcher, 10, zap.NewNop())

	importer.ImportSampleProducts(context.Background())

	assert.Zero(t, fetcher.calls)
	assert.Empty(t, repo.savedProducts)
}

func TestImport_FeedFailureIsSuppressed(t *testing.T) {
	repo := &fakeProductRepository{count: 0}
	fetcher := &fakeFeed{err: errors.New("connection refused")}
	importer := NewImporter(repo, fetcher, 10, zap.NewNop())

	importer.ImportSampleProducts(context.Background())

	assert.Empty(t, repo.savedProducts)
}

func TestImport_CountFailureIsSuppressed(t *testing.T) {
	repo := &fakeProductRepository{countErr: errors.New("connection refused")}
	fetcher := &fakeFeed{products: feedProducts(3)}
	importer := NewImporter(repo, fetcher, 10, zap.NewNop())

	importer.ImportSampleProducts(context.Background())

	assert.Zero(t, fetcher.calls)
	assert.Empty(t, repo.savedProducts)
}

func TestImport_SaveFailureSkipsProductAndContinues(t *testing.T) {
	repo := &fakeProductRepository{saveErr: errors.New("insert failed")}
	fetcher := &fakeFeed{products: feedProducts(3)}
	importer := NewImporter(repo, fetcher, 10, zap.NewNop())

	importer.ImportSampleProducts(context.Background())

	assert.Empty(t, repo.savedProducts)
}

func TestImport_UnparseablePriceBecomesZero(t *testing.T) {
	repo := &fakeProductRepository{}
	fetcher := &fakeFeed{products: []feed.Product{{
		Title:    "Odd",
		Variants: []feed.Variant{{Title: "V", Price: "free"}},
	}}}
	importer := NewImporter(repo, fetcher, 10, zap.NewNop())

	importer.ImportSampleProducts(context.Background())

	require.Len(t, repo.savedProducts, 1)
	assert.Zero(t, repo.savedProducts[0].Variants[0].Price)
}
