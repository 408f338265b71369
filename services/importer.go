package services

import (
	"context"
	"strconv"

	"catalog-service/feed"
	"catalog-service/models"
	"catalog-service/repository"

	"go.uber.org/zap"
)

// FeedFetcher is the slice of the feed client the importer needs.
type FeedFetcher interface {
	FetchProducts(ctx context.Context) ([]feed.Product, error)
}

// Importer seeds an empty catalog from the external product feed once at
// startup. Import failures are logged and suppressed; the service keeps
// running with an empty catalog.
type Importer struct {
	repo   repository.ProductRepository
	feed   FeedFetcher
	limit  int
	logger *zap.Logger
}

// NewImporter creates an Importer that saves at most limit feed products.
func NewImporter(repo repository.ProductRepository, fetcher FeedFetcher, limit int, logger *zap.Logger) *Importer {
	return &Importer{repo: repo, feed: fetcher, limit: limit, logger: logger}
}

// ImportSampleProducts runs the one-time import when the store is empty.
func (i *Importer) ImportSampleProducts(ctx context.Context) {
	count, err := i.repo.Count(ctx)
	if err != nil {
		i.logger.Error("Sample import skipped: count failed", zap.Error(err))
		return
	}
	if count > 0 {
		i.logger.Info("Sample import skipped: catalog not empty", zap.Int64("count", count))
		return
	}

	feedProducts, err := i.feed.FetchProducts(ctx)
	if err != nil {
		i.logger.Error("Sample import failed: feed unavailable", zap.Error(err))
		return
	}

	if len(feedProducts) > i.limit {
		feedProducts = feedProducts[:i.limit]
	}

	imported := 0
	for _, fp := range feedProducts {
		product := mapFeedProduct(fp, i.logger)
		if _, err := i.repo.Save(ctx, product); err != nil {
			i.logger.Error("Sample import: save failed",
				zap.String("title", product.Title),
				zap.Error(err),
			)
			continue
		}
		imported++
	}

	i.logger.Info("Sample import finished", zap.Int("imported", imported))
}

func mapFeedProduct(fp feed.Product, logger *zap.Logger) *models.Product {
	p := &models.Product{
		Title:  fp.Title,
		Vendor: fp.Vendor,
		Type:   fp.ProductType,
	}
	for _, fv := range fp.Variants {
		price, err := strconv.ParseFloat(fv.Price, 64)
		if err != nil {
			logger.Warn("Sample import: unparseable variant price",
				zap.String("product", fp.Title),
				zap.String("price", fv.Price),
			)
			price = 0
		}
		p.Variants = append(p.Variants, models.Variant{
			Title:     fv.Title,
			SKU:       fv.SKU,
			Price:     price,
			Available: fv.Available,
			Option1:   fv.Option1,
			Option2:   fv.Option2,
		})
	}
	return p
}
