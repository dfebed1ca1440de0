package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nikolayk812/shopcart/internal/apiclient"
	"github.com/nikolayk812/shopcart/internal/config"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/format"
	"github.com/nikolayk812/shopcart/internal/logger"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/nikolayk812/shopcart/internal/repository"
	"github.com/nikolayk812/shopcart/pkg/sigctx"
	"github.com/spf13/pflag"
	"golang.org/x/text/currency"
)

const titleLength = 40

func main() {
	fs := pflag.NewFlagSet("list-products", pflag.ExitOnError)
	category := fs.String("category", "", "only list products of this category")
	limit := fs.Int("limit", 0, "maximum number of products, 0 lists all")
	id := fs.Int("id", 0, "show a single product")

	ctx, stop := sigctx.NotifyContext()
	defer stop()

	cfg, err := config.LoadFlagSet(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment, "warn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	client, err := apiclient.New(cfg.API.BaseURL, cfg.API.ClientOptions(log)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create API client: %v\n", err)
		os.Exit(1)
	}
	repo := repository.NewProduct(client)

	products, err := fetch(ctx, repo, *id, *category, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	printProducts(products, cfg.CurrencyUnit())
}

func fetch(ctx context.Context, repo port.ProductRepository, id int, category string, limit int) ([]domain.Product, error) {
	if id > 0 {
		product, err := repo.GetProductByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return []domain.Product{product}, nil
	}

	if category != "" {
		c, err := domain.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		return repo.GetProductsByCategory(ctx, c)
	}

	return repo.GetProducts(ctx, limit)
}

func printProducts(products []domain.Product, unit currency.Unit) {
	fmt.Printf("%-5s %-43s %-18s %12s %6s\n", "ID", "TITLE", "CATEGORY", "PRICE", "STOCK")
	for _, p := range products {
		fmt.Printf("%-5d %-43s %-18s %12s %6d\n",
			p.ID,
			format.Truncate(p.Title, titleLength),
			p.Category,
			format.Price(domain.NewMoney(p.Price, unit)),
			p.Rating.Count,
		)
	}
	fmt.Printf("\n%d product(s)\n", len(products))
}
