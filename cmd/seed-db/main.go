// Command seed-db provisions a database for local development: it runs the
// migrations, loads the embedded product catalog, registers an admin API key,
// and optionally generates demo customers, orders, and feedback.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/db"
	"github.com/harvesthub/storefront/internal/domain/auth"
	"github.com/harvesthub/storefront/internal/domain/catalog"
	"github.com/harvesthub/storefront/internal/fixtures"
	"github.com/harvesthub/storefront/internal/repository"
)

type productJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Organic     bool            `json:"organic"`
	Local       bool            `json:"local"`
	InSeason    bool            `json:"inSeason"`
	Featured    bool            `json:"featured"`
}

func main() {
	var (
		databaseURL  string
		apiKey       string
		apiKeyPepper string
		withFixtures bool
		seed         uint64
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&apiKey, "api-key", "", "admin API key to seed (or HARVEST_SEED_API_KEY env)")
	flag.StringVar(&apiKeyPepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or HARVEST_API_KEY_PEPPER env)")
	flag.BoolVar(&withFixtures, "fixtures", false, "generate demo customers, orders, and feedback")
	flag.Uint64Var(&seed, "seed", 42, "random seed for fixture generation")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if apiKey == "" {
		apiKey = os.Getenv("HARVEST_SEED_API_KEY")
	}
	if apiKey == "" {
		slog.Error("API key is required: set --api-key or HARVEST_SEED_API_KEY")
		os.Exit(1)
	}
	if apiKeyPepper == "" {
		apiKeyPepper = os.Getenv("HARVEST_API_KEY_PEPPER")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, apiKey, apiKeyPepper, withFixtures, seed); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, apiKey, pepper string, withFixtures bool, seed uint64) error {
	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	products, err := seedProducts(ctx, pool)
	if err != nil {
		return errors.Wrap(err, "seed products")
	}

	if err := seedAPIKey(ctx, pool, apiKey, pepper); err != nil {
		return errors.Wrap(err, "seed api key")
	}

	if withFixtures {
		if err := seedFixtures(ctx, pool, products, seed); err != nil {
			return errors.Wrap(err, "seed fixtures")
		}
	}

	return nil
}

const upsertProductSQL = `INSERT INTO products (id, name, category, price, unit, image, description, organic, local, in_season, featured)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name, category = EXCLUDED.category, price = EXCLUDED.price,
		unit = EXCLUDED.unit, image = EXCLUDED.image, description = EXCLUDED.description,
		organic = EXCLUDED.organic, local = EXCLUDED.local,
		in_season = EXCLUDED.in_season, featured = EXCLUDED.featured`

func seedProducts(ctx context.Context, pool *pgxpool.Pool) ([]catalog.Product, error) {
	var raw []productJSON
	if err := json.Unmarshal(db.SeedProducts, &raw); err != nil {
		return nil, errors.Wrap(err, "parse embedded products")
	}

	slog.Info("upserting products", slog.Int("count", len(raw)))

	products := make([]catalog.Product, 0, len(raw))
	for _, p := range raw {
		if _, err := pool.Exec(ctx, upsertProductSQL,
			p.ID, p.Name, p.Category, p.Price, p.Unit, p.Image, p.Description,
			p.Organic, p.Local, p.InSeason, p.Featured,
		); err != nil {
			return nil, errors.Wrapf(err, "upsert product %s", p.ID)
		}
		products = append(products, catalog.Product{
			ID:          p.ID,
			Name:        p.Name,
			Category:    catalog.Category(p.Category),
			Price:       p.Price,
			Unit:        p.Unit,
			Image:       p.Image,
			Description: p.Description,
			Organic:     p.Organic,
			Local:       p.Local,
			InSeason:    p.InSeason,
			Featured:    p.Featured,
		})
	}

	return products, nil
}

func seedAPIKey(ctx context.Context, pool *pgxpool.Pool, apiKey, pepper string) error {
	slog.Info("seeding admin API key")

	repo := repository.NewAPIKeyRepository(pool)
	return repo.Upsert(ctx, &auth.APIKeyInfo{
		ID:      "default",
		KeyHash: auth.HashKey(pepper, apiKey),
		Name:    "Default admin key",
		Scopes:  []string{auth.ScopeAdmin},
	})
}

const (
	insertCustomerSQL = `INSERT INTO customers (id, name, email, phone, address, date_joined, orders_count, total_spent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	insertOrderSQL = `INSERT INTO orders (id, number, customer_name, email, phone, shipping_address,
		payment_method, items, subtotal, tax, shipping, total, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING`

	insertFeedbackSQL = `INSERT INTO feedback (id, customer_name, email, rating, message, order_ids, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`
)

func seedFixtures(ctx context.Context, pool *pgxpool.Pool, products []catalog.Product, seed uint64) error {
	ds := fixtures.New(seed).Generate(products)

	slog.Info("inserting fixtures",
		slog.Int("customers", len(ds.Customers)),
		slog.Int("orders", len(ds.Orders)),
		slog.Int("feedback", len(ds.Feedback)),
	)

	for _, c := range ds.Customers {
		if _, err := pool.Exec(ctx, insertCustomerSQL,
			c.ID, c.Name, c.Email, c.Phone, c.Address, c.JoinedAt, c.OrdersCount, c.TotalSpent,
		); err != nil {
			return errors.Wrapf(err, "insert customer %s", c.ID)
		}
	}

	for _, o := range ds.Orders {
		itemsJSON, err := json.Marshal(o.Items)
		if err != nil {
			return errors.Wrapf(err, "marshal items for order %s", o.ID)
		}
		if _, err := pool.Exec(ctx, insertOrderSQL,
			o.ID, o.Number, o.CustomerName, o.Email, o.Phone, o.ShippingAddress,
			string(o.PaymentMethod), itemsJSON, o.Subtotal, o.Tax, o.Shipping,
			o.Total, o.Notes, string(o.Status), o.CreatedAt,
		); err != nil {
			return errors.Wrapf(err, "insert order %s", o.ID)
		}
	}

	for _, f := range ds.Feedback {
		if _, err := pool.Exec(ctx, insertFeedbackSQL,
			f.ID, f.CustomerName, f.Email, f.Rating, f.Message, f.OrderIDs,
			string(f.Status), f.CreatedAt,
		); err != nil {
			return errors.Wrapf(err, "insert feedback %s", f.ID)
		}
	}

	return nil
}
