// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain/catalogs/company"
	"gstbill/internal/domain/catalogs/party"
	"gstbill/internal/domain/catalogs/product"
	"gstbill/internal/infrastructure/storage/postgres"
	"gstbill/internal/infrastructure/storage/postgres/catalog_repo"
	"gstbill/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	companyService := company.NewService(catalog_repo.NewCompanyRepo(txManager), txManager)
	partyService := party.NewService(catalog_repo.NewPartyRepo(txManager), txManager)
	productService := product.NewService(catalog_repo.NewProductRepo(txManager), txManager)

	comp, err := seedCompany(ctx, companyService, log)
	if err != nil {
		log.Fatalw("failed to seed company", "error", err)
	}

	if err := seedParties(ctx, partyService, comp.ID, log); err != nil {
		log.Fatalw("failed to seed parties", "error", err)
	}

	if err := seedProducts(ctx, productService, comp.ID, log); err != nil {
		log.Fatalw("failed to seed products", "error", err)
	}

	log.Infow("seeding completed successfully", "company_id", comp.ID)
}

func seedCompany(ctx context.Context, svc *company.Service, log *logger.Logger) (*company.Company, error) {
	const code = "CO-001"

	existing, err := svc.GetByCode(ctx, code)
	if err == nil {
		log.Infow("company already exists", "code", code, "id", existing.ID)
		return existing, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	c := company.New(code, "Sharma Electronics")
	c.GSTIN = "27AAPCS1234F1ZV"
	c.AddressLine1 = "Shop 12, MG Road"
	c.City = "Pune"
	c.Pincode = "411001"
	c.Phone = "9822012345"
	c.Email = "billing@sharmaelectronics.in"
	c.BankName = "State Bank of India"
	c.BankAccount = "32451234567"
	c.BankIFSC = "SBIN0001234"

	if err := svc.Create(ctx, c); err != nil {
		return nil, err
	}

	log.Infow("company seeded", "code", code, "id", c.ID)
	return c, nil
}

func seedParties(ctx context.Context, svc *party.Service, companyID id.ID, log *logger.Logger) error {
	parties := []struct {
		code  string
		name  string
		ptype party.PartyType
		gstin string
		phone string
		city  string
	}{
		{"PT-001", "Gupta Traders", party.TypeCustomer, "27AABCG5678K1Z5", "9890011223", "Pune"},
		{"PT-002", "Mehta Distributors", party.TypeSupplier, "24AADCM9012B1Z8", "9727044556", "Ahmedabad"},
		{"PT-003", "Ravi Kumar", party.TypeCustomer, "", "9845077889", "Pune"},
		{"PT-004", "Verma Enterprises", party.TypeBoth, "27AAECV3456D1Z2", "9823099001", "Mumbai"},
	}

	for _, seed := range parties {
		_, err := svc.GetByCode(ctx, seed.code)
		if err == nil {
			continue
		}
		if !apperror.IsNotFound(err) {
			return err
		}

		p := party.New(seed.code, seed.name, seed.ptype)
		p.CompanyID = companyID
		p.GSTIN = seed.gstin
		p.Phone = seed.phone
		p.City = seed.city

		if err := svc.Create(ctx, p); err != nil {
			return fmt.Errorf("create party %s: %w", seed.code, err)
		}
		log.Infow("party seeded", "code", seed.code, "name", seed.name)
	}

	return nil
}

func seedProducts(ctx context.Context, svc *product.Service, companyID id.ID, log *logger.Logger) error {
	products := []struct {
		code         string
		name         string
		hsn          string
		barcode      string
		unit         string
		salesRate    int64
		purchaseRate int64
		taxRate      int64
		openingStock int64
		lowStock     int64
	}{
		{"PR-001", "LED Bulb 9W", "9405", "8901234500011", "PCS", 120, 85, 18, 200, 25},
		{"PR-002", "Extension Board 4 Socket", "8536", "8901234500028", "PCS", 450, 320, 18, 60, 10},
		{"PR-003", "Ceiling Fan 1200mm", "8414", "8901234500035", "PCS", 2200, 1750, 18, 25, 5},
		{"PR-004", "Copper Wire 1.5sqmm", "8544", "", "MTR", 28, 21, 18, 1000, 100},
		{"PR-005", "Inverter Battery 150Ah", "8507", "8901234500059", "PCS", 14500, 12200, 28, 8, 2},
	}

	for _, seed := range products {
		_, err := svc.GetByCode(ctx, seed.code)
		if err == nil {
			continue
		}
		if !apperror.IsNotFound(err) {
			return err
		}

		p := product.New(seed.code, seed.name)
		p.CompanyID = companyID
		p.HSNCode = seed.hsn
		p.Barcode = seed.barcode
		p.Unit = seed.unit
		p.SalesRate = decimal.NewFromInt(seed.salesRate)
		p.PurchaseRate = decimal.NewFromInt(seed.purchaseRate)
		p.MRP = decimal.NewFromInt(seed.salesRate)
		p.TaxRate = decimal.NewFromInt(seed.taxRate)
		p.CGSTRate = decimal.NewFromInt(seed.taxRate).Div(decimal.NewFromInt(2))
		p.SGSTRate = p.CGSTRate
		p.OpeningStock = decimal.NewFromInt(seed.openingStock)
		p.LowStock = decimal.NewFromInt(seed.lowStock)

		if err := svc.Create(ctx, p); err != nil {
			return fmt.Errorf("create product %s: %w", seed.code, err)
		}
		log.Infow("product seeded", "code", seed.code, "name", seed.name)
	}

	return nil
}
