package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"investio/internal/models"
	"investio/internal/testutil"
)

func TestCreateInvestment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB Prime", Type: models.ProductTypeCDB,
			YieldType: models.YieldTypePostFixed, Index: models.IndexCDI,
			Rate: "110", Guaranteed: true,
		})

		inv, err := svc.CreateInvestment(client.ID, product.ID, decimal.RequireFromString("5000.00"), nil)
		testutil.AssertNoError(t, err)

		if inv.ID == 0 {
			t.Fatal("expected non-zero investment ID")
		}
		// Snapshot must freeze the product attributes
		if inv.ProductName != "CDB Prime" || inv.ProductType != models.ProductTypeCDB {
			t.Errorf("snapshot mismatch: %s %s", inv.ProductName, inv.ProductType)
		}
		if !inv.Guaranteed || inv.Index != models.IndexCDI {
			t.Errorf("snapshot mismatch: guaranteed=%v index=%s", inv.Guaranteed, inv.Index)
		}
		if inv.Amount.StringFixed(2) != "5000.00" {
			t.Errorf("expected amount 5000.00, got %s", inv.Amount.StringFixed(2))
		}
	})

	t.Run("snapshot_survives_product_change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		productSvc := NewProductService(db)
		svc := NewInvestmentService(db, NewClientService(db), productSvc)
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB Prime", Type: models.ProductTypeCDB, Rate: "10.00", Guaranteed: true,
		})

		inv, err := svc.CreateInvestment(client.ID, product.ID, decimal.RequireFromString("1000"), nil)
		testutil.AssertNoError(t, err)

		_, err = productSvc.UpdateProduct(product.ID, ProductInput{
			Name: "CDB Prime Renamed", Type: models.ProductTypeCDB,
			YieldType: models.YieldTypePreFixed, Index: models.IndexNone,
			Rate: decimal.RequireFromString("12.00"), Guaranteed: false,
		})
		testutil.AssertNoError(t, err)

		reloaded, err := svc.GetInvestmentByID(inv.ID)
		testutil.AssertNoError(t, err)
		if reloaded.ProductName != "CDB Prime" || !reloaded.Guaranteed {
			t.Error("investment snapshot must be immutable after product changes")
		}
		if reloaded.Rate.StringFixed(2) != "10.00" {
			t.Errorf("expected frozen rate 10.00, got %s", reloaded.Rate.StringFixed(2))
		}
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{})

		_, err := svc.CreateInvestment(client.ID, product.ID, decimal.Zero, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{})

		_, err := svc.CreateInvestment(9999, product.ID, decimal.RequireFromString("100"), nil)
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})

	t.Run("unknown_product", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)

		_, err := svc.CreateInvestment(client.ID, 9999, decimal.RequireFromString("100"), nil)
		testutil.AssertAppError(t, err, "PRODUCT_NOT_FOUND")
	})
}

func TestGuaranteeCeiling(t *testing.T) {
	t.Run("blocks_over_bucket_ceiling", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		cdb := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB Prime", Type: models.ProductTypeCDB, Guaranteed: true,
		})

		_, err := svc.CreateInvestment(client.ID, cdb.ID, decimal.RequireFromString("200000.00"), nil)
		testutil.AssertNoError(t, err)

		// 200000 held + 60000 would exceed the 250000 ceiling
		_, err = svc.CreateInvestment(client.ID, cdb.ID, decimal.RequireFromString("60000.00"), nil)
		testutil.AssertAppError(t, err, "GUARANTEE_LIMIT_EXCEEDED")

		// Topping up to exactly the ceiling is allowed
		_, err = svc.CreateInvestment(client.ID, cdb.ID, decimal.RequireFromString("50000.00"), nil)
		testutil.AssertNoError(t, err)
	})

	t.Run("letters_share_one_bucket", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		lci := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "LCI Habita", Type: models.ProductTypeLCI, Guaranteed: true,
		})
		lca := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "LCA Agro", Type: models.ProductTypeLCA, Guaranteed: true,
		})

		_, err := svc.CreateInvestment(client.ID, lci.ID, decimal.RequireFromString("150000.00"), nil)
		testutil.AssertNoError(t, err)

		// LCI exposure counts against the LCA contribution
		_, err = svc.CreateInvestment(client.ID, lca.ID, decimal.RequireFromString("150000.00"), nil)
		testutil.AssertAppError(t, err, "GUARANTEE_LIMIT_EXCEEDED")
	})

	t.Run("buckets_are_independent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		cdb := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB Prime", Type: models.ProductTypeCDB, Guaranteed: true,
		})
		savings := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "Savings Plus", Type: models.ProductTypeSavings, Guaranteed: true,
		})

		_, err := svc.CreateInvestment(client.ID, cdb.ID, decimal.RequireFromString("250000.00"), nil)
		testutil.AssertNoError(t, err)

		// General bucket exposure must not consume the savings ceiling
		_, err = svc.CreateInvestment(client.ID, savings.ID, decimal.RequireFromString("250000.00"), nil)
		testutil.AssertNoError(t, err)
	})

	t.Run("unlisted_types_unlimited", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		stock := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "Tech Stock", Type: models.ProductTypeStock,
		})

		_, err := svc.CreateInvestment(client.ID, stock.ID, decimal.RequireFromString("10000000.00"), nil)
		testutil.AssertNoError(t, err)
	})
}

func TestRedeem(t *testing.T) {
	t.Run("pays_net_yield_after_taxes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB Prime", Type: models.ProductTypeCDB, Rate: "10.00", Guaranteed: true,
		})

		at := time.Now()
		invested := at.Add(-400 * 24 * time.Hour)
		inv := testutil.CreateTestInvestment(t, db, client.ID, product, "1000.00", invested)

		statement, err := svc.Redeem(inv.ID, at)
		testutil.AssertNoError(t, err)

		if statement.HoldingDays != 400 {
			t.Fatalf("expected 400 holding days, got %d", statement.HoldingDays)
		}
		// 1000 * 10% * 400/365 = 109.59
		if statement.GrossYield.StringFixed(2) != "109.59" {
			t.Errorf("expected gross yield 109.59, got %s", statement.GrossYield.StringFixed(2))
		}
		// 17.5% bracket: 109.59 * 17.5% = 19.18
		if statement.IncomeTax.StringFixed(2) != "19.18" {
			t.Errorf("expected income tax 19.18, got %s", statement.IncomeTax.StringFixed(2))
		}
		if statement.TransactionTax.StringFixed(2) != "0.00" {
			t.Errorf("expected no transaction tax, got %s", statement.TransactionTax.StringFixed(2))
		}
		if statement.NetYield.StringFixed(2) != "90.41" {
			t.Errorf("expected net yield 90.41, got %s", statement.NetYield.StringFixed(2))
		}
		if statement.TotalAmount.StringFixed(2) != "1090.41" {
			t.Errorf("expected total 1090.41, got %s", statement.TotalAmount.StringFixed(2))
		}
		if statement.Investment.RedeemedAt == nil {
			t.Error("expected investment to be marked redeemed")
		}
	})

	t.Run("no_liquidity_product", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "Locked Debenture", Type: models.ProductTypeDebenture,
			LiquidityDays: models.LiquidityNever,
		})
		inv := testutil.CreateTestInvestment(t, db, client.ID, product, "1000.00",
			time.Now().Add(-1000*24*time.Hour))

		_, err := svc.Redeem(inv.ID, time.Now())
		testutil.AssertAppError(t, err, "NOT_REDEEMABLE")
	})

	t.Run("before_minimum_holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB 90", Type: models.ProductTypeCDB, MinimumHoldingDays: 90, Guaranteed: true,
		})
		inv := testutil.CreateTestInvestment(t, db, client.ID, product, "1000.00",
			time.Now().Add(-10*24*time.Hour))

		_, err := svc.Redeem(inv.ID, time.Now())
		testutil.AssertAppError(t, err, "NOT_REDEEMABLE")
	})

	t.Run("already_redeemed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB Prime", Type: models.ProductTypeCDB, Guaranteed: true,
		})
		inv := testutil.CreateTestInvestment(t, db, client.ID, product, "1000.00",
			time.Now().Add(-100*24*time.Hour))

		_, err := svc.Redeem(inv.ID, time.Now())
		testutil.AssertNoError(t, err)

		_, err = svc.Redeem(inv.ID, time.Now())
		testutil.AssertAppError(t, err, "ALREADY_REDEEMED")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))

		_, err := svc.Redeem(9999, time.Now())
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestGetClientInvestments(t *testing.T) {
	t.Run("paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))
		client := testutil.CreateTestClient(t, db)
		product := testutil.CreateTestProduct(t, db, testutil.ProductSpec{
			Name: "CDB Prime", Type: models.ProductTypeCDB, Guaranteed: true,
		})
		for i := 0; i < 3; i++ {
			testutil.CreateTestInvestment(t, db, client.ID, product, "1000.00",
				time.Now().Add(-time.Duration(i+1)*24*time.Hour))
		}

		page, err := svc.GetClientInvestments(client.ID, pageRequest(1, 2))
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 || len(page.Data) != 2 {
			t.Errorf("expected 3 total / 2 on page, got %d / %d", page.TotalItems, len(page.Data))
		}
		// Most recent first
		if !page.Data[0].InvestedAt.After(page.Data[1].InvestedAt) {
			t.Error("expected investments ordered by invested_at descending")
		}
	})

	t.Run("unknown_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, NewClientService(db), NewProductService(db))

		_, err := svc.GetClientInvestments(9999, pageRequest(1, 10))
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}
