// Package seed loads a small demo dataset so a fresh instance is usable
// straight away.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stockpilot-erp/stockpilot-erp/internal/activity"
	"github.com/stockpilot-erp/stockpilot-erp/internal/categories"
	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/locations"
	"github.com/stockpilot-erp/stockpilot-erp/internal/products"
	"github.com/stockpilot-erp/stockpilot-erp/internal/suppliers"
	"github.com/stockpilot-erp/stockpilot-erp/internal/users"
)

// Services collects everything the seeder writes through. Going through the
// services keeps ids, timestamps and defaults consistent with the API paths.
type Services struct {
	Users      *users.Service
	Locations  *locations.Service
	Categories *categories.Service
	Products   *products.Service
	Inventory  *inventory.Service
	Suppliers  *suppliers.Service
	Activity   *activity.Service
}

// DemoData populates the stores with the default demo dataset.
func DemoData(ctx context.Context, logger *slog.Logger, svc Services) error {
	if _, err := svc.Users.Create(ctx, users.CreateUserRequest{
		Username: "admin",
		Password: "admin123",
		FullName: "Administrator",
		Role:     "admin",
	}); err != nil {
		return fmt.Errorf("seed: admin user: %w", err)
	}

	mumbai, err := svc.Locations.Create(ctx, locations.CreateLocationRequest{
		Name: "Mumbai Store", Address: "123 Main Street", City: "Mumbai",
		State: "Maharashtra", Pincode: "400001",
	})
	if err != nil {
		return fmt.Errorf("seed: locations: %w", err)
	}
	delhi, err := svc.Locations.Create(ctx, locations.CreateLocationRequest{
		Name: "Delhi Store", Address: "456 Market Road", City: "Delhi",
		State: "Delhi", Pincode: "110001",
	})
	if err != nil {
		return fmt.Errorf("seed: locations: %w", err)
	}
	bangalore, err := svc.Locations.Create(ctx, locations.CreateLocationRequest{
		Name: "Bangalore Store", Address: "789 Tech Park", City: "Bangalore",
		State: "Karnataka", Pincode: "560001",
	})
	if err != nil {
		return fmt.Errorf("seed: locations: %w", err)
	}

	electronics, err := svc.Categories.Create(ctx, categories.CreateCategoryRequest{
		Name: "Electronics", Description: ptr("Electronic devices and accessories"),
	})
	if err != nil {
		return fmt.Errorf("seed: categories: %w", err)
	}
	clothing, err := svc.Categories.Create(ctx, categories.CreateCategoryRequest{
		Name: "Clothing", Description: ptr("Apparel and fashion items"),
	})
	if err != nil {
		return fmt.Errorf("seed: categories: %w", err)
	}
	if _, err := svc.Categories.Create(ctx, categories.CreateCategoryRequest{
		Name: "Home Goods", Description: ptr("Items for home and living"),
	}); err != nil {
		return fmt.Errorf("seed: categories: %w", err)
	}

	catalogue := []products.CreateProductRequest{
		{Name: `Samsung 43" Smart TV`, Sku: "SM-TV43-4K", Description: ptr("43-inch 4K Smart LED TV"),
			CategoryID: electronics.ID, PurchasePrice: 32000, SellingPrice: 36999, GstRate: 18,
			Hsn: ptr("8528"), MinStockLevel: 5},
		{Name: "iPhone 13 (128GB)", Sku: "IP-13-128-BLK", Description: ptr("Apple iPhone 13 with 128GB storage"),
			CategoryID: electronics.ID, PurchasePrice: 65000, SellingPrice: 79900, GstRate: 18,
			Hsn: ptr("8517"), MinStockLevel: 8},
		{Name: "Men's Cotton Shirt", Sku: "MCS-BLU-L", Description: ptr("Blue cotton formal shirt for men"),
			CategoryID: clothing.ID, PurchasePrice: 800, SellingPrice: 1299, GstRate: 5,
			Hsn: ptr("6205"), MinStockLevel: 20},
		{Name: "Wireless Mouse", Sku: "WM-BLK-001", Description: ptr("Bluetooth wireless mouse"),
			CategoryID: electronics.ID, PurchasePrice: 600, SellingPrice: 899, GstRate: 18,
			Hsn: ptr("8471"), MinStockLevel: 10},
		{Name: "Bluetooth Headphones", Sku: "BH-RED-003", Description: ptr("Wireless Bluetooth headphones"),
			CategoryID: electronics.ID, PurchasePrice: 1000, SellingPrice: 1499, GstRate: 18,
			Hsn: ptr("8518"), MinStockLevel: 8},
		{Name: "Samsung Galaxy A52", Sku: "SM-A52-BLK", Description: ptr("Samsung Galaxy A52 smartphone"),
			CategoryID: electronics.ID, PurchasePrice: 22000, SellingPrice: 25999, GstRate: 18,
			Hsn: ptr("8517"), MinStockLevel: 10},
		{Name: "Cotton T-Shirt (XL)", Sku: "CT-XL-WHT", Description: ptr("White cotton t-shirt in XL size"),
			CategoryID: clothing.ID, PurchasePrice: 300, SellingPrice: 599, GstRate: 5,
			Hsn: ptr("6109"), MinStockLevel: 15},
		{Name: "Wireless Headphones", Sku: "WH-BT-BLK", Description: ptr("Wireless over-ear headphones"),
			CategoryID: electronics.ID, PurchasePrice: 1800, SellingPrice: 2499, GstRate: 18,
			Hsn: ptr("8518"), MinStockLevel: 8},
	}
	bySku := make(map[string]products.Product, len(catalogue))
	for _, req := range catalogue {
		product, err := svc.Products.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed: product %s: %w", req.Sku, err)
		}
		bySku[product.Sku] = product
	}

	stock := []inventory.CreateItemRequest{
		{ProductID: bySku["SM-TV43-4K"].ID, LocationID: mumbai.ID, Quantity: 12},
		{ProductID: bySku["IP-13-128-BLK"].ID, LocationID: mumbai.ID, Quantity: 15},
		{ProductID: bySku["MCS-BLU-L"].ID, LocationID: mumbai.ID, Quantity: 45},
		{ProductID: bySku["SM-A52-BLK"].ID, LocationID: mumbai.ID, Quantity: 3},
		{ProductID: bySku["CT-XL-WHT"].ID, LocationID: mumbai.ID, Quantity: 8},
		{ProductID: bySku["WH-BT-BLK"].ID, LocationID: mumbai.ID, Quantity: 2},
		{ProductID: bySku["SM-TV43-4K"].ID, LocationID: delhi.ID, Quantity: 8},
		{ProductID: bySku["IP-13-128-BLK"].ID, LocationID: delhi.ID, Quantity: 10},
		{ProductID: bySku["MCS-BLU-L"].ID, LocationID: bangalore.ID, Quantity: 25},
	}
	for _, req := range stock {
		if _, err := svc.Inventory.Create(ctx, req); err != nil {
			return fmt.Errorf("seed: inventory: %w", err)
		}
	}

	supplierRows := []suppliers.CreateSupplierRequest{
		{Name: "Electro Supplies Ltd.", ContactPerson: ptr("Amit Sharma"),
			Email: ptr("amit@electrosupplies.com"), Phone: "9876543210",
			Address: ptr("Plot 45, Industrial Area, Mumbai"), GstIn: ptr("27AABCS1429B1Z1")},
		{Name: "Fashion Wholesale Co.", ContactPerson: ptr("Priya Patel"),
			Email: ptr("priya@fashionwholesale.com"), Phone: "8765432109",
			Address: ptr("22 Commercial Street, Delhi"), GstIn: ptr("07AADCS2941C1Z2")},
	}
	for _, req := range supplierRows {
		if _, err := svc.Suppliers.Create(ctx, req); err != nil {
			return fmt.Errorf("seed: supplier %s: %w", req.Name, err)
		}
	}

	logs := []activity.CreateEntryRequest{
		{UserID: 1, Action: activity.ActionStockReceived, Entity: "product", EntityID: ptr(int64(3)),
			Details: mustDetails(activity.StockReceivedDetails{Quantity: 24, ProductName: "LED Bulbs"})},
		{UserID: 1, Action: activity.ActionPriceUpdate, Entity: "product", EntityID: ptr(int64(1)),
			Details: mustDetails(activity.PriceUpdateDetails{OldPrice: 35999, NewPrice: 36999, ProductName: "Samsung TVs"})},
		{UserID: 1, Action: activity.ActionOrderPlaced, Entity: "supplier", EntityID: ptr(int64(1)),
			Details: mustDetails(activity.OrderPlacedDetails{PoNumber: "23457", SupplierName: "Electro Supplies Ltd."})},
	}
	for _, req := range logs {
		if _, err := svc.Activity.Append(ctx, req); err != nil {
			return fmt.Errorf("seed: activity: %w", err)
		}
	}

	logger.Info("demo data seeded",
		slog.Int("products", len(catalogue)),
		slog.Int("stockRows", len(stock)),
		slog.Int("suppliers", len(supplierRows)))
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func mustDetails(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
