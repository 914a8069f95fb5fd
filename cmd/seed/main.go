package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"ecommerce-backend/config"
)

// Seeds the database with demo accounts, a small catalog and one
// delivered order. Safe to run repeatedly: it exits early when any user
// already exists.
func main() {
	cfg := config.Load()

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		log.Fatalf("checking users: %v", err)
	}
	if count > 0 {
		log.Println("database already seeded, nothing to do")
		return
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	defer tx.Rollback()

	// Users
	adminID := uuid.New()
	vendorUserID := uuid.New()
	customerID := uuid.New()
	users := []struct {
		id       uuid.UUID
		name     string
		email    string
		password string
		role     string
	}{
		{adminID, "Admin User", "admin@ecommerce.com", "Admin123!", "Admin"},
		{vendorUserID, "Vendor One", "vendor1@ecommerce.com", "Vendor123!", "Vendor"},
		{customerID, "John Customer", "customer@ecommerce.com", "Customer123!", "Customer"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hashing password: %v", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1,$2,$3,$4,$5)`,
			u.id, u.name, u.email, string(hash), u.role); err != nil {
			log.Fatalf("inserting user %s: %v", u.email, err)
		}
	}

	// Vendors
	techID, fashionID, homeID := uuid.New(), uuid.New(), uuid.New()
	vendors := []struct {
		id           uuid.UUID
		name         string
		email, phone string
	}{
		{techID, "Tech Gadgets Inc", "tech@gadgets.com", "555-0100"},
		{fashionID, "Fashion World", "info@fashionworld.com", "555-0200"},
		{homeID, "Home Essentials", "sales@homeessentials.com", "555-0300"},
	}
	for _, v := range vendors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vendors (id, name, contact_info, email, phone) VALUES ($1,$2,$3,$4,$5)`,
			v.id, v.name, v.email, v.email, v.phone); err != nil {
			log.Fatalf("inserting vendor %s: %v", v.name, err)
		}
	}

	// Categories
	electronicsID, clothingID, homeCategoryID := uuid.New(), uuid.New(), uuid.New()
	categories := []struct {
		id          uuid.UUID
		name, descr string
	}{
		{electronicsID, "Electronics", "Electronic devices and gadgets"},
		{clothingID, "Clothing", "Apparel and accessories"},
		{homeCategoryID, "Home", "Household items and essentials"},
	}
	for _, c := range categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, description) VALUES ($1,$2,$3)`,
			c.id, c.name, c.descr); err != nil {
			log.Fatalf("inserting category %s: %v", c.name, err)
		}
	}

	// Subcategories
	smartphonesID, laptopsID, mensWearID, kitchenID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	subCategories := []struct {
		id          uuid.UUID
		name, descr string
		categoryID  uuid.UUID
	}{
		{smartphonesID, "Smartphones", "Mobile phones and accessories", electronicsID},
		{laptopsID, "Laptops", "Portable computers", electronicsID},
		{mensWearID, "Men's Wear", "Clothing for men", clothingID},
		{kitchenID, "Kitchen", "Kitchen appliances", homeCategoryID},
	}
	for _, sc := range subCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subcategories (id, name, description, category_id) VALUES ($1,$2,$3,$4)`,
			sc.id, sc.name, sc.descr, sc.categoryID); err != nil {
			log.Fatalf("inserting subcategory %s: %v", sc.name, err)
		}
	}

	// Products
	headphonesID := uuid.New()
	tshirtID := uuid.New()
	products := []struct {
		id            uuid.UUID
		name, descr   string
		categoryID    uuid.UUID
		subCategoryID *uuid.UUID
		price         float64
		stock         int
		vendorID      uuid.UUID
	}{
		{headphonesID, "Wireless Headphones", "High-quality wireless headphones with noise cancellation", electronicsID, nil, 89.99, 50, techID},
		{uuid.New(), "Smart Watch", "Feature-rich smartwatch with health tracking", electronicsID, nil, 199.99, 30, techID},
		{uuid.New(), "USB-C Hub", "7-in-1 USB-C hub for laptops", electronicsID, nil, 49.99, 100, techID},
		{tshirtID, "Classic T-Shirt", "100% cotton classic fit t-shirt", clothingID, &mensWearID, 24.99, 200, fashionID},
		{uuid.New(), "Denim Jeans", "Comfortable slim fit denim jeans", clothingID, &mensWearID, 59.99, 75, fashionID},
		{uuid.New(), "Winter Jacket", "Warm insulated winter jacket", clothingID, &mensWearID, 129.99, 25, fashionID},
		{uuid.New(), "Coffee Maker", "Programmable drip coffee maker", homeCategoryID, &kitchenID, 79.99, 40, homeID},
		{uuid.New(), "Kitchen Blender", "High-powered kitchen blender", homeCategoryID, &kitchenID, 69.99, 35, homeID},
		{uuid.New(), "Desk Lamp", "LED desk lamp with adjustable brightness", homeCategoryID, nil, 34.99, 60, homeID},
	}
	for _, p := range products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (id, name, description, category_id, subcategory_id, price, stock, vendor_id)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			p.id, p.name, p.descr, p.categoryID, p.subCategoryID, p.price, p.stock, p.vendorID); err != nil {
			log.Fatalf("inserting product %s: %v", p.name, err)
		}
	}

	// One delivered order for the demo customer.
	orderID := uuid.New()
	total := 89.99 + 2*24.99
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, status, shipping_address, total_amount) VALUES ($1,$2,$3,$4,$5)`,
		orderID, customerID, "Delivered", "123 Main St, City", total); err != nil {
		log.Fatalf("inserting order: %v", err)
	}
	items := []struct {
		productID uuid.UUID
		quantity  int
		price     float64
	}{
		{headphonesID, 1, 89.99},
		{tshirtID, 2, 24.99},
	}
	for _, it := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, price) VALUES ($1,$2,$3,$4,$5)`,
			uuid.New(), orderID, it.productID, it.quantity, it.price); err != nil {
			log.Fatalf("inserting order item: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("commit: %v", err)
	}
	log.Println("seed complete: 3 users, 3 vendors, 3 categories, 4 subcategories, 9 products, 1 order")
}
