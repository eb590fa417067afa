package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"restaurantapi/internal/config"
	"restaurantapi/internal/database"
	"restaurantapi/internal/domain"
	"restaurantapi/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// children first, foreign keys point up
	log.Println("Cleaning old data...")
	for _, table := range []string{"orders", "products", "product_categories", "restaurants", "restaurant_categories", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clean %s: %v", table, err)
		}
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	categories := repository.NewCategoryRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")
	owners := createUsers(ctx, users, domain.RoleOwner, "owner123", []string{"owner1@restaurants.test", "owner2@restaurants.test"})
	customers := createUsers(ctx, users, domain.RoleCustomer, "customer123", []string{"customer1@restaurants.test", "customer2@restaurants.test", "customer3@restaurants.test"})

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")
	restaurantCategories := make([]domain.RestaurantCategory, 0, 4)
	for _, name := range []string{"Spanish", "Italian", "Fast food", "Vegan"} {
		c := domain.RestaurantCategory{Name: name}
		must(categories.CreateRestaurantCategory(ctx, &c))
		restaurantCategories = append(restaurantCategories, c)
	}

	productCategories := make([]domain.ProductCategory, 0, 4)
	for _, name := range []string{"Starters", "Main courses", "Desserts", "Drinks"} {
		c := domain.ProductCategory{Name: name}
		must(categories.CreateProductCategory(ctx, &c))
		productCategories = append(productCategories, c)
	}

	// ================== RESTAURANTS ==================
	log.Println("Creating restaurants...")
	statuses := []domain.RestaurantStatus{
		domain.RestaurantOnline,
		domain.RestaurantOnline,
		domain.RestaurantOffline,
		domain.RestaurantTemporarilyClosed,
	}
	restaurants := make([]domain.Restaurant, 0, 4)
	for i := 0; i < 4; i++ {
		r := domain.Restaurant{
			Name:                 fmt.Sprintf("Restaurant %d", i+1),
			Description:          "Home cooking with local produce",
			Address:              fmt.Sprintf("Calle Mayor %d", i+10),
			PostalCode:           fmt.Sprintf("290%02d", i+1),
			ShippingCosts:        decimal.NewFromFloat(1.5 + float64(i)),
			Email:                fmt.Sprintf("hello%d@restaurants.test", i+1),
			Phone:                fmt.Sprintf("+3495212340%d", i),
			Status:               statuses[i],
			RestaurantCategoryID: restaurantCategories[i%len(restaurantCategories)].ID,
			UserID:               owners[i%len(owners)].ID,
		}
		must(restaurantRepo.Create(ctx, &r))
		restaurants = append(restaurants, r)
	}

	// ================== PRODUCTS ==================
	log.Println("Creating products...")
	for _, r := range restaurants {
		for j := 0; j < 5; j++ {
			p := domain.Product{
				Name:              fmt.Sprintf("Dish %d", j+1),
				Description:       "Chef's recommendation",
				Price:             decimal.NewFromInt(int64(5 + rand.Intn(20))),
				Order:             j + 1,
				Availability:      j != 4,
				RestaurantID:      r.ID,
				ProductCategoryID: productCategories[j%len(productCategories)].ID,
			}
			must(productRepo.Create(ctx, &p))
		}
	}

	// ================== ORDERS ==================
	log.Println("Creating orders...")
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hour := func(t time.Time, h int) *time.Time {
		v := t.Add(time.Duration(h) * time.Hour)
		return &v
	}

	for _, r := range restaurants {
		for i := 0; i < 6; i++ {
			created := today.Add(-time.Duration(i*6) * time.Hour)
			o := domain.Order{
				CreatedAt:     created,
				Price:         decimal.NewFromInt(int64(15 + rand.Intn(40))),
				Address:       fmt.Sprintf("Avenida del Sol %d", rand.Intn(200)+1),
				ShippingCosts: r.ShippingCosts,
				RestaurantID:  r.ID,
				UserID:        customers[i%len(customers)].ID,
			}
			// pending, in process, sent, then delivered
			switch {
			case i >= 3:
				o.StartedAt, o.SentAt, o.DeliveredAt = hour(created, 1), hour(created, 2), hour(created, 3)
			case i == 2:
				o.StartedAt, o.SentAt = hour(created, 1), hour(created, 2)
			case i == 1:
				o.StartedAt = hour(created, 1)
			}
			must(orderRepo.Create(ctx, &o))
		}
	}

	log.Println("Seed completed!")
	log.Println("Owners: owner1@restaurants.test, owner2@restaurants.test / owner123")
	log.Println("Customers: customer1@restaurants.test ... customer3@restaurants.test / customer123")
}

func createUsers(ctx context.Context, users *repository.UserRepository, role domain.UserRole, password string, emails []string) []domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	must(err)

	created := make([]domain.User, 0, len(emails))
	for i, email := range emails {
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			FirstName:    fmt.Sprintf("%s %d", role, i+1),
		}
		must(users.Create(ctx, &u))
		created = append(created, u)
	}
	return created
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
