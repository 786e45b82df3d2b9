package main

import (
	"context"
	"errors"
	"log"

	"github.com/greencityconnect/waste-backend/internal/config"
	"github.com/greencityconnect/waste-backend/internal/models"
	mongorepo "github.com/greencityconnect/waste-backend/internal/repositories/mongodb"
	"github.com/greencityconnect/waste-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the plan catalog and a default admin account. Safe to run more than
// once, existing documents are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGODB_DATABASE", "greencity-connect")

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	ctx := context.Background()

	if err := seedPlans(ctx, db); err != nil {
		log.Fatalf("Failed to seed plans: %v", err)
	}
	if err := seedAdmin(ctx, db); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	log.Println("Seeding complete")
}

func seedPlans(ctx context.Context, db *mongo.Database) error {
	planRepo := mongorepo.NewPlanRepository(db)

	plans := []*models.SubscriptionPlan{
		{ID: "plan_basic", Name: "Basic Household", PricePerMonth: 75, BinSize: "Small", Frequency: "Weekly"},
		{ID: "plan_standard", Name: "Standard Household", PricePerMonth: 120, BinSize: "Medium", Frequency: "Weekly"},
		{ID: "plan_large", Name: "Large Household", PricePerMonth: 180, BinSize: "Large", Frequency: "Weekly"},
		{ID: "plan_biweekly", Name: "Bi-Weekly Saver", PricePerMonth: 45, BinSize: "Small", Frequency: "Bi-Weekly"},
	}

	for _, plan := range plans {
		_, err := planRepo.FindByID(ctx, plan.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		if err := planRepo.Create(ctx, plan); err != nil {
			return err
		}
		log.Printf("Created plan %s", plan.ID)
	}
	return nil
}

func seedAdmin(ctx context.Context, db *mongo.Database) error {
	adminRepo := mongorepo.NewAdminRepository(db)

	mobile := config.GetEnv("SEED_ADMIN_MOBILE", "9999999999")
	password := config.GetEnv("SEED_ADMIN_PASSWORD", "changeme")

	_, err := adminRepo.FindByMobile(ctx, mobile)
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Name:     config.GetEnv("SEED_ADMIN_NAME", "City Administrator"),
		Mobile:   mobile,
		Password: string(hashed),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin account for %s", mobile)
	return nil
}
