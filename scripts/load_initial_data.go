package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"bilemo-backend/internal/config"
	"bilemo-backend/internal/database"
	"bilemo-backend/internal/database/models"
	applogger "bilemo-backend/internal/logger"
	"bilemo-backend/internal/security"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EnterpriseData matches the seed file entries
type EnterpriseData struct {
	Name string `yaml:"name"`
}

type seedFile struct {
	Enterprises []EnterpriseData `yaml:"enterprises"`
}

const (
	userCount    = 30
	productCount = 30
	seedPassword = "password"
)

// Seeds the database with the initial fixtures: the enterprises listed in
// scripts/data/enterprises.yaml plus generated users and products spread
// randomly across them.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	applogger.Setup(cfg.LogLevel)
	log := applogger.New()

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	})
	if err != nil {
		log.Errorf("failed to initialize database: %v", err)
		os.Exit(1)
	}

	path := "scripts/data/enterprises.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	enterprises, err := loadEnterprises(db, path)
	if err != nil {
		log.Errorf("failed to seed enterprises: %v", err)
		os.Exit(1)
	}
	log.Infof("seeded %d enterprises", len(enterprises))

	if err := loadUsers(db, enterprises, cfg.BcryptCost); err != nil {
		log.Errorf("failed to seed users: %v", err)
		os.Exit(1)
	}
	log.Infof("seeded %d users", userCount)

	if err := loadProducts(db, enterprises); err != nil {
		log.Errorf("failed to seed products: %v", err)
		os.Exit(1)
	}
	log.Infof("seeded %d products", productCount)
}

func loadEnterprises(db *gorm.DB, path string) ([]models.Enterprise, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	enterprises := make([]models.Enterprise, 0, len(file.Enterprises))
	for _, data := range file.Enterprises {
		enterprise := models.Enterprise{
			Name: data.Name,
			UUID: uuid.New(),
		}
		if err := db.Create(&enterprise).Error; err != nil {
			return nil, fmt.Errorf("create enterprise %q: %w", data.Name, err)
		}
		enterprises = append(enterprises, enterprise)
	}
	return enterprises, nil
}

func loadUsers(db *gorm.DB, enterprises []models.Enterprise, bcryptCost int) error {
	hasher := security.NewBcryptHasher(bcryptCost)
	// One hash for all seed users; hashing 30 times is pointless here.
	hashed, err := hasher.Hash(seedPassword)
	if err != nil {
		return err
	}

	for i := 0; i < userCount; i++ {
		user := models.User{
			FirstName:    fmt.Sprintf("firstname %d", i),
			LastName:     fmt.Sprintf("lastname %d", i),
			Email:        fmt.Sprintf("user%d@bilemo.com", i),
			Password:     hashed,
			DateOfBirth:  time.Now().UTC(),
			Available:    true,
			Roles:        models.RoleList{models.RoleUser},
			EnterpriseID: enterprises[rand.Intn(len(enterprises))].ID,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %d: %w", i, err)
		}
	}
	return nil
}

func loadProducts(db *gorm.DB, enterprises []models.Enterprise) error {
	for i := 0; i < productCount; i++ {
		product := models.Product{
			Name:         fmt.Sprintf("Product %d", i),
			Description:  fmt.Sprintf("Description %d", i),
			Price:        float64(rand.Intn(90000)+10000) / 100,
			Available:    true,
			EnterpriseID: enterprises[rand.Intn(len(enterprises))].ID,
		}
		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("create product %d: %w", i, err)
		}
	}
	return nil
}
