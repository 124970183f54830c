package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a small demo catalog: categories, attributes, options,
// products and variants. Safe to re-run; it skips seeding when any
// category already exists.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NEXOP CATALOG - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	db := config.CatalogGorm

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Attribute{},
		&models.AttributeOption{},
		&models.Product{},
		&models.Variant{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	var existing int64
	if err := db.Model(&models.Category{}).Count(&existing).Error; err != nil {
		log.Fatalf("❌ Database error: %v", err)
	}
	if existing > 0 {
		fmt.Printf("Catalog already seeded (%d categories), nothing to do\n", existing)
		return
	}

	if err := db.Transaction(seedCatalog); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	fmt.Println()
	fmt.Println("✅ Demo catalog seeded")
}

func seedCatalog(tx *gorm.DB) error {
	phones := models.Category{Name: "Phone", Slug: "phones"}
	shoes := models.Category{Name: "Shoe", Slug: "shoes"}
	if err := tx.Create(&phones).Error; err != nil {
		return err
	}
	if err := tx.Create(&shoes).Error; err != nil {
		return err
	}
	log.Println("✓ Categories created")

	color := models.Attribute{Name: "Color", CategoryID: phones.ID, Filterable: true, DisplayOrder: 1}
	storage := models.Attribute{Name: "Storage", CategoryID: phones.ID, Filterable: true, DisplayOrder: 2}
	size := models.Attribute{Name: "Size", CategoryID: shoes.ID, Filterable: true, DisplayOrder: 1}
	for _, attribute := range []*models.Attribute{&color, &storage, &size} {
		if err := tx.Create(attribute).Error; err != nil {
			return err
		}
	}

	options := map[string]*models.AttributeOption{}
	for _, spec := range []struct {
		attr  *models.Attribute
		value string
	}{
		{&color, "Gray"},
		{&color, "Space Gray"},
		{&color, "Midnight Blue"},
		{&storage, "128GB"},
		{&storage, "256GB"},
		{&size, "42"},
		{&size, "43"},
	} {
		option := &models.AttributeOption{Value: spec.value, AttributeID: spec.attr.ID, Active: true}
		if err := tx.Create(option).Error; err != nil {
			return err
		}
		options[spec.value] = option
	}
	log.Println("✓ Attributes and options created")

	phone := models.Product{
		Name:       "Aura X5",
		Slug:       "aura-x5",
		CategoryID: phones.ID,
		BasePrice:  499,
		Status:     "Active",
		Media:      models.MediaList{{URL: "https://cdn.nexop.dev/aura-x5.jpg"}},
	}
	runner := models.Product{
		Name:       "Cloudstep Runner",
		Slug:       "cloudstep-runner",
		CategoryID: shoes.ID,
		BasePrice:  89,
		Status:     "Active",
		Media:      models.MediaList{{URL: "https://cdn.nexop.dev/cloudstep.jpg"}},
	}
	if err := tx.Create(&phone).Error; err != nil {
		return err
	}
	if err := tx.Create(&runner).Error; err != nil {
		return err
	}

	variants := []models.Variant{
		{
			Name: "Aura X5 Space Gray 256GB", Slug: "aura-x5-space-gray-256gb",
			SKU: "AX5-SG-256", Price: 549, Stock: 12, Status: models.VariantStatusActive,
			ProductID: phone.ID,
			Assignments: models.AssignmentList{
				{AttributeID: color.ID, OptionID: options["Space Gray"].ID},
				{AttributeID: storage.ID, OptionID: options["256GB"].ID},
			},
		},
		{
			Name: "Aura X5 Gray 128GB", Slug: "aura-x5-gray-128gb",
			SKU: "AX5-GR-128", Price: 499, Stock: 30, Status: models.VariantStatusActive,
			ProductID: phone.ID,
			Assignments: models.AssignmentList{
				{AttributeID: color.ID, OptionID: options["Gray"].ID},
				{AttributeID: storage.ID, OptionID: options["128GB"].ID},
			},
		},
		{
			Name: "Cloudstep Runner 42", Slug: "cloudstep-runner-42",
			SKU: "CSR-42", Price: 89, Stock: 8, Status: models.VariantStatusActive,
			ProductID: runner.ID,
			Assignments: models.AssignmentList{
				{AttributeID: size.ID, OptionID: options["42"].ID},
			},
		},
		{
			Name: "Cloudstep Runner 43", Slug: "cloudstep-runner-43",
			SKU: "CSR-43", Price: 89, Stock: 0, Status: models.VariantStatusOutOfStock,
			ProductID: runner.ID,
			Assignments: models.AssignmentList{
				{AttributeID: size.ID, OptionID: options["43"].ID},
			},
		},
	}
	for i := range variants {
		if err := tx.Create(&variants[i]).Error; err != nil {
			return err
		}
	}
	log.Println("✓ Products and variants created")

	return nil
}
