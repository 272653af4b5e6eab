package db

import (
	"context"
	"fmt"
	"log"

	"wave-estimates-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedEstimate struct {
	number, date, validUntil string
	status, kind             string
	customer                 string
	lines                    []models.LineItem
}

var (
	seedLaptop = models.LineItem{Name: "HP Laptop", Description: "RTX 2050", Price: 450}
	seedPen    = models.LineItem{Name: "Pen", Description: "Blue Pen", Price: 10}
)

func withQty(li models.LineItem, qty int) models.LineItem {
	li.Quantity = qty
	return li
}

// Seed loads the demo customers, catalog and estimates. It does nothing once
// any customer exists, so it is safe to call on every start.
func Seed(ctx context.Context, gdb *gorm.DB) (bool, error) {
	var count int64
	if err := gdb.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers := []models.Customer{
			{Name: "Person"},
			{Name: "Shenali Hirushika", Email: "shenu123@gmail.com", Phone: "0722640409"},
			{Name: "Yomal Thushara"},
			{Name: "Amal Perera"},
			{Name: "Nimal Silva"},
			{Name: "Sunil Kasun"},
			{Name: "Kamal Pathirana"},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		byName := make(map[string]uint, len(customers))
		for _, c := range customers {
			byName[c.Name] = c.ID
		}

		items := []models.Item{
			{Name: seedLaptop.Name, Description: seedLaptop.Description, Price: seedLaptop.Price},
			{Name: seedPen.Name, Description: seedPen.Description, Price: seedPen.Price},
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("seed items: %w", err)
		}

		estimates := []seedEstimate{
			{"45303", "2026-02-26", "2026-03-28", models.StatusSaved, models.TypeActive, "Yomal Thushara",
				[]models.LineItem{withQty(seedLaptop, 1)}},
			{"45304", "2026-02-25", "2026-03-27", models.StatusDraft, models.TypeDraft, "Amal Perera",
				[]models.LineItem{withQty(seedLaptop, 2), withQty(seedPen, 30)}},
			{"45305", "2026-02-24", "2026-03-26", models.StatusDraft, models.TypeDraft, "Nimal Silva",
				[]models.LineItem{withQty(seedLaptop, 1), withQty(seedPen, 40)}},
			{"45306", "2026-02-23", "2026-03-25", models.StatusDraft, models.TypeDraft, "Sunil Kasun",
				[]models.LineItem{withQty(seedLaptop, 4), withQty(seedPen, 30)}},
			{"45307", "2026-02-22", "2026-03-24", models.StatusSaved, models.TypeActive, "Kamal Pathirana",
				[]models.LineItem{withQty(seedPen, 32)}},
		}
		for _, se := range estimates {
			est := models.Estimate{
				Number:     se.number,
				Date:       se.date,
				ValidUntil: se.validUntil,
				Status:     se.status,
				Type:       se.kind,
			}
			if id, ok := byName[se.customer]; ok {
				est.CustomerID = &id
			}
			if err := tx.Omit(clause.Associations).Create(&est).Error; err != nil {
				return fmt.Errorf("seed estimate %s: %w", se.number, err)
			}
			for i := range se.lines {
				se.lines[i].EstimateID = est.ID
			}
			if err := tx.Create(&se.lines).Error; err != nil {
				return fmt.Errorf("seed line items %s: %w", se.number, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Println("[db] seeded demo customers, items and estimates")
	return true, nil
}
