package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/rmendes/imobi/internal/br"
	"github.com/rmendes/imobi/internal/cli/prompt"
	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/models"
)

var fixEncodingYes bool

var fixEncodingCmd = &cobra.Command{
	Use:   "fix-encoding",
	Short: "Repair UTF-8 mojibake in stored text fields",
	Long: `Repair text fields that were double-encoded during past imports
(Latin-1 bytes re-read as UTF-8, turning "João" into "JoÃ£o").

The command scans landlords, tenants, properties and user names, shows how
many rows would change and asks for confirmation before writing. The repair
is idempotent: running it on clean data changes nothing.

Examples:
  imobi fix-encoding
  imobi fix-encoding --yes`,
	RunE: runFixEncoding,
}

func init() {
	fixEncodingCmd.Flags().BoolVarP(&fixEncodingYes, "yes", "y", false, "Apply fixes without asking for confirmation")
}

func runFixEncoding(cmd *cobra.Command, args []string) error {
	_, s, err := loadConfigAndStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	db := s.DB()

	total := 0
	fixed := map[string]int{}

	landlords, n, err := scanMojibake(db, collectLandlordFields)
	if err != nil {
		return fmt.Errorf("failed to scan landlords: %w", err)
	}
	fixed["locadores"] = n
	total += n

	tenants, n, err := scanMojibake(db, collectTenantFields)
	if err != nil {
		return fmt.Errorf("failed to scan tenants: %w", err)
	}
	fixed["locatarios"] = n
	total += n

	properties, n, err := scanMojibake(db, collectPropertyFields)
	if err != nil {
		return fmt.Errorf("failed to scan properties: %w", err)
	}
	fixed["imoveis"] = n
	total += n

	users, n, err := scanMojibake(db, func(u *models.User) []*string {
		return []*string{&u.Name}
	})
	if err != nil {
		return fmt.Errorf("failed to scan users: %w", err)
	}
	fixed["usuarios"] = n
	total += n

	if total == 0 {
		fmt.Println("No mojibake found, nothing to do.")
		return nil
	}

	for table, n := range fixed {
		if n > 0 {
			fmt.Printf("  %s: %d row(s) to fix\n", table, n)
		}
	}

	if !fixEncodingYes {
		ok, err := prompt.Confirm(fmt.Sprintf("Apply fixes to %d row(s)", total), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted, no rows changed.")
			return nil
		}
	}

	if err := saveAll(db, landlords); err != nil {
		return fmt.Errorf("failed to save landlords: %w", err)
	}
	if err := saveAll(db, tenants); err != nil {
		return fmt.Errorf("failed to save tenants: %w", err)
	}
	if err := saveAll(db, properties); err != nil {
		return fmt.Errorf("failed to save properties: %w", err)
	}
	if err := saveAll(db, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	logger.Info("Encoding repair applied", "rows", total)
	fmt.Printf("Fixed %d row(s).\n", total)
	return nil
}

// scanMojibake loads every row of T, repairs the text fields selected by
// collect and returns only the rows that actually changed.
func scanMojibake[T any](db *gorm.DB, collect func(*T) []*string) ([]*T, int, error) {
	var rows []*T
	if err := db.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	var changed []*T
	for _, row := range rows {
		dirty := false
		for _, field := range collect(row) {
			if repaired := br.FixMojibake(*field); repaired != *field {
				*field = repaired
				dirty = true
			}
		}
		if dirty {
			changed = append(changed, row)
		}
	}
	return changed, len(changed), nil
}

func saveAll[T any](db *gorm.DB, rows []*T) error {
	for _, row := range rows {
		if err := db.Save(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func collectLandlordFields(l *models.Landlord) []*string {
	return []*string{
		&l.Name, &l.MaritalState, &l.Profession, &l.Address,
		&l.Income, &l.Reference,
	}
}

func collectTenantFields(t *models.Tenant) []*string {
	return []*string{
		&t.Name, &t.MaritalState, &t.Profession, &t.Address,
		&t.Income, &t.Reference, &t.CommercialReference, &t.Guarantor,
	}
}

func collectPropertyFields(p *models.Property) []*string {
	return []*string{
		&p.Address, &p.Kind, &p.Description,
		&p.EnergyAccountHolder, &p.WaterAccountHolder, &p.GasAccountHolder,
		&p.CondoHolder,
	}
}
