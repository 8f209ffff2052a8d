package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/febra/internal/db"
	"github.com/terraincognita07/febra/internal/i18n"
	"github.com/terraincognita07/febra/internal/services"
)

var (
	exportEmail    string
	exportFormat   string
	exportLanguage string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's diary to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportEmail, "email", "", "Email of the account to export (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
	exportCmd.Flags().StringVar(&exportLanguage, "lang", i18n.LangEN, "Language for CSV labels")
	_ = exportCmd.MarkFlagRequired("email")
}

func runExport(cmd *cobra.Command, args []string) error {
	email := services.NormalizeAuthEmail(exportEmail)
	if email == "" {
		return errors.New("invalid email address")
	}

	location := mustLoadLocation(envOr("TZ", "UTC"))

	database, err := db.OpenSQLite(defaultDBPath())
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		_ = db.CloseSQLite(database)
	}()

	repositories := db.NewRepositories(database)
	user, err := repositories.Users.FindByNormalizedEmail(email)
	if err != nil {
		return fmt.Errorf("user %s not found", email)
	}

	exportService := services.NewExportService(repositories.Events)
	now := time.Now()

	switch exportFormat {
	case "json":
		entries, err := exportService.BuildJSONEntries(user.ID, now, location)
		if err != nil {
			return fmt.Errorf("build export: %w", err)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{"days": entries})
	case "csv":
		i18nManager, err := i18n.NewManager(exportLanguage, defaultLocalesDir())
		if err != nil {
			return fmt.Errorf("i18n init failed: %w", err)
		}
		messages := i18nManager.Messages(i18nManager.NormalizeLanguage(exportLanguage))

		rows, err := exportService.BuildCSVRows(user.ID, user.Celsius, messages, now, location)
		if err != nil {
			return fmt.Errorf("build export: %w", err)
		}

		writer := csv.NewWriter(os.Stdout)
		if err := writer.Write(services.CSVHeader(messages)); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writer.Write(append([]string{row.Date}, row.Cells...)); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unsupported format %q, expected csv or json", exportFormat)
	}
}
