// Package main provides the CLI entry point for tabstruct-go.
package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct"
	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/output"
	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/report"
)

var (
	outputPath     string
	pretty         bool
	cloudProvider  string
	skipUnresolved bool

	reportTitle  string
	reportNote   string
	reportAuthor string
	xlsxPath     string

	hideDatasource string
	unhide         bool

	fontName    string
	fontMapPath string

	logger *zap.SugaredLogger
)

func main() {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	defer func() { _ = zapLogger.Sync() }()
	logger = zapLogger.Sugar()

	rootCmd := &cobra.Command{
		Use:   "tabstruct",
		Short: "Extract and edit metadata in Tableau workbooks",
		Long: `tabstruct-go parses Tableau .twb and .twbx workbooks, extracts metadata
(connections, fields, fonts, colors, shapes, images) and supports hiding
fields and remapping fonts before writing the workbook back to disk.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cloudProvider, "cloud-provider", "", "Cloud-provider marker to match (default: onedrive)")
	rootCmd.PersistentFlags().BoolVar(&skipUnresolved, "skip-unresolved", false, "Skip dependency blocks with unresolvable datasources")

	extractCmd := &cobra.Command{
		Use:   "extract [workbook]",
		Short: "Extract workbook metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	infoCmd := &cobra.Command{
		Use:   "info [workbook]",
		Short: "Print a human-readable metadata summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	reportCmd := &cobra.Command{
		Use:   "report [workbook]",
		Short: "Generate a workbook report",
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
	}
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file path (default: stdout)")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportNote, "note", "", "Free-form note appended to the report")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Report author (default: current user)")
	reportCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also export metadata to this .xlsx file")

	hideCmd := &cobra.Command{
		Use:   "hide [workbook] [field]",
		Short: "Hide (or unhide) a field and save the workbook",
		Args:  cobra.ExactArgs(2),
		RunE:  runHide,
	}
	hideCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path (default: overwrite source)")
	hideCmd.Flags().StringVar(&hideDatasource, "datasource", "", "Limit to the datasource with this caption")
	hideCmd.Flags().BoolVar(&unhide, "unhide", false, "Clear the hidden marker instead of setting it")

	fontCmd := &cobra.Command{
		Use:   "font [workbook]",
		Short: "Replace workbook fonts and save the workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runFont,
	}
	fontCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path (default: overwrite source)")
	fontCmd.Flags().StringVar(&fontName, "set", "", "Target font: blanket replacement, or the fallback when --map is given")
	fontCmd.Flags().StringVar(&fontMapPath, "map", "", "YAML file mapping old font names to new ones")

	repackCmd := &cobra.Command{
		Use:   "repack [workbook.twbx]",
		Short: "Re-create a packaged workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepack,
	}
	repackCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination package path (required)")
	_ = repackCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(extractCmd, infoCmd, reportCmd, hideCmd, fontCmd, repackCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openWorkbook(path string) (*tabstruct.Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	opts := tabstruct.DefaultOptions()
	if cloudProvider != "" {
		opts.CloudProvider = cloudProvider
	}
	opts.SkipUnresolved = skipUnresolved

	return tabstruct.OpenWithOptions(path, opts)
}

// saveWorkbook writes the session back to dest, re-packaging when both the
// source and the destination are packages.
func saveWorkbook(wb *tabstruct.Workbook, dest string) error {
	if dest == "" {
		dest = wb.Path()
	}
	if wb.Kind() == tabstruct.KindPackage && strings.EqualFold(filepath.Ext(dest), ".twbx") {
		return wb.SavePackaged(dest)
	}
	return wb.Save(dest)
}

func runExtract(cmd *cobra.Command, args []string) error {
	wb, err := openWorkbook(args[0])
	if err != nil {
		return err
	}

	meta, err := wb.Extract()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(meta, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, jsonData, 0644)
	}
	fmt.Println(string(jsonData))
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	wb, err := openWorkbook(args[0])
	if err != nil {
		return err
	}

	meta, err := wb.Extract()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	heading := color.New(color.FgCyan, color.Bold)
	heading.Printf("%s (%s)\n", meta.BookName, wb.Kind())

	fmt.Printf("  custom SQL queries   %d\n", len(meta.CustomSQL))
	fmt.Printf("  file connections     %d\n", len(meta.FileConnections))
	fmt.Printf("  cloud connections    %d\n", len(meta.CloudConnections))
	fmt.Printf("  database connections %d\n", len(meta.DBConnections))
	fmt.Printf("  fonts                %d\n", len(meta.Fonts))
	fmt.Printf("  colors               %d\n", len(meta.Colors))
	fmt.Printf("  color palettes       %d\n", len(meta.ColorPalettes))
	fmt.Printf("  images               %d\n", len(meta.Images))
	fmt.Printf("  shapes               %d\n", len(meta.Shapes))
	fmt.Printf("  fields               %d\n", len(meta.Fields))
	fmt.Printf("  active fields        %d\n", len(meta.ActiveFields))
	fmt.Printf("  hidden fields        %d\n", len(meta.HiddenFields))

	for _, db := range meta.DBConnections {
		fmt.Printf("  db: %s", db.Name)
		if db.Class != "" {
			fmt.Printf(" (%s)", db.Class)
		}
		fmt.Println()
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	wb, err := openWorkbook(args[0])
	if err != nil {
		return err
	}

	meta, err := wb.Extract()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	author := reportAuthor
	if author == "" {
		if u, err := user.Current(); err == nil {
			author = u.Username
		}
	}

	data := report.Data{
		Title:       reportTitle,
		Author:      author,
		GeneratedAt: time.Now(),
		Note:        reportNote,
		Meta:        meta,
	}

	if xlsxPath != "" {
		if err := report.WriteXLSX(xlsxPath, meta); err != nil {
			return err
		}
		logger.Infow("wrote xlsx export", "path", xlsxPath)
	}

	if outputPath != "" {
		if err := report.WriteFile(outputPath, data); err != nil {
			return err
		}
		logger.Infow("wrote report", "path", outputPath)
		return nil
	}
	return report.Write(os.Stdout, data)
}

func runHide(cmd *cobra.Command, args []string) error {
	wb, err := openWorkbook(args[0])
	if err != nil {
		return err
	}

	field := args[1]
	n := wb.SetFieldHidden(field, hideDatasource, !unhide)
	if n == 0 {
		logger.Warnw("no matching columns", "field", field, "datasource", hideDatasource)
	} else {
		logger.Infow("updated hidden marker", "field", field, "columns", n, "hidden", !unhide)
	}

	return saveWorkbook(wb, outputPath)
}

func runFont(cmd *cobra.Command, args []string) error {
	if fontName == "" && fontMapPath == "" {
		return fmt.Errorf("at least one of --set and --map is required")
	}

	wb, err := openWorkbook(args[0])
	if err != nil {
		return err
	}

	if fontMapPath != "" {
		raw, err := os.ReadFile(fontMapPath)
		if err != nil {
			return err
		}
		mapping := make(map[string]string)
		if err := yaml.Unmarshal(raw, &mapping); err != nil {
			return fmt.Errorf("parse font map %s: %w", fontMapPath, err)
		}
		wb.MapFonts(fontName, mapping)
		logger.Infow("remapped fonts", "entries", len(mapping), "fallback", fontName)
	} else {
		wb.SetFont(fontName)
		logger.Infow("replaced fonts", "font", fontName)
	}

	return saveWorkbook(wb, outputPath)
}

func runRepack(cmd *cobra.Command, args []string) error {
	wb, err := openWorkbook(args[0])
	if err != nil {
		return err
	}

	if err := wb.SavePackaged(outputPath); err != nil {
		return err
	}
	logger.Infow("repacked workbook", "source", wb.Path(), "dest", outputPath)
	return nil
}
