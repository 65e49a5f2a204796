package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gopirudra-hub/MindMark/internal/datasync"
)

func newDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Import and export bookmark archives",
	}
	cmd.AddCommand(newDataImportCommand(), newDataExportCommand())
	return cmd
}

func newDataImportCommand() *cobra.Command {
	var file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bookmarks, tags and questions from a YAML archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			repos := newRepositories(db)

			importer := datasync.NewImporter(repos.bookmarks, repos.categories, repos.tags, repos.questions, os.Stdout)
			result, err := importer.ImportFile(cmd.Context(), file, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return err
			}

			fmt.Println("\nImport Summary:")
			if dryRun {
				fmt.Println("  (dry-run mode — no changes made)")
			}
			fmt.Printf("  Bookmarks:  %d new, %d skipped\n", result.BookmarksNew, result.BookmarksSkipped)
			fmt.Printf("  Questions:  %d new, %d rejected\n", result.QuestionsNew, result.QuestionsRejected)
			fmt.Printf("  Tags:       %d attached\n", result.TagsAttached)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path of the YAML archive to import")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newDataExportCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every bookmark with its tags and questions to YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			repos := newRepositories(db)

			exporter := datasync.NewExporter(repos.bookmarks, repos.categories, repos.tags, repos.questions)
			if err := exporter.ExportFile(cmd.Context(), file); err != nil {
				return err
			}
			fmt.Printf("Archive written to %s\n", file)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path of the YAML archive to write")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
