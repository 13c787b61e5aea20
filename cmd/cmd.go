// Package cmd defines the command-line interface for moodtrack.
package cmd

import (
	"github.com/huangsam/moodtrack/core"
	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)
	storeCmd.AddCommand(storeExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string (sqlite path, or e.g. user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("granularity", string(schema.DayGranularity), "Timestamp normalization: day or instant")
	rootCmd.PersistentFlags().IntP("window", "w", contract.DefaultWindowDays, "Rolling window in days")
	rootCmd.PersistentFlags().String("end", "", "Summary end date in ISO8601 or time ago (default: latest entry)")
	rootCmd.PersistentFlags().IntP("notes-limit", "n", contract.DefaultNotesLimit, "Number of recent notes to show")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Check-in values are per invocation, so they stay out of Viper
	addCmd.Flags().IntP("mood", "m", 0, "Mood score 1-5")
	addCmd.Flags().IntP("energy", "e", 0, "Energy score 1-5")
	addCmd.Flags().IntP("stress", "s", 0, "Stress score 1-5")
	addCmd.Flags().String("notes", "", "Free-text note")
	addCmd.Flags().String("at", "", "Check-in time in ISO8601 (default: now)")
	for _, name := range []string{"mood", "energy", "stress"} {
		if err := addCmd.MarkFlagRequired(name); err != nil {
			contract.LogFatal("Error marking add flags", err)
		}
	}

	seedCmd.Flags().Int("rows", core.DefaultSeedRows, "Number of demo entries to write")
	importCmd.Flags().String("format", "", "Input format: json or csv (default: from file extension)")

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().String("report-dir", contract.DefaultReportDir, "Directory for generated PDF reports")
	reportCmd.Flags().String("s3-bucket", "", "Upload the report to this S3 bucket")
	reportCmd.Flags().String("s3-region", "", "AWS region for the S3 bucket (default: from AWS config)")
	reportCmd.Flags().String("gcs-bucket", "", "Upload the report to this GCS bucket")
	reportCmd.Flags().String("gcs-credentials", "", "Service account JSON file for GCS (default: application credentials)")
	reportCmd.Flags().String("amqp-url", "", "Publish a report.generated event to this AMQP broker")
	reportCmd.Flags().String("amqp-exchange", contract.DefaultAMQPExchange, "AMQP topic exchange")
	reportCmd.Flags().String("amqp-routing-key", contract.DefaultAMQPRoutingKey, "AMQP routing key")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListen, "HTTP listen address")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
