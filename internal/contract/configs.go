package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/moodtrack/schema"
)

// Default values for configuration.
const (
	DefaultWindowDays = 7
	MaxWindowDays     = 366
	DefaultNotesLimit = 6
	MaxNotesLimit     = 100
	DefaultPrecision  = 2
	DefaultReportDir  = "reports"
	DefaultListen     = ":8080"

	DefaultAMQPExchange   = "moodtrack"
	DefaultAMQPRoutingKey = "report.generated"
)

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	DBBackend schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	Granularity schema.Granularity
	WindowDays  int
	EndDate     time.Time // zero means the latest entry
	NotesLimit  int

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)

	ReportDir      string
	S3Bucket       string
	S3Region       string
	GCSBucket      string
	GCSCredentials string // path to a service account JSON file

	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	Listen string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	DBBackend   string `mapstructure:"db-backend"`
	DBConnect   string `mapstructure:"db-connect"`
	Granularity string `mapstructure:"granularity"`
	Window      int    `mapstructure:"window"`
	End         string `mapstructure:"end"`
	NotesLimit  int    `mapstructure:"notes-limit"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Precision   int    `mapstructure:"precision"`
	Color       string `mapstructure:"color"`
	Width       int    `mapstructure:"width"`

	// --- Fields from reportCmd.Flags() ---
	ReportDir      string `mapstructure:"report-dir"`
	S3Bucket       string `mapstructure:"s3-bucket"`
	S3Region       string `mapstructure:"s3-region"`
	GCSBucket      string `mapstructure:"gcs-bucket"`
	GCSCredentials string `mapstructure:"gcs-credentials"`
	AMQPURL        string `mapstructure:"amqp-url"`
	AMQPExchange   string `mapstructure:"amqp-exchange"`
	AMQPRoutingKey string `mapstructure:"amqp-routing-key"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := processEndDate(cfg, input, time.Now()); err != nil {
		return err
	}
	processReportConfig(cfg, input)
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseBackend normalizes and validates a backend name.
func ParseBackend(s string) (schema.DatabaseBackend, error) {
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid db backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfig validates the entry store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseBackend(input.DBBackend)
	if err != nil {
		return err
	}
	cfg.DBBackend = backend
	cfg.DBConnect = input.DBConnect
	return ValidateDatabaseConnectionString(cfg.DBBackend, cfg.DBConnect)
}

// validateSimpleInputs processes and validates the display and engine fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Window Validation ---
	if input.Window <= 0 || input.Window > MaxWindowDays {
		return fmt.Errorf("window must be greater than 0 and cannot exceed %d days (received %d)", MaxWindowDays, input.Window)
	}
	cfg.WindowDays = input.Window

	// --- 2. Notes Limit Validation ---
	if input.NotesLimit <= 0 || input.NotesLimit > MaxNotesLimit {
		return fmt.Errorf("notes-limit must be greater than 0 and cannot exceed %d (received %d)", MaxNotesLimit, input.NotesLimit)
	}
	cfg.NotesLimit = input.NotesLimit

	// --- 3. Granularity Validation ---
	granularity, err := ParseGranularity(input.Granularity)
	if err != nil {
		return err
	}
	cfg.Granularity = granularity

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	return nil
}

// ParseGranularity normalizes and validates a granularity name. Empty means day.
func ParseGranularity(s string) (schema.Granularity, error) {
	if strings.TrimSpace(s) == "" {
		return schema.DayGranularity, nil
	}
	g := schema.Granularity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidGranularities[g]; !ok {
		return "", fmt.Errorf("invalid granularity '%s'. must be day, instant", s)
	}
	return g, nil
}

// processEndDate resolves the optional summary end date.
func processEndDate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.EndDate = time.Time{}
	if strings.TrimSpace(input.End) == "" {
		return nil
	}
	t, err := ParseDateInput(input.End, now)
	if err != nil {
		return fmt.Errorf("invalid end date '%s': %w", input.End, err)
	}
	cfg.EndDate = t
	return nil
}

// processReportConfig copies report, upload and notification settings with defaults.
func processReportConfig(cfg *Config, input *ConfigRawInput) {
	cfg.ReportDir = strings.TrimSpace(input.ReportDir)
	if cfg.ReportDir == "" {
		cfg.ReportDir = DefaultReportDir
	}
	cfg.S3Bucket = strings.TrimSpace(input.S3Bucket)
	cfg.S3Region = strings.TrimSpace(input.S3Region)
	cfg.GCSBucket = strings.TrimSpace(input.GCSBucket)
	cfg.GCSCredentials = strings.TrimSpace(input.GCSCredentials)

	cfg.AMQPURL = strings.TrimSpace(input.AMQPURL)
	cfg.AMQPExchange = input.AMQPExchange
	if cfg.AMQPExchange == "" {
		cfg.AMQPExchange = DefaultAMQPExchange
	}
	cfg.AMQPRoutingKey = input.AMQPRoutingKey
	if cfg.AMQPRoutingKey == "" {
		cfg.AMQPRoutingKey = DefaultAMQPRoutingKey
	}

	cfg.Listen = input.Listen
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
}

// RevalidateWindow checks a window override coming from an MCP tool or HTTP query.
func RevalidateWindow(cfg *Config, window int) error {
	if window <= 0 || window > MaxWindowDays {
		return fmt.Errorf("window must be greater than 0 and cannot exceed %d days (received %d)", MaxWindowDays, window)
	}
	cfg.WindowDays = window
	return nil
}

// OverrideNotesLimit applies a notes limit override from an MCP tool or HTTP query.
// Non-positive values keep the configured limit and larger ones are capped at MaxNotesLimit.
func OverrideNotesLimit(cfg *Config, limit int) {
	if limit > 0 {
		cfg.NotesLimit = min(limit, MaxNotesLimit)
	}
}

// RevalidateEnd checks an end date override coming from an MCP tool or HTTP query.
func RevalidateEnd(cfg *Config, end string) error {
	return processEndDate(cfg, &ConfigRawInput{End: end}, time.Now())
}
