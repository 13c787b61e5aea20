package contract

import (
	"testing"
	"time"

	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes every check.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		DBBackend:  "sqlite",
		Window:     7,
		NotesLimit: 6,
		Output:     "text",
		Precision:  2,
		Color:      "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		alter       func(*ConfigRawInput)
		expectError bool
	}{
		{"valid minimal config", func(*ConfigRawInput) {}, false},
		{"instant granularity", func(in *ConfigRawInput) { in.Granularity = "Instant" }, false},
		{"invalid granularity", func(in *ConfigRawInput) { in.Granularity = "hourly" }, true},
		{"invalid window (zero)", func(in *ConfigRawInput) { in.Window = 0 }, true},
		{"invalid window (negative)", func(in *ConfigRawInput) { in.Window = -3 }, true},
		{"invalid window (too large)", func(in *ConfigRawInput) { in.Window = MaxWindowDays + 1 }, true},
		{"invalid notes limit", func(in *ConfigRawInput) { in.NotesLimit = 0 }, true},
		{"invalid precision (zero)", func(in *ConfigRawInput) { in.Precision = 0 }, true},
		{"invalid precision (too high)", func(in *ConfigRawInput) { in.Precision = 5 }, true},
		{"invalid output", func(in *ConfigRawInput) { in.Output = "xml" }, true},
		{"uppercase output", func(in *ConfigRawInput) { in.Output = "JSON" }, false},
		{"invalid color", func(in *ConfigRawInput) { in.Color = "sometimes" }, true},
		{"invalid backend", func(in *ConfigRawInput) { in.DBBackend = "redis" }, true},
		{"none backend", func(in *ConfigRawInput) { in.DBBackend = "none" }, false},
		{"mysql without connect", func(in *ConfigRawInput) { in.DBBackend = "mysql" }, true},
		{"end date relative", func(in *ConfigRawInput) { in.End = "2 days ago" }, false},
		{"end date invalid", func(in *ConfigRawInput) { in.End = "someday" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.alter(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, schema.SQLiteBackend, cfg.DBBackend)
	assert.Equal(t, schema.DayGranularity, cfg.Granularity)
	assert.Equal(t, 7, cfg.WindowDays)
	assert.Equal(t, 6, cfg.NotesLimit)
	assert.True(t, cfg.EndDate.IsZero())
	assert.True(t, cfg.UseColors)
	assert.Equal(t, DefaultReportDir, cfg.ReportDir)
	assert.Equal(t, DefaultAMQPExchange, cfg.AMQPExchange)
	assert.Equal(t, DefaultAMQPRoutingKey, cfg.AMQPRoutingKey)
	assert.Equal(t, DefaultListen, cfg.Listen)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		conn    string
		wantErr bool
	}{
		{"sqlite ignores connect", schema.SQLiteBackend, "", false},
		{"none ignores connect", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/moodtrack", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/moodtrack", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost user=u password=p dbname=moodtrack", false},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost user=u", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.conn)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{WindowDays: 7, EndDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	clone := cfg.Clone()
	clone.WindowDays = 30
	assert.Equal(t, 7, cfg.WindowDays)
	assert.Equal(t, cfg.EndDate, clone.EndDate)
}

func TestRevalidate(t *testing.T) {
	cfg := &Config{WindowDays: 7}
	require.NoError(t, RevalidateWindow(cfg, 14))
	assert.Equal(t, 14, cfg.WindowDays)
	assert.Error(t, RevalidateWindow(cfg, 0))

	require.NoError(t, RevalidateEnd(cfg, "2024-03-04"))
	assert.Equal(t, 4, cfg.EndDate.Day())
	require.NoError(t, RevalidateEnd(cfg, ""))
	assert.True(t, cfg.EndDate.IsZero())
	assert.Error(t, RevalidateEnd(cfg, "not a date"))
}

func TestOverrideNotesLimit(t *testing.T) {
	cfg := &Config{NotesLimit: DefaultNotesLimit}
	OverrideNotesLimit(cfg, 0)
	assert.Equal(t, DefaultNotesLimit, cfg.NotesLimit)
	OverrideNotesLimit(cfg, -3)
	assert.Equal(t, DefaultNotesLimit, cfg.NotesLimit)
	OverrideNotesLimit(cfg, 12)
	assert.Equal(t, 12, cfg.NotesLimit)
	OverrideNotesLimit(cfg, MaxNotesLimit+50)
	assert.Equal(t, MaxNotesLimit, cfg.NotesLimit)
}
