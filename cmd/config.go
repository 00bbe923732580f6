package cmd

// Store backends selectable via STORE_BACKEND.
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

type Config struct {
	HTTPPort string

	// StoreBackend selects the order store: "file" or "postgres".
	StoreBackend string

	// Flat-file backend
	OrdersFile string
	MenuFile   string

	// Postgres backend
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StatsReportCron is the five-field cron schedule of the stats report
	// job. Empty disables the job.
	StatsReportCron string
}
