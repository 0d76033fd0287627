package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ListeningPortKey is the port where the gRPC Escrow interface will listen on
	ListeningPortKey = "LISTENING_PORT"
	// OperatorListeningPortKey is the port where the gRPC Operator interface will listen on
	OperatorListeningPortKey = "OPERATOR_LISTENING_PORT"
	// MetricsListeningPortKey is the port where prometheus metrics are
	// exposed. 0 disables the endpoint.
	MetricsListeningPortKey = "METRICS_LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// CustodyAccountKey is the ledger account holding the escrowed deposits
	CustodyAccountKey = "CUSTODY_ACCOUNT"
	// WebhookRequestTimeoutKey is the timeout for every webhook POST request
	WebhookRequestTimeoutKey = "WEBHOOK_REQUEST_TIMEOUT"
	// WebhookRateLimitKey is the max number of webhook requests per second
	WebhookRateLimitKey = "WEBHOOK_RATE_LIMIT"
	// EnableProfilerKey enables profiler that can be used to investigate performance issues
	EnableProfilerKey = "ENABLE_PROFILER"
	// StatsIntervalKey defines interval in seconds for printing basic statistics
	StatsIntervalKey = "STATS_INTERVAL"

	DbLocation       = "db"
	ProfilerLocation = "stats"

	DBBadger   = "badger"
	DBInMemory = "inmemory"

	envFile = ".env"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("escrowd", false)

// InitConfig loads the optional .env file of the working directory, reads
// the ESCROWD_ prefixed environment and prepares the datadir.
func InitConfig() error {
	if err := loadEnvFile(envFile); err != nil {
		return fmt.Errorf("error while loading %s file: %s", envFile, err)
	}

	vip = viper.New()
	vip.SetEnvPrefix("ESCROWD")
	vip.AutomaticEnv()

	vip.SetDefault(ListeningPortKey, 9945)
	vip.SetDefault(OperatorListeningPortKey, 9000)
	vip.SetDefault(MetricsListeningPortKey, 9100)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(CustodyAccountKey, "escrow")
	vip.SetDefault(WebhookRequestTimeoutKey, 15*time.Second)
	vip.SetDefault(WebhookRateLimitKey, 10)
	vip.SetDefault(EnableProfilerKey, false)
	vip.SetDefault(StatsIntervalKey, 600)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func GetProfilerDir() string {
	return filepath.Join(GetDatadir(), ProfilerLocation)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	ports := map[string]int{
		ListeningPortKey:         GetInt(ListeningPortKey),
		OperatorListeningPortKey: GetInt(OperatorListeningPortKey),
		MetricsListeningPortKey:  GetInt(MetricsListeningPortKey),
	}
	used := make(map[int]string)
	for key, port := range ports {
		if port < 0 || port > 65535 {
			return fmt.Errorf("%s must be in range [0, 65535]", key)
		}
		if port == 0 {
			if key != MetricsListeningPortKey {
				return fmt.Errorf("missing %s", key)
			}
			continue
		}
		if other, ok := used[port]; ok {
			return fmt.Errorf("%s and %s must be different", key, other)
		}
		used[port] = key
	}

	dbType := GetString(DBTypeKey)
	if dbType != DBBadger && dbType != DBInMemory {
		return fmt.Errorf(
			"%s must be one of %s, %s", DBTypeKey, DBBadger, DBInMemory,
		)
	}

	if len(strings.TrimSpace(GetString(CustodyAccountKey))) <= 0 {
		return fmt.Errorf("missing custody account")
	}

	if GetDuration(WebhookRequestTimeoutKey) <= 0 {
		return fmt.Errorf("%s must be a positive duration", WebhookRequestTimeoutKey)
	}
	if GetInt(WebhookRateLimitKey) <= 0 {
		return fmt.Errorf("%s must be a positive number", WebhookRateLimitKey)
	}
	if GetInt(StatsIntervalKey) <= 0 {
		return fmt.Errorf("%s must be a positive number", StatsIntervalKey)
	}

	return nil
}

func initDatadir() error {
	if GetString(DBTypeKey) == DBBadger {
		if err := makeDirectoryIfNotExists(GetDbDir()); err != nil {
			return err
		}
	}

	if GetBool(EnableProfilerKey) {
		if err := makeDirectoryIfNotExists(GetProfilerDir()); err != nil {
			return err
		}
	}
	return nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
