package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend selects the record store implementation.
type Backend string

const (
	BackendJSON     Backend = "json"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendRemote   Backend = "remote"
)

// Config is everything the binaries need: which store backs the notebook,
// how to reach it, and how the two parties are named.
type Config struct {
	ListenAddr string

	StoreBackend Backend
	DataFile     string
	DBConnStr    string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	RedisKey     string
	APIBase      string
	APITimeout   time.Duration

	KafkaBrokers []string

	// Display labels for the console view.
	PartyALabel string
	PartyBLabel string
	// Wire values stored in the person column of the legacy backend.
	PartyAWire string
	PartyBWire string
}

// Load reads a .env file when present, then the environment. Every value
// has a default suitable for a local run with the JSON file store.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		StoreBackend: Backend(getenv("STORE_BACKEND", string(BackendJSON))),
		DataFile:     getenv("DATA_FILE", "records.json"),
		DBConnStr:    os.Getenv("DB_CONN_STR"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		RedisKey:     getenv("REDIS_KEY", "loan:records"),
		APIBase:      os.Getenv("API_BASE"),
		APITimeout:   10 * time.Second,
		PartyALabel:  getenv("PARTY_A_LABEL", "恵輔"),
		PartyBLabel:  getenv("PARTY_B_LABEL", "瞳"),
		PartyAWire:   getenv("PARTY_A_WIRE", "keisuke"),
		PartyBWire:   getenv("PARTY_B_WIRE", "hitomi"),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			cfg.RedisDB = n
		}
	}
	if timeout := os.Getenv("API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.APITimeout = d
		}
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.DBConnStr == "" {
		cfg.DBConnStr = buildConnStr()
	}

	return cfg
}

// buildConnStr assembles a postgres connection string from individual
// DB_* variables, which is friendlier for container setups.
func buildConnStr() string {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := getenv("DB_PASSWORD", "postgres")
	dbname := getenv("DB_NAME", "loan_notebook")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
