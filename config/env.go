package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultAPIBaseURL    = "https://fpl.timefortea.io.vn/api"
	defaultAppEnv        = "local"
	defaultOpsAddr       = ":8080"
	defaultSessionDriver = "file"
	defaultSessionKey    = "shopdesk:current_user"
	defaultRedisAddr     = "localhost:6379"
	defaultDemoUserID    = 1
	defaultDemoPassword  = "123456" // demo credential, see app/services/auth_service.go
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once. Later calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_ENV":            defaultAppEnv,
		"API_BASE_URL":       defaultAPIBaseURL,
		"OPS_ADDR":           defaultOpsAddr,
		"SESSION_DRIVER":     defaultSessionDriver,
		"SESSION_KEY":        defaultSessionKey,
		"REDIS_ADDR":         defaultRedisAddr,
		"REDIS_PASSWORD":     "",
		"AUTH_DEMO_USER_ID":  strconv.Itoa(defaultDemoUserID),
		"AUTH_DEMO_PASSWORD": defaultDemoPassword,
		"APP_KEY":            "",
	}
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// APIBaseURL is the root of the remote storefront API, without a trailing
// slash. Resource paths (/products, /categories, /users) are appended to it.
func APIBaseURL() string {
	_ = Load()
	return strings.TrimRight(get("API_BASE_URL", defaultAPIBaseURL), "/")
}

func OpsAddr() string {
	_ = Load()
	return get("OPS_ADDR", defaultOpsAddr)
}

// ── Session ──────────────────────────────────────────────────────────────────

// SessionDriver selects the session backing store: "file" or "redis".
func SessionDriver() string {
	_ = Load()
	driver := strings.ToLower(get("SESSION_DRIVER", defaultSessionDriver))
	switch driver {
	case "file", "redis":
		return driver
	default:
		return defaultSessionDriver
	}
}

func SessionKey() string {
	_ = Load()
	return get("SESSION_KEY", defaultSessionKey)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// AppKey is the secret used to encrypt the session record at rest.
// Empty means the record is stored as plain JSON.
func AppKey() string {
	_ = Load()
	return get("APP_KEY", "")
}

// ── Auth (demo credentials) ──────────────────────────────────────────────────

// DemoUserID is the fixed user record the placeholder login fetches.
func DemoUserID() int {
	_ = Load()
	n, err := strconv.Atoi(get("AUTH_DEMO_USER_ID", strconv.Itoa(defaultDemoUserID)))
	if err != nil || n < 1 {
		return defaultDemoUserID
	}
	return n
}

// DemoPassword is the fixed password the placeholder login compares against.
func DemoPassword() string {
	_ = Load()
	return get("AUTH_DEMO_PASSWORD", defaultDemoPassword)
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string {
	_ = Load()
	return get("STORAGE_DISK", "local")
}

func StorageLocalRoot() string {
	_ = Load()
	return get("STORAGE_LOCAL_ROOT", "storage")
}

func StorageURL() string {
	_ = Load()
	return get("STORAGE_URL", "http://localhost:8080/storage")
}

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }

// ── Log shipping ─────────────────────────────────────────────────────────────

func MongoLogURI() string        { _ = Load(); return get("MONGO_LOG_URI", "") }
func MongoLogDB() string         { _ = Load(); return get("MONGO_LOG_DB", "shopdesk") }
func MongoLogCollection() string { _ = Load(); return get("MONGO_LOG_COLLECTION", "logs") }

// ── Loader internals ─────────────────────────────────────────────────────────

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
