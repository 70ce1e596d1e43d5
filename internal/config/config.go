package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB         DBConfig
	Server     ServerConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	LLM        LLMConfig
	Generation GenerationConfig
	Storage    StorageConfig
	Telegram   TelegramConfig
	Admin      AdminConfig
	Site       SiteConfig
	CacheTTLs  CacheTTLConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxOpen  int
	MaxIdle  int
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Env   string
	Level string
}

// LLMConfig selects the language-model backend. Provider "openai" covers any
// OpenAI-compatible endpoint (OpenAI, Groq, Z.ai) through BaseURL.
type LLMConfig struct {
	Provider       string
	BaseURL        string
	APIKey         string
	OllamaURL      string
	QuizModel      string
	HoroscopeModel string
	PastEventModel string
	Temperature    float64
	Timeout        time.Duration
}

type GenerationConfig struct {
	HoroscopeStartDate  string
	HoroscopeLookAhead  int
	MinQuestions        int
	MaxQuestions        int
	ExistingTitlesLimit int
	LeapBaseYear        int
}

type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	KeyPrefix       string
}

type TelegramConfig struct {
	BotToken   string
	Channel    string
	ShareDelay time.Duration
}

type AdminConfig struct {
	Password      string
	PasswordHash  string
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookie  bool
}

type SiteConfig struct {
	BaseURL string
	Name    string
}

type CacheTTLConfig struct {
	Home       string
	Categories string
	Category   string
	History    string
	Horoscope  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.quiz_model", "gpt-4o-mini")
	v.SetDefault("llm.horoscope_model", "gpt-4o-mini")
	v.SetDefault("llm.past_event_model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.8)
	v.SetDefault("llm.timeout", 120)
	v.SetDefault("generation.horoscope_start_date", "2025-01-01")
	v.SetDefault("generation.horoscope_look_ahead", 30)
	v.SetDefault("generation.min_questions", 5)
	v.SetDefault("generation.max_questions", 10)
	v.SetDefault("generation.existing_titles_limit", 10)
	v.SetDefault("generation.leap_base_year", 2024)
	v.SetDefault("storage.region", "auto")
	v.SetDefault("storage.bucket", "quiz-zone")
	v.SetDefault("storage.key_prefix", "temp")
	v.SetDefault("telegram.channel", "@quizzone_club")
	v.SetDefault("telegram.share_delay", 2)
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.session_ttl", 168)
	v.SetDefault("site.base_url", "https://quizzone.club")
	v.SetDefault("site.name", "Quiz Zone")
	v.SetDefault("cache_ttls.home", "10m")
	v.SetDefault("cache_ttls.categories", "1h")
	v.SetDefault("cache_ttls.category", "10m")
	v.SetDefault("cache_ttls.history", "24h")
	v.SetDefault("cache_ttls.horoscope", "1h")
}

// New builds a viper instance with defaults, the optional config file and
// environment overrides (DB_HOST, LLM_API_KEY, ...). Callers may bind flags to
// it before calling Load.
func New() *viper.Viper {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads the config file if present and assembles a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
			MaxOpen:  v.GetInt("db.max_open"),
			MaxIdle:  v.GetInt("db.max_idle"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		LLM: LLMConfig{
			Provider:       v.GetString("llm.provider"),
			BaseURL:        v.GetString("llm.base_url"),
			APIKey:         v.GetString("llm.api_key"),
			OllamaURL:      v.GetString("llm.ollama_url"),
			QuizModel:      v.GetString("llm.quiz_model"),
			HoroscopeModel: v.GetString("llm.horoscope_model"),
			PastEventModel: v.GetString("llm.past_event_model"),
			Temperature:    v.GetFloat64("llm.temperature"),
			Timeout:        time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		Generation: GenerationConfig{
			HoroscopeStartDate:  v.GetString("generation.horoscope_start_date"),
			HoroscopeLookAhead:  v.GetInt("generation.horoscope_look_ahead"),
			MinQuestions:        v.GetInt("generation.min_questions"),
			MaxQuestions:        v.GetInt("generation.max_questions"),
			ExistingTitlesLimit: v.GetInt("generation.existing_titles_limit"),
			LeapBaseYear:        v.GetInt("generation.leap_base_year"),
		},
		Storage: StorageConfig{
			Endpoint:        v.GetString("storage.endpoint"),
			Region:          v.GetString("storage.region"),
			Bucket:          v.GetString("storage.bucket"),
			AccessKeyID:     v.GetString("storage.access_key_id"),
			SecretAccessKey: v.GetString("storage.secret_access_key"),
			PublicBaseURL:   v.GetString("storage.public_base_url"),
			KeyPrefix:       v.GetString("storage.key_prefix"),
		},
		Telegram: TelegramConfig{
			BotToken:   v.GetString("telegram.bot_token"),
			Channel:    v.GetString("telegram.channel"),
			ShareDelay: time.Duration(v.GetInt("telegram.share_delay")) * time.Second,
		},
		Admin: AdminConfig{
			Password:      v.GetString("admin.password"),
			PasswordHash:  v.GetString("admin.password_hash"),
			SessionSecret: v.GetString("admin.session_secret"),
			SessionTTL:    time.Duration(v.GetInt("admin.session_ttl")) * time.Hour,
			SecureCookie:  v.GetBool("admin.secure_cookie"),
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(v.GetString("site.base_url"), "/"),
			Name:    v.GetString("site.name"),
		},
		CacheTTLs: CacheTTLConfig{
			Home:       v.GetString("cache_ttls.home"),
			Categories: v.GetString("cache_ttls.categories"),
			Category:   v.GetString("cache_ttls.category"),
			History:    v.GetString("cache_ttls.history"),
			Horoscope:  v.GetString("cache_ttls.horoscope"),
		},
	}

	if cfg.Admin.SessionSecret == "" {
		cfg.Admin.SessionSecret = cfg.Admin.Password
	}

	return cfg, nil
}

// LoadConfig is the shorthand used by binaries that take no flags.
func LoadConfig() (*Config, error) {
	return Load(New())
}

// GetDSN returns a lib/pq connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}

// ParseTTLStringOrDefault parses a duration string such as "10m", falling
// back to defaultTTL when empty or malformed.
func (c *Config) ParseTTLStringOrDefault(ttlString string, defaultTTL time.Duration) time.Duration {
	if ttlString == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttlString)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}

// HoroscopeStart returns the first horoscope date used when the table is empty.
func (g GenerationConfig) HoroscopeStart() time.Time {
	t, err := time.Parse("2006-01-02", g.HoroscopeStartDate)
	if err != nil {
		return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}
