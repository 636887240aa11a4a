package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuration globale de l'application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Mail     MailConfig     `mapstructure:"mail"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configuration du serveur HTTP
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig configuration des origines autorisées
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig configuration PostgreSQL
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // durée de vie max d'une connexion (minutes)
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // durée max d'inactivité (minutes)
}

// DSN construit la chaîne de connexion PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig configuration Redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig configuration JWT et limitation de débit à la connexion
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	LoginRateLimit  int           `mapstructure:"login_rate_limit"`
	LoginRateWindow time.Duration `mapstructure:"login_rate_window"`
}

// MailConfig configuration SMTP
// Recipient est l'adresse du secrétariat pédagogique destinataire des comptes rendus.
type MailConfig struct {
	SMTPHost  string `mapstructure:"smtp_host"`
	SMTPPort  int    `mapstructure:"smtp_port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	From      string `mapstructure:"from"`
	Recipient string `mapstructure:"recipient"`
}

// CatalogConfig chemins des sources tabulaires (EDT et listes étudiants)
type CatalogConfig struct {
	TimetablePath string `mapstructure:"timetable_path"`
	RosterPath    string `mapstructure:"roster_path"`
}

// LogConfig configuration des logs
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load charge la configuration depuis fichier et variables d'environnement
// Priorité : variables d'environnement > fichier > valeurs par défaut
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Valeurs par défaut ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "edt_elt")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Africa/Algiers")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "24h")
	v.SetDefault("auth.login_rate_limit", 10)
	v.SetDefault("auth.login_rate_window", "1m")

	v.SetDefault("mail.smtp_port", 587)

	v.SetDefault("catalog.timetable_path", "data/EDT_ELT.xlsx")
	v.SetDefault("catalog.roster_path", "data/listes_etudiants.xlsx")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Fichier de configuration ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variables d'environnement ──
	v.SetEnvPrefix("EDT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("lecture du fichier de configuration: %w", err)
		}
		// Sans fichier : défauts + variables d'environnement uniquement
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("décodage de la configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate vérifie les clés critiques
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("configuration invalide: auth.jwt_secret est obligatoire")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("configuration invalide: auth.jwt_secret doit faire au moins 16 caractères")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuration invalide: server.port doit être entre 1 et 65535")
	}
	if c.Catalog.TimetablePath == "" || c.Catalog.RosterPath == "" {
		return fmt.Errorf("configuration invalide: catalog.timetable_path et catalog.roster_path sont obligatoires")
	}
	return nil
}
