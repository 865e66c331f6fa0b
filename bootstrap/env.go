package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DatabaseEnv 数据库配置，同时设置时 SQLITE_FILE 优先
type DatabaseEnv struct {
	DatabaseURL string `env:"DATABASE_URL"` // postgres://… or mysql://…
	SQLiteFile  string `env:"SQLITE_FILE"`
	LogSQL      bool   `env:"DB_LOG_SQL" envDefault:"false"`
}

// Validate 两种数据库配置至少要有一种
func (d DatabaseEnv) Validate() error {
	if d.DatabaseURL == "" && d.SQLiteFile == "" {
		return errors.New("no database configuration found: set SQLITE_FILE or DATABASE_URL")
	}
	return nil
}

// Env 环境变量配置
type Env struct {
	Port string `env:"API_PORT" envDefault:"3001"`

	Database DatabaseEnv

	// Clerk
	ClerkSecretKey string `env:"CLERK_SECRET_KEY,required,notEmpty"`
	WebhookSecret  string `env:"CLERK_WEBHOOK_SECRET"` // svix 签名密钥，开发环境可不设

	// 允许的 CORS 来源，逗号分隔
	WebOrigins string `env:"API_WEB_ORIGINS"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// /api/test 计数器
	CounterInitial float64 `env:"COUNTER_INITIAL" envDefault:"0"`
	CounterStep    float64 `env:"COUNTER_STEP" envDefault:"1"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadEnv 加载环境变量
// 开发环境先读取 .env 文件，生产环境直接使用进程环境变量
func LoadEnv() (*Env, error) {
	// .env 文件可选
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using process environment", "component", "bootstrap")
	}
	return ParseEnv()
}

// ParseEnv 解析进程环境变量到 Env 并校验
func ParseEnv() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseDatabaseEnv 只解析数据库配置（管理命令使用）
func ParseDatabaseEnv() (*DatabaseEnv, error) {
	cfg := &DatabaseEnv{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AllowedOrigins 把 WebOrigins 拆分为去空白的切片
func (e *Env) AllowedOrigins() []string {
	if e.WebOrigins == "" {
		return nil
	}
	parts := strings.Split(e.WebOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
