package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gitcraft-go-server/domain/entity"

	"github.com/glebarez/sqlite"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector 根据配置选择 GORM 驱动：
//   - SQLITE_FILE            -> SQLite 文件（本地开发）
//   - DATABASE_URL mysql://  -> MySQL，见 MySQLDSN
//   - DATABASE_URL 其他      -> PostgreSQL
func Dialector(cfg DatabaseEnv) (gorm.Dialector, string) {
	if cfg.SQLiteFile != "" {
		return sqlite.Open(cfg.SQLiteFile), "sqlite"
	}
	if strings.HasPrefix(cfg.DatabaseURL, "mysql://") {
		return mysql.Open(MySQLDSN(cfg.DatabaseURL)), "mysql"
	}
	return postgres.Open(cfg.DatabaseURL), "postgres"
}

// MySQLDSN 去掉 mysql:// 前缀，并强制 parseTime=true，
// 否则 DATETIME 列无法扫描进 time.Time。
// 无法解析的 DSN 原样返回，由 gorm.Open 报错。
func MySQLDSN(url string) string {
	dsn := strings.TrimPrefix(url, "mysql://")
	cfg, err := mysqlDriver.ParseDSN(dsn)
	if err != nil {
		return dsn
	}
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// NewDatabase 连接数据库，配置连接池并迁移表结构
func NewDatabase(cfg DatabaseEnv) (*gorm.DB, error) {
	dialector, driver := Dialector(cfg)

	logLevel := logger.Warn
	if cfg.LogSQL {
		logLevel = logger.Info // 开发环境显示 SQL
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// 唯一约束冲突转换为 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	// ========== 配置连接池 ==========
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if driver == "sqlite" {
		// 单连接写入，避免 SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	slog.Info("database connected, pool configured, schema migrated",
		"component", "bootstrap", "driver", driver)
	return db, nil
}

// Migrate 创建或更新表结构和唯一索引
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
