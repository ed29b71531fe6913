package database

import (
	"fmt"

	"quiz-assign/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver (pure Go)
	"go.uber.org/zap"
)

const (
	DriverGoOra  = "oracle"
	DriverGodror = "godror"
)

func init() {
	// sqlx는 go-ora의 드라이버 이름을 모르므로 :name 바인드 방식을 등록
	sqlx.BindDriver(DriverGoOra, sqlx.NAMED)
}

// NewSQLXOracleDB opens and pings an Oracle connection using driver ("oracle" for
// go-ora, "godror" for godror). An empty driver means go-ora.
func NewSQLXOracleDB(driver, dsn string) (*sqlx.DB, error) {
	if driver == "" {
		driver = DriverGoOra
	}
	if driver != DriverGoOra && driver != DriverGodror {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database", zap.String("driver", driver))
	return db, nil
}
