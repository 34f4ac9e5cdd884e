package db

import (
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/axlwolf/task-manager/internal/config"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// ConnectDB opens the MySQL pool described by conf and checks it answers.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := BuildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}

// BuildDSN merges the connection fields with the extra MYSQL_PARAMS options.
// parseTime is always enabled since due dates are scanned into time.Time.
func BuildDSN(conf *config.Config) (string, error) {
	params := conf.DbParams
	if params == "" {
		params = config.DefaultDbParams
	}

	cfg, err := mysql.ParseDSN("/?" + params)
	if err != nil {
		return "", fmt.Errorf("parse MYSQL_PARAMS: %w", err)
	}
	cfg.User = conf.DbUser
	cfg.Passwd = conf.DbPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(conf.DbHost, conf.DbPort)
	cfg.DBName = conf.DbName
	cfg.ParseTime = true

	return cfg.FormatDSN(), nil
}
