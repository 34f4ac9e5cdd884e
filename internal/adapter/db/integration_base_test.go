//go:build integration

package db_test

import (
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/axlwolf/task-manager/internal/adapter/db"
	"github.com/axlwolf/task-manager/internal/config"
)

type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "easytask")+"_test")
	conf := &config.Config{
		DbHost:     host,
		DbPort:     port,
		DbUser:     rootUser,
		DbPassword: rootPassword,
		DbParams:   os.Getenv("MYSQL_PARAMS"),
	}

	adminDB, err := sqlx.Connect("mysql", s.dsn(conf, ""))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect("mysql", s.dsn(conf, database))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Only databases created for the suite are dropped.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

// ResetDatabase rebuilds the schema and fixtures through the embedded migrations.
func (s *IntegrationSuiteBase) ResetDatabase() {
	_, err := s.DB.Exec(`
DROP TABLE IF EXISTS tasks;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS goose_db_version;
`)
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.Migrate(s.DB))
}

func (s *IntegrationSuiteBase) dsn(conf *config.Config, database string) string {
	withDB := *conf
	withDB.DbName = database
	dsn, err := dbadapter.BuildDSN(&withDB)
	s.Require().NoError(err)
	return dsn
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
