// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection that stands in for
// PostgreSQL during integration tests. A single connection is shared by
// the test server and the step assertions, so MaxOpenConns stays at 1.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb returns the singleton test database, creating and migrating it on
// first use. The models map keys are table names used by step assertions.
func NewDb(schema string, models map[string]any) *Db {
	once.Do(func() {
		db = open(schema, models)
	})
	return db
}

func open(schema string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// One shared connection keeps the in-memory database alive and avoids
	// table-lock contention between the server and assertion queries.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
		TranslateError:                           true,
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		schema: schema,
		models: models,
	}

	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %s", err))
	}

	return d
}

func (d *Db) migrate() error {
	if err := d.DbConn.Exec("ATTACH ':memory:' AS " + d.schema).Error; err != nil {
		if !strings.Contains(err.Error(), "is already in use") {
			return err
		}
	}

	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, m := range modelList {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}

	return nil
}

// ClearDB deletes all rows from every registered table. Called before each
// scenario so state never leaks between scenarios.
func (d *Db) ClearDB() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
