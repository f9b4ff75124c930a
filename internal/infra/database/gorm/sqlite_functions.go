package gorm

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	sqlitedriver "github.com/glebarez/go-sqlite"
)

var registerSQLiteFunctions = sync.OnceValue(func() error {
	// Overrides the built-in ASCII-only lower so case-insensitive search matches Postgres.
	return sqlitedriver.RegisterDeterministicScalarFunction("lower", 1, unicodeLower)
})

func unicodeLower(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch value := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(value), nil
	case []byte:
		return strings.ToLower(string(value)), nil
	default:
		return strings.ToLower(fmt.Sprint(value)), nil
	}
}
