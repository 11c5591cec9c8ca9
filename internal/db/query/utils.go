package db

import (
	"database/sql"
	"strings"
)

func New(connStr string) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	return dbConn, nil
}

func IsDuplicateEntryErr(err error) bool {
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
