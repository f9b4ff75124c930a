package gorm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-tracker/internal/domain/entity"
)

type recordingWriter struct {
	lines []string
}

func (w *recordingWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestLoggerSkipsMissingRowsAndReportsFailures(t *testing.T) {
	db, err := Open(Config{Driver: DriverSQLite, Path: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	writer := &recordingWriter{}
	session := db.Session(&gorm.Session{Logger: newLogger(writer)})

	err = session.Where("id = ? AND owner_id = ?", 1, 2).First(&entity.Todo{}).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, writer.lines)

	var count int64
	err = session.Raw("SELECT COUNT(*) FROM missing_table").Scan(&count).Error
	assert.Error(t, err)
	if assert.Len(t, writer.lines, 1) {
		assert.Contains(t, writer.lines[0], "missing_table")
	}
}
