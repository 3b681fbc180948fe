package migrator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

var (
	ErrUnknownCommand = errors.New("migrator: unknown command")
	ErrMigrate        = errors.New("migrator: migration failed")
)

// Logger интерфейс логгера (printf-стиль)
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Migrator применяет встроенные SQL миграции через goose
type Migrator struct {
	db     *sql.DB
	fsys   fs.FS
	logger Logger
}

// New создает мигратор поверх файловой системы с *.sql файлами в корне
func New(db *sql.DB, fsys fs.FS, logger Logger) *Migrator {
	return &Migrator{db: db, fsys: fsys, logger: logger}
}

// Run выполняет команду goose: up, down, status, version
func (m *Migrator) Run(ctx context.Context, command string) error {
	goose.SetBaseFS(m.fsys)
	goose.SetLogger(gooseLogger{m.logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrate, err)
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, m.db, ".")
	case "down":
		err = goose.DownContext(ctx, m.db, ".")
	case "status":
		err = goose.StatusContext(ctx, m.db, ".")
	case "version":
		err = goose.VersionContext(ctx, m.db, ".")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMigrate, command, err)
	}
	return nil
}

// Up применяет все новые миграции
func (m *Migrator) Up(ctx context.Context) error {
	return m.Run(ctx, "up")
}

// gooseLogger адаптер Logger к goose.Logger
type gooseLogger struct {
	l Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Info(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Error(format, v...)
}
