package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jfarias/avicontrol/internal/model"
)

// SQLiteStore implements Store using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// migration is one versioned schema step.
type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS lotes_snapshot (
			id_lote INTEGER PRIMARY KEY,
			nombre_lote TEXT NOT NULL,
			cantidad_inicial INTEGER NOT NULL,
			fecha_inicio TEXT NOT NULL,
			fecha_estimada_salida TEXT,
			estado TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS clientes_snapshot (
			id_cliente INTEGER PRIMARY KEY,
			nombre TEXT NOT NULL,
			telefono TEXT,
			direccion TEXT,
			estado TEXT NOT NULL
		);

		INSERT INTO schema_version (version) VALUES (1);
		`,
	},
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// WAL keeps snapshot writes from blocking the UI's reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// loteRow is the sqlx scan target for lotes_snapshot.
type loteRow struct {
	ID                int    `db:"id_lote"`
	Name              string `db:"nombre_lote"`
	InitialQuantity   int    `db:"cantidad_inicial"`
	StartDate         string `db:"fecha_inicio"`
	EstimatedExitDate string `db:"fecha_estimada_salida"`
	Estado            string `db:"estado"`
}

// SaveLotes replaces the batch snapshot in one transaction.
func (s *SQLiteStore) SaveLotes(ctx context.Context, lotes []model.Lote) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM lotes_snapshot"); err != nil {
		return fmt.Errorf("clearing batch snapshot: %w", err)
	}

	const query = `
		INSERT INTO lotes_snapshot (
			id_lote, nombre_lote, cantidad_inicial,
			fecha_inicio, fecha_estimada_salida, estado
		) VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for _, l := range lotes {
		_, err = stmt.ExecContext(ctx,
			l.ID, l.Name, l.InitialQuantity,
			l.StartDate.String(), l.EstimatedExitDate.String(), l.Estado,
		)
		if err != nil {
			return fmt.Errorf("inserting batch %d: %w", l.ID, err)
		}
	}

	return tx.Commit()
}

// LoadLotes returns the persisted batch snapshot, newest first.
func (s *SQLiteStore) LoadLotes(ctx context.Context) ([]model.Lote, error) {
	var rows []loteRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id_lote, nombre_lote, cantidad_inicial,
		        fecha_inicio, COALESCE(fecha_estimada_salida, '') AS fecha_estimada_salida, estado
		 FROM lotes_snapshot ORDER BY fecha_inicio DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("loading batch snapshot: %w", err)
	}

	lotes := make([]model.Lote, 0, len(rows))
	for _, r := range rows {
		l := model.Lote{
			ID:              r.ID,
			Name:            r.Name,
			InitialQuantity: r.InitialQuantity,
			Estado:          r.Estado,
		}
		if r.StartDate != "" {
			if d, err := model.ParseDate(r.StartDate); err == nil {
				l.StartDate = d
			}
		}
		if r.EstimatedExitDate != "" {
			if d, err := model.ParseDate(r.EstimatedExitDate); err == nil {
				l.EstimatedExitDate = d
			}
		}
		lotes = append(lotes, l)
	}
	return lotes, nil
}

// clienteRow is the sqlx scan target for clientes_snapshot.
type clienteRow struct {
	ID      int    `db:"id_cliente"`
	Name    string `db:"nombre"`
	Phone   string `db:"telefono"`
	Address string `db:"direccion"`
	Estado  string `db:"estado"`
}

// SaveClientes replaces the customer snapshot in one transaction.
func (s *SQLiteStore) SaveClientes(ctx context.Context, clientes []model.Cliente) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM clientes_snapshot"); err != nil {
		return fmt.Errorf("clearing customer snapshot: %w", err)
	}

	const query = `
		INSERT INTO clientes_snapshot (
			id_cliente, nombre, telefono, direccion, estado
		) VALUES (?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range clientes {
		_, err = stmt.ExecContext(ctx, c.ID, c.Name, c.Phone, c.Address, c.Estado)
		if err != nil {
			return fmt.Errorf("inserting customer %d: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// LoadClientes returns the persisted customer snapshot.
func (s *SQLiteStore) LoadClientes(ctx context.Context) ([]model.Cliente, error) {
	var rows []clienteRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id_cliente, nombre,
		        COALESCE(telefono, '') AS telefono,
		        COALESCE(direccion, '') AS direccion,
		        estado
		 FROM clientes_snapshot ORDER BY nombre`,
	)
	if err != nil {
		return nil, fmt.Errorf("loading customer snapshot: %w", err)
	}

	clientes := make([]model.Cliente, 0, len(rows))
	for _, r := range rows {
		clientes = append(clientes, model.Cliente{
			ID:      r.ID,
			Name:    r.Name,
			Phone:   r.Phone,
			Address: r.Address,
			Estado:  r.Estado,
		})
	}
	return clientes, nil
}
