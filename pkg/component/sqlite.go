package component

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// sqliteLoader reads the components table of a SQLite database.
type sqliteLoader struct {
	db *sql.DB
}

func newSQLite(path string) (*sqliteLoader, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return &sqliteLoader{db: db}, nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

func (l *sqliteLoader) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

func (l *sqliteLoader) Load() ([]Component, error) {
	rows, err := l.db.Query(`
		SELECT indice, nome, Tb, MM, alpha_ref, dens_liq, dens_vap, viscosidade, tensao_superficial
		FROM components ORDER BY indice`)
	if err != nil {
		return nil, fmt.Errorf("query components: %w", err)
	}
	defer rows.Close()

	var comps []Component
	for rows.Next() {
		var (
			c                         Component
			tb, mm, alpha, rhoL, rhoV sql.NullFloat64
			mu, sigma                 sql.NullFloat64
		)
		if err := rows.Scan(&c.Index, &c.Name, &tb, &mm, &alpha, &rhoL, &rhoV, &mu, &sigma); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		c.Tb = tb.Float64
		c.MolarMass = mm.Float64
		c.AlphaRef = alpha.Float64
		c.LiquidDensity = rhoL.Float64
		c.VaporDensity = rhoV.Float64
		c.Viscosity = mu.Float64
		c.SurfaceTension = sigma.Float64
		comps = append(comps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate components: %w", err)
	}
	if len(comps) == 0 {
		return nil, ErrEmpty
	}
	Sort(comps)
	return comps, nil
}

// WriteSQLite creates (or replaces the rows of) the components table in the
// database at path.
func WriteSQLite(path string, comps []Component) error {
	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM components`); err != nil {
		_ = tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO components (indice, nome, Tb, MM, alpha_ref, dens_liq, dens_vap, viscosidade, tensao_superficial)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, c := range comps {
		if _, err := stmt.Exec(c.Index, c.Name,
			nullable(c.Tb), nullable(c.MolarMass), nullable(c.AlphaRef),
			nullable(c.LiquidDensity), nullable(c.VaporDensity),
			nullable(c.Viscosity), nullable(c.SurfaceTension),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %q: %w", c.Name, err)
		}
	}
	return tx.Commit()
}

// nullable stores unset (zero) properties as NULL.
func nullable(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v != 0}
}
