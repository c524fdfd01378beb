package postgres

import (
	"context"
	"fmt"

	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo contador atómico por clave sobre PostgreSQL.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next incrementa y devuelve el valor del contador en una sola sentencia
// (upsert + increment + RETURNING); crea el contador si no existe.
func (r *CounterRepo) Next(key string) (int64, error) {
	query := `
		INSERT INTO counters (key, seq, updated_at)
		VALUES ($1, 1, now())
		ON CONFLICT (key) DO UPDATE SET seq = counters.seq + 1, updated_at = now()
		RETURNING seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, key).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next counter %q: %w", key, err)
	}
	return seq, nil
}
