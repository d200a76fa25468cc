package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/internal/domain/repository"
	"github.com/jhoicas/holdings-api/internal/infrastructure/kvstore"
)

var _ repository.TodoRepository = (*TodoRepo)(nil)

// TodoRepo implementación del puerto TodoRepository sobre la tabla kv_store.
// El formato de registro es el mismo que expone el servicio key/value remoto,
// de modo que el backend local y el alojado son intercambiables por config.
type TodoRepo struct {
	pool *pgxpool.Pool
}

// NewTodoRepository construye el adaptador local del almacén de tareas.
func NewTodoRepository(pool *pgxpool.Pool) *TodoRepo {
	return &TodoRepo{pool: pool}
}

// List devuelve todas las tareas del namespace "todo_". Registros con JSON
// malformado se reportan como error; registros con campos faltantes se
// normalizan con los defaults del codec.
func (r *TodoRepo) List(ctx context.Context) ([]*entity.Todo, error) {
	query := `SELECT key, value FROM kv_store WHERE key LIKE $1 ORDER BY key`
	rows, err := r.pool.Query(ctx, query, kvstore.KeyPrefix+"%")
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []*entity.Todo
	for rows.Next() {
		var key string
		var value json.RawMessage
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan todo record: %w", err)
		}
		todo, err := kvstore.DecodeTodo(value)
		if err != nil {
			return nil, fmt.Errorf("decode todo %s: %w", key, err)
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// Upsert reemplaza el registro completo por clave (merge-duplicates).
func (r *TodoRepo) Upsert(ctx context.Context, todo *entity.Todo) error {
	rec, err := kvstore.EncodeTodo(todo)
	if err != nil {
		return fmt.Errorf("encode todo: %w", err)
	}
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, rec.Key, rec.Value); err != nil {
		return fmt.Errorf("upsert todo %s: %w", rec.Key, err)
	}
	return nil
}
