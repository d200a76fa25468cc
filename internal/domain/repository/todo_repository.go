package repository

import (
	"context"

	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// TodoRepository define el puerto del almacén de tareas. Detrás puede estar
// la tabla kv_store local (PostgreSQL) o el servicio key/value alojado (HTTP);
// ambos comparten el formato de registro {key: "todo_<id>", value: <todo>}.
//
// Upsert reemplaza el registro completo por clave (merge-duplicates): el
// caller debe reenviar la tarea entera, nunca un parche parcial, para no
// perder adjuntos ni metadatos en la escritura.
type TodoRepository interface {
	List(ctx context.Context) ([]*entity.Todo, error)
	Upsert(ctx context.Context, todo *entity.Todo) error
}
