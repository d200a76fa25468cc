// Package remote implementa el puerto TodoRepository contra el servicio
// key/value alojado. Es el mismo formato de registro que la tabla kv_store
// local; el backend se elige por configuración (TODO_BACKEND).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/internal/domain/repository"
	"github.com/jhoicas/holdings-api/internal/infrastructure/kvstore"
)

var _ repository.TodoRepository = (*TodoClient)(nil)

// TodoClient habla con el servicio key/value por HTTP. Todas las llamadas
// comparten un único http.Client configurable; el timeout por defecto es
// corto porque el servicio está en la ruta de carga del dashboard y ante
// una caída se prefiere caer rápido al cache local.
type TodoClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configura el cliente del servicio de tareas.
type Option func(*TodoClient)

// WithHTTPClient reemplaza el http.Client por defecto (timeouts, transporte
// instrumentado, etc.).
func WithHTTPClient(c *http.Client) Option {
	return func(t *TodoClient) { t.httpClient = c }
}

// NewTodoClient construye el cliente del servicio key/value. apiKey viaja en
// el header "apikey" de cada request; puede ser vacío para despliegues sin
// autenticación de servicio.
func NewTodoClient(baseURL, apiKey string, opts ...Option) *TodoClient {
	c := &TodoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List descarga todos los registros del namespace de tareas. Entradas con
// otras claves se ignoran; un value malformado aborta la lectura completa
// para no devolver un snapshot parcial.
func (c *TodoClient) List(ctx context.Context) ([]*entity.Todo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/todos", nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listar tareas remotas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var records []kvstore.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decodificar respuesta: %w", err)
	}

	todos := make([]*entity.Todo, 0, len(records))
	for _, rec := range records {
		if !rec.IsTodo() {
			continue
		}
		todo, err := kvstore.DecodeTodo(rec.Value)
		if err != nil {
			return nil, fmt.Errorf("decodificar tarea %s: %w", rec.Key, err)
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

// Upsert envía el registro completo de la tarea (merge-duplicates por clave).
func (c *TodoClient) Upsert(ctx context.Context, todo *entity.Todo) error {
	rec, err := kvstore.EncodeTodo(todo)
	if err != nil {
		return fmt.Errorf("codificar tarea: %w", err)
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializar registro: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/todos", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("guardar tarea remota: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.statusError(resp)
	}
	return nil
}

func (c *TodoClient) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
}

func (c *TodoClient) statusError(resp *http.Response) error {
	// Leer un fragmento del body para diagnóstico; el servicio devuelve
	// mensajes cortos de error en texto o JSON.
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("servicio de tareas respondió %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
}
