package report

import "context"

// TaskRow es una fila del reporte de tareas, ya resuelta a strings de
// presentación (el generador no conoce entidades de dominio).
type TaskRow struct {
	Title       string
	CompanyName string
	Priority    string
	AssignedTo  string
	DueDate     string
	Status      string // Pendiente, Vencida, Completada
}

// Summary totales del encabezado del reporte.
type Summary struct {
	Pending   int
	Overdue   int
	Completed int
}

// TaskReportGenerator define el puerto de salida para la generación del PDF.
// La implementación concreta usa Maroto; para tests se puede inyectar un mock.
type TaskReportGenerator interface {
	GenerateTaskReport(ctx context.Context, title, owner string, summary Summary, rows []TaskRow) ([]byte, error)
}
