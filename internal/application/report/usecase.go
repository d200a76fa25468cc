package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/application/usecase"
	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// ReportUseCase genera el reporte PDF de tareas del usuario solicitante.
// Reusa el listado del caso de uso de tareas, así el reporte respeta
// exactamente la misma visibilidad y los mismos filtros que el tablero.
type ReportUseCase struct {
	todos     *usecase.TodoUseCase
	generator TaskReportGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(todos *usecase.TodoUseCase, generator TaskReportGenerator) *ReportUseCase {
	return &ReportUseCase{todos: todos, generator: generator}
}

// DownloadTaskReport lista las tareas visibles para requester con los filtros
// dados y genera el PDF. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ReportUseCase) DownloadTaskReport(ctx context.Context, requester *entity.User, filter dto.TodoFilterRequest) ([]byte, string, error) {
	if requester == nil {
		return nil, "", domain.ErrUnauthorized
	}
	list, err := uc.todos.List(ctx, requester, filter)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar tareas: %w", err)
	}

	summary := Summary{Pending: len(list.Pending), Completed: len(list.Completed)}
	rows := make([]TaskRow, 0, len(list.Pending)+len(list.Completed))
	for _, t := range list.Pending {
		status := "Pendiente"
		if t.Overdue {
			status = "Vencida"
			summary.Overdue++
		}
		rows = append(rows, toRow(t, status))
	}
	for _, t := range list.Completed {
		rows = append(rows, toRow(t, "Completada"))
	}

	title := "Reporte de tareas"
	pdf, err := uc.generator.GenerateTaskReport(ctx, title, requester.FullName(), summary, rows)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("tareas_%s.pdf", time.Now().Format("20060102"))
	return pdf, filename, nil
}

func toRow(t dto.TodoResponse, status string) TaskRow {
	due := ""
	if !t.DueDate.IsZero() {
		due = t.DueDate.Format("2006-01-02")
	}
	return TaskRow{
		Title:       t.Title,
		CompanyName: t.CompanyName,
		Priority:    t.Priority,
		AssignedTo:  t.AssignedTo,
		DueDate:     due,
		Status:      status,
	}
}
