package usecase

import (
	"sort"
	"time"

	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// sortTodos ordena por fecha de creación descendente (empate por ID) para que
// los listados sean deterministas aunque la caché sea un map.
func sortTodos(todos []*entity.Todo) {
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID < todos[j].ID
	})
}

// fallbackTodos es el dataset estático que siembra la caché cuando el store
// remoto no responde y aún no hay estado local: el tablero de demostración
// sigue funcionando sin red. Nunca se escribe de vuelta al store.
func fallbackTodos() []*entity.Todo {
	day := func(d int) time.Time { return time.Date(2025, time.September, d, 0, 0, 0, 0, time.UTC) }
	return []*entity.Todo{
		{
			ID:          "demo-1",
			Title:       "Complete Q4 Financial Report",
			Description: "Prepare comprehensive financial analysis and projections for the fourth quarter",
			Priority:    entity.PriorityHigh,
			DueDate:     day(20),
			CreatedAt:   day(15),
			AssignedBy:  "Sarah Johnson",
			AssignedTo:  "Michael Roberts",
			CompanyID:   "2",
			CompanyName: "Global Finance Corp",
			Attachments: []entity.Attachment{
				{ID: "att-1", Name: "Q3_Financial_Template.xlsx", Type: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Size: 2458976},
				{ID: "att-2", Name: "Budget_Guidelines.pdf", Type: "application/pdf", Size: 1024000},
			},
		},
		{
			ID:          "demo-2",
			Title:       "Update Security Protocols",
			Description: "Review and implement new cybersecurity measures across all systems",
			Priority:    entity.PriorityHigh,
			DueDate:     day(16),
			CreatedAt:   day(10),
			AssignedBy:  "Mike Chen",
			AssignedTo:  "Alex Thompson",
			CompanyID:   "1",
			CompanyName: "TechVision Inc",
		},
		{
			ID:          "demo-3",
			Title:       "Inventory Management Review",
			Description: "Analyze current inventory levels and optimize stock management",
			Priority:    entity.PriorityMedium,
			DueDate:     day(25),
			CreatedAt:   day(18),
			AssignedBy:  "Lisa Rodriguez",
			AssignedTo:  "Jennifer Kim",
			CompanyID:   "3",
			CompanyName: "Retail Solutions Ltd",
		},
		{
			ID:          "demo-4",
			Title:       "Board Meeting Preparation",
			Description: "Prepare quarterly board meeting materials and financial presentations",
			Priority:    entity.PriorityHigh,
			DueDate:     day(21),
			CreatedAt:   day(14),
			AssignedBy:  "Robert Thompson",
			AssignedTo:  "John Smith",
			CompanyID:   "",
			CompanyName: entity.HoldingsName,
		},
		{
			ID:          "demo-5",
			Title:       "Equipment Maintenance Schedule",
			Description: "Plan and schedule routine maintenance for manufacturing equipment",
			Priority:    entity.PriorityMedium,
			DueDate:     day(15),
			CreatedAt:   day(8),
			AssignedBy:  "David Park",
			AssignedTo:  "Robert Martinez",
			CompanyID:   "4",
			CompanyName: "Manufacturing Pro",
		},
	}
}
