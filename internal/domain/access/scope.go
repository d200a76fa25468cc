package access

import "github.com/jhoicas/holdings-api/internal/domain/entity"

// AssignableCompanies devuelve las empresas a las que creator puede dirigir
// una tarea nueva. Igual que VisibleCompanies salvo que la CEO's Secretary
// también tiene acceso total al portafolio (crea tareas en nombre del CEO).
// Sin usuario: conjunto vacío (el caller debe ocultar el formulario).
func AssignableCompanies(creator *entity.User, companies []*entity.Company) []*entity.Company {
	if creator == nil {
		return []*entity.Company{}
	}
	switch creator.Role {
	case entity.RoleCEO, entity.RoleCEOSecretary:
		return append([]*entity.Company{}, companies...)
	default:
		if creator.CompanyID == "" {
			return []*entity.Company{}
		}
		out := make([]*entity.Company, 0, 1)
		for _, c := range companies {
			if c.ID == creator.CompanyID {
				out = append(out, c)
			}
		}
		return out
	}
}

// AssignableUsers devuelve los candidatos a asignado para una tarea creada
// por creator, a partir de la lista de usuarios aprobados.
//
//   - CEO y CEO's Secretary asignan a cualquier usuario aprobado.
//   - Un usuario de empresa asigna a {usuarios de su empresa} ∪ {CEO} ∪
//     {CEO's Secretary si existe}: toda empresa conserva una vía de
//     escalamiento hacia el CEO y siempre es destino válido para él.
//   - Sin usuario o sin empresa: conjunto vacío.
//
// El resultado se deduplica por ID preservando el orden de aparición.
func AssignableUsers(creator *entity.User, approved []*entity.User) []*entity.User {
	if creator == nil {
		return []*entity.User{}
	}
	switch creator.Role {
	case entity.RoleCEO, entity.RoleCEOSecretary:
		return dedupeUsers(approved)
	default:
		if creator.CompanyID == "" {
			return []*entity.User{}
		}
		out := make([]*entity.User, 0, len(approved))
		for _, u := range approved {
			if u.CompanyID == creator.CompanyID {
				out = append(out, u)
			}
		}
		for _, u := range approved {
			if u.Role == entity.RoleCEO || u.Role == entity.RoleCEOSecretary {
				out = append(out, u)
			}
		}
		return dedupeUsers(out)
	}
}

func dedupeUsers(users []*entity.User) []*entity.User {
	seen := make(map[string]struct{}, len(users))
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}
	return out
}
