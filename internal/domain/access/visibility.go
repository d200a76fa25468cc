// Package access implementa el núcleo de permisos del holding: qué tareas
// puede ver cada usuario, qué empresas puede recorrer y a quién puede asignar
// trabajo. Todas las funciones son totales: para cualquier entrada bien
// tipada devuelven un bool o una lista, nunca un error. Las denegaciones se
// expresan como conjuntos vacíos, no como fallos.
package access

import "github.com/jhoicas/holdings-api/internal/domain/entity"

// CEORef identifica al CEO canónico para las reglas que lo referencian
// (la Secretary solo ve tareas dirigidas al CEO o creadas por él).
// El ID estable es la identidad; el nombre queda como respaldo para
// registros legados del store que no traen IDs.
type CEORef struct {
	ID       string
	FullName string
}

// CEORefFrom construye la referencia a partir del usuario CEO. Acepta nil.
func CEORefFrom(ceo *entity.User) CEORef {
	if ceo == nil {
		return CEORef{}
	}
	return CEORef{ID: ceo.ID, FullName: ceo.FullName()}
}

// matches compara una referencia (id estable + nombre desnormalizado) de un
// todo contra la referencia al CEO. El ID manda; el nombre solo aplica
// cuando el registro no trae ID.
func (c CEORef) matches(refID, refName string) bool {
	if refID != "" && c.ID != "" {
		return refID == c.ID
	}
	return refName != "" && refName == c.FullName
}

// CanView decide si user puede ver todo. Reglas, en orden:
//
//   - sin usuario: denegado.
//   - CEO: ve todo el portafolio, incluidas tareas de nivel holding.
//   - Secretary: solo tareas asignadas al CEO o creadas por él; no ve las de
//     su propia empresa.
//   - CEO's Secretary y Manager con empresa: aislamiento estricto por empresa.
//   - usuario con empresa: solo tareas de su empresa (nunca Holdings ni otras).
//   - resto (sin empresa y sin rol elevado): denegado. Ese usuario obtiene
//     listas vacías a propósito; es contención, no un bug.
func CanView(user *entity.User, todo *entity.Todo, ceo CEORef) bool {
	if user == nil || todo == nil {
		return false
	}
	switch user.Role {
	case entity.RoleCEO:
		return true
	case entity.RoleSecretary:
		return ceo.matches(todo.AssignedToID, todo.AssignedTo) ||
			ceo.matches(todo.AssignedByID, todo.AssignedBy)
	case entity.RoleCEOSecretary, entity.RoleManager, entity.RoleUser:
		if user.CompanyID != "" {
			return todo.CompanyID == user.CompanyID
		}
		return false
	default:
		return false
	}
}

// VisibleTodos devuelve el subconjunto de todos que user puede ver.
// No muta la entrada; el orden relativo se preserva.
func VisibleTodos(user *entity.User, todos []*entity.Todo, ceo CEORef) []*entity.Todo {
	out := make([]*entity.Todo, 0, len(todos))
	for _, t := range todos {
		if CanView(user, t, ceo) {
			out = append(out, t)
		}
	}
	return out
}

// VisibleCompanies devuelve las empresas que user puede recorrer o usar como
// filtro. CEO: todas. Secretary: ninguna (no gestiona empresas). Usuario con
// empresa: solo la suya. Resto: ninguna.
func VisibleCompanies(user *entity.User, companies []*entity.Company) []*entity.Company {
	if user == nil {
		return []*entity.Company{}
	}
	switch user.Role {
	case entity.RoleCEO:
		return append([]*entity.Company{}, companies...)
	case entity.RoleSecretary:
		return []*entity.Company{}
	default:
		if user.CompanyID == "" {
			return []*entity.Company{}
		}
		out := make([]*entity.Company, 0, 1)
		for _, c := range companies {
			if c.ID == user.CompanyID {
				out = append(out, c)
			}
		}
		return out
	}
}
