// Package approval contiene el núcleo del flujo de aprobación de gastos:
// resolución de la secuencia efectiva de aprobadores, política de autorización
// de decisiones y condiciones de auto-aprobación.
package approval

import (
	"fmt"

	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// UserDirectory es el contrato mínimo que necesita el resolver para consultar
// el manager del empleado. Lo implementa repository.UserRepository; la interfaz
// estrecha permite testear el resolver sin persistencia.
type UserDirectory interface {
	GetByID(id string) (*entity.User, error)
}

// Resolver calcula la secuencia efectiva de aprobadores de un gasto.
// Una secuencia vacía es un resultado válido ("no hay aprobadores configurados").
type Resolver interface {
	EffectiveApprovers(expense *entity.Expense, rule *entity.ApprovalRule) ([]string, error)
}

// DynamicResolver recalcula la secuencia en CADA llamada a partir del estado
// actual de la regla y del manager del empleado; no persiste ni cachea nada.
//
// Esto es deliberado: cambios en la regla o en la asignación de manager afectan
// retroactivamente la secuencia de un gasto en vuelo, y CurrentApproverIndex
// puede pasar a señalar a otra persona entre dos llamadas. Riesgo de
// consistencia conocido; una estrategia con snapshot puede sustituirse detrás
// de la interfaz Resolver sin tocar el motor de decisiones.
type DynamicResolver struct {
	users UserDirectory
}

var _ Resolver = (*DynamicResolver)(nil)

// NewDynamicResolver construye el resolver con el directorio de usuarios.
func NewDynamicResolver(users UserDirectory) *DynamicResolver {
	return &DynamicResolver{users: users}
}

// EffectiveApprovers devuelve la secuencia ordenada de IDs que deben aprobar:
//
//  1. Parte de la lista base de la regla (orden preservado, duplicados incluidos).
//  2. Si IsManagerApprover y el empleado tiene manager, el manager ocupa la
//     posición 0 y se elimina cualquier otra ocurrencia suya en la lista base.
func (r *DynamicResolver) EffectiveApprovers(expense *entity.Expense, rule *entity.ApprovalRule) ([]string, error) {
	base := make([]string, 0, len(rule.Approvers)+1)
	base = append(base, rule.Approvers...)

	if !rule.IsManagerApprover {
		return base, nil
	}

	employee, err := r.users.GetByID(expense.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("resolver aprobadores: %w", err)
	}
	if employee == nil || employee.ManagerID == nil || *employee.ManagerID == "" {
		return base, nil
	}

	managerID := *employee.ManagerID
	seq := make([]string, 0, len(base)+1)
	seq = append(seq, managerID)
	for _, id := range base {
		if id != managerID {
			seq = append(seq, id)
		}
	}
	return seq, nil
}

// ApproverAt devuelve el aprobador en la posición index, o "" si el índice
// queda fuera de la secuencia (puede ocurrir cuando la secuencia cambió de
// forma entre llamadas).
func ApproverAt(approvers []string, index int) string {
	if index < 0 || index >= len(approvers) {
		return ""
	}
	return approvers[index]
}
