package entities

// ActorRole identifies which side of the marketplace is invoking an operation.
//
// Authorization is role + identity based: most transitions additionally require
// the actor ID to match the job's customer or assigned mechanic.

type ActorRole string

const (
	ActorRoleCustomer ActorRole = "customer"
	ActorRoleMechanic ActorRole = "mechanic"
	ActorRoleAdmin    ActorRole = "admin"
)

// Actor is the authenticated party invoking a workflow operation.
type Actor struct {
	ID   string    `json:"id"`
	Role ActorRole `json:"role"`
}

func (r ActorRole) IsValid() bool {
	switch r {
	case ActorRoleCustomer, ActorRoleMechanic, ActorRoleAdmin:
		return true
	}
	return false
}
