package request

import (
	"strings"

	"mechmarket/internal/domain/entities"
)

// ActorRequest identifies who performs a mutation. Every write endpoint
// carries it; authorization decisions happen in the use cases.
type ActorRequest struct {
	ActorID   string `json:"actor_id" binding:"required"`
	ActorRole string `json:"actor_role" binding:"required"`
}

func (r ActorRequest) ToActor() entities.Actor {
	return entities.Actor{
		ID:   strings.TrimSpace(r.ActorID),
		Role: entities.ActorRole(strings.ToLower(strings.TrimSpace(r.ActorRole))),
	}
}
