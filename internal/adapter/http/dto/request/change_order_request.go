package request

import "mechmarket/internal/domain/entities"

type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

type ProposeChangeOrderRequest struct {
	MechanicID                string            `json:"mechanic_id" binding:"required"`
	Reason                    string            `json:"reason" binding:"required"`
	LineItems                 []LineItemRequest `json:"line_items" binding:"required"`
	RequiresImmediateApproval bool              `json:"requires_immediate_approval"`
}

func (r ProposeChangeOrderRequest) ToLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, entities.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}
	return items
}

type DecideChangeOrderRequest struct {
	ActorRequest
	Decision string `json:"decision" binding:"required"`
}

type CancelChangeOrderRequest struct {
	ActorRequest
}
