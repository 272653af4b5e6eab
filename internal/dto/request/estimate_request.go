package request

import "wave-estimates-backend/internal/models"

const defaultQuantity = 1

// LineItemRequest is one priced line of an estimate. ItemID only records
// which catalog item the line was copied from.
type LineItemRequest struct {
	ItemID      *uint   `json:"item_id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    *int    `json:"quantity"`
	Price       float64 `json:"price"`
}

// ResolveQuantity applies the default of 1 when the client left quantity out.
// An explicit 0 is kept.
func (r LineItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return defaultQuantity
	}
	return *r.Quantity
}

func (r LineItemRequest) ToModel() models.LineItem {
	return models.LineItem{
		ItemID:      r.ItemID,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.ResolveQuantity(),
		Price:       r.Price,
	}
}

// ToLineItems converts request lines to models. A nil input stays nil.
func ToLineItems(lines []LineItemRequest) []models.LineItem {
	if lines == nil {
		return nil
	}
	out := make([]models.LineItem, 0, len(lines))
	for _, li := range lines {
		out = append(out, li.ToModel())
	}
	return out
}

// EstimateCreateRequest is the POST /estimates payload. Pointer fields tell
// "absent" apart from an explicit value so defaults apply only when omitted.
type EstimateCreateRequest struct {
	Number     *string           `json:"number"`
	Date       *string           `json:"date"`
	ValidUntil *string           `json:"valid_until"`
	Status     *string           `json:"status"`
	Type       *string           `json:"type"`
	CustomerID *uint             `json:"customer_id"`
	Notes      string            `json:"notes"`
	Items      []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// ResolveStatus returns the requested status or "Draft".
func (r EstimateCreateRequest) ResolveStatus() string {
	if r.Status == nil {
		return models.StatusDraft
	}
	return *r.Status
}

// ResolveType returns the requested type or "draft".
func (r EstimateCreateRequest) ResolveType() string {
	if r.Type == nil {
		return models.TypeDraft
	}
	return *r.Type
}

// EstimateUpdateRequest is the PUT /estimates/{id} payload. Nil fields are
// left unchanged. Items replaces every line when present, even as [];
// omitted or null keeps the current lines.
type EstimateUpdateRequest struct {
	Date       *string           `json:"date"`
	ValidUntil *string           `json:"valid_until"`
	Status     *string           `json:"status"`
	Type       *string           `json:"type"`
	CustomerID *uint             `json:"customer_id"`
	Notes      *string           `json:"notes"`
	Items      []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// Changes lists the scalar columns to write.
func (r EstimateUpdateRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Date != nil {
		changes["date"] = *r.Date
	}
	if r.ValidUntil != nil {
		changes["valid_until"] = *r.ValidUntil
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.Type != nil {
		changes["type"] = *r.Type
	}
	if r.CustomerID != nil {
		changes["customer_id"] = *r.CustomerID
	}
	if r.Notes != nil {
		changes["notes"] = *r.Notes
	}
	return changes
}

// ReplacesItems reports whether the payload carried an items list.
func (r EstimateUpdateRequest) ReplacesItems() bool {
	return r.Items != nil
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// EstimateListQuery binds the GET /estimates query string.
type EstimateListQuery struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Customer string `form:"customer"`
	Search   string `form:"search"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}
