package response

import (
	"encoding/json"
	"time"

	"wave-estimates-backend/internal/models"
	"wave-estimates-backend/internal/money"
)

type LineItemResponse struct {
	ID          uint    `json:"id"`
	ItemID      *uint   `json:"item_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// EstimateResponse is the assembled read shape of an estimate: the customer
// name is denormalized and the amount is derived from the current lines.
type EstimateResponse struct {
	ID          uint               `json:"id"`
	Number      string             `json:"number"`
	Date        string             `json:"date"`
	ValidUntil  string             `json:"valid_until"`
	Status      string             `json:"status"`
	Type        string             `json:"type"`
	Customer    string             `json:"customer"`
	Amount      string             `json:"amount"`
	Notes       string             `json:"notes"`
	CustomerID  *uint              `json:"customer_id"`
	CustomerObj *CustomerResponse  `json:"customer_obj"`
	Items       []LineItemResponse `json:"items"`
}

func FromLineItem(li models.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		ItemID:      li.ItemID,
		Name:        li.Name,
		Description: li.Description,
		Quantity:    li.Quantity,
		Price:       li.Price,
	}
}

// FromEstimate expects Customer and LineItems to be loaded.
func FromEstimate(e models.Estimate) EstimateResponse {
	res := EstimateResponse{
		ID:         e.ID,
		Number:     e.Number,
		Date:       e.Date,
		ValidUntil: e.ValidUntil,
		Status:     e.Status,
		Type:       e.Type,
		Customer:   e.CustomerName(),
		Amount:     money.Format(e.Total()),
		Notes:      e.Notes,
		CustomerID: e.CustomerID,
		Items:      make([]LineItemResponse, 0, len(e.LineItems)),
	}
	if e.Customer != nil {
		c := FromCustomer(*e.Customer)
		res.CustomerObj = &c
	}
	for _, li := range e.LineItems {
		res.Items = append(res.Items, FromLineItem(li))
	}
	return res
}

func FromEstimates(es []models.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}

type EstimateEventResponse struct {
	ID             string          `json:"id"`
	EstimateID     uint            `json:"estimate_id"`
	EstimateNumber string          `json:"estimate_number"`
	Action         string          `json:"action"`
	Details        json.RawMessage `json:"details,omitempty"`
	RequestID      string          `json:"request_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FromEstimateEvent(ev models.EstimateEvent) EstimateEventResponse {
	res := EstimateEventResponse{
		ID:             ev.ID.String(),
		EstimateID:     ev.EstimateID,
		EstimateNumber: ev.EstimateNumber,
		Action:         ev.Action,
		RequestID:      ev.RequestID,
		CreatedAt:      ev.CreatedAt,
	}
	if len(ev.Details) > 0 {
		res.Details = json.RawMessage(ev.Details)
	}
	return res
}

func FromEstimateEvents(evs []models.EstimateEvent) []EstimateEventResponse {
	out := make([]EstimateEventResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, FromEstimateEvent(ev))
	}
	return out
}
