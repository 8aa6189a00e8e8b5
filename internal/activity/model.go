package activity

import (
	"encoding/json"
	"time"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Known actions. Each carries its own details payload shape.
const (
	ActionStockReceived = "STOCK_RECEIVED"
	ActionStockSold     = "STOCK_SOLD"
	ActionPriceUpdate   = "PRICE_UPDATE"
	ActionOrderPlaced   = "ORDER_PLACED"
)

// Entry is one append-only activity record.
type Entry struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  *int64          `json:"entityId,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Details is the typed payload attached to an entry, keyed by action.
type Details interface {
	activityDetails()
}

// StockReceivedDetails accompanies ActionStockReceived.
type StockReceivedDetails struct {
	Quantity    int    `json:"quantity"`
	ProductName string `json:"productName"`
}

// StockSoldDetails accompanies ActionStockSold.
type StockSoldDetails struct {
	Quantity    int    `json:"quantity"`
	ProductName string `json:"productName"`
}

// PriceUpdateDetails accompanies ActionPriceUpdate.
type PriceUpdateDetails struct {
	OldPrice    float64 `json:"oldPrice"`
	NewPrice    float64 `json:"newPrice"`
	ProductName string  `json:"productName"`
}

// OrderPlacedDetails accompanies ActionOrderPlaced.
type OrderPlacedDetails struct {
	PoNumber     string `json:"poNumber"`
	SupplierName string `json:"supplierName"`
}

// GenericDetails holds the payload of actions without a registered shape.
type GenericDetails map[string]any

func (StockReceivedDetails) activityDetails() {}
func (StockSoldDetails) activityDetails()     {}
func (PriceUpdateDetails) activityDetails()   {}
func (OrderPlacedDetails) activityDetails()   {}
func (GenericDetails) activityDetails()       {}

// DecodeDetails parses raw into the typed variant for the action. Unknown
// actions keep the raw object as GenericDetails.
func DecodeDetails(action string, raw json.RawMessage) (Details, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var (
		details Details
		err     error
	)
	switch action {
	case ActionStockReceived:
		var d StockReceivedDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ActionStockSold:
		var d StockSoldDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ActionPriceUpdate:
		var d PriceUpdateDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ActionOrderPlaced:
		var d OrderPlacedDetails
		err = json.Unmarshal(raw, &d)
		details = d
	default:
		var d GenericDetails
		err = json.Unmarshal(raw, &d)
		details = d
	}
	if err != nil {
		return nil, &shared.ValidationError{Message: "invalid details payload for action " + action}
	}
	return details, nil
}
