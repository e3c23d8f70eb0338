package dto

import (
	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/registers/stock"
)

// --- Request DTOs ---

// StockDeltaRequest is one line of a batch stock update. ProductID is a
// pointer on purpose: desktop clients send half-filled grids and a nil
// entry must be skipped, not rejected.
type StockDeltaRequest struct {
	ProductID *string        `json:"productId"`
	Quantity  types.Quantity `json:"quantity"`
}

// StockBatchRequest is the request body for /stock/sale and /stock/purchase.
type StockBatchRequest struct {
	Deltas []StockDeltaRequest `json:"deltas" binding:"required"`
}

// ToDeltas converts the request lines to domain deltas. Unparseable
// product ids become nil entries so the service reports them per-line.
func (r *StockBatchRequest) ToDeltas() []stock.Delta {
	deltas := make([]stock.Delta, 0, len(r.Deltas))
	for _, d := range r.Deltas {
		var pid *id.ID
		if d.ProductID != nil {
			if parsed, err := id.Parse(*d.ProductID); err == nil {
				pid = &parsed
			}
		}
		deltas = append(deltas, stock.Delta{ProductID: pid, Quantity: d.Quantity})
	}
	return deltas
}

// --- Response DTOs ---

// StockBatchResponse reports the per-entry outcome of a batch update.
type StockBatchResponse struct {
	Results []stock.DeltaResult `json:"results"`
	Applied int                 `json:"applied"`
	Skipped int                 `json:"skipped"`
}

// NewStockBatchResponse builds the response with counters filled.
func NewStockBatchResponse(results []stock.DeltaResult) StockBatchResponse {
	resp := StockBatchResponse{Results: results}
	for _, r := range results {
		if r.Applied {
			resp.Applied++
		} else {
			resp.Skipped++
		}
	}
	return resp
}

// LowStockResponse lists products at or below their reorder threshold.
type LowStockResponse struct {
	Items []stock.LowStockItem `json:"items"`
	Count int                  `json:"count"`
}
