package papertrade

// Holding is a position in one instrument. The invariant
// TotalInvested == Quantity × AverageCost holds after every mutation;
// buys move the average cost, sells never do.
type Holding struct {
	Quantity      Quantity `json:"quantity"`
	AverageCost   Money    `json:"avgPrice"`
	TotalInvested Money    `json:"totalInvested"`
}

// addLot folds a buy of quantity shares at price into the holding,
// recomputing the running weighted-average cost.
func (h Holding) addLot(quantity Quantity, price Money) Holding {
	invested := h.TotalInvested.Add(price.Mul(quantity))
	total := h.Quantity.Add(quantity)
	return Holding{
		Quantity:      total,
		AverageCost:   invested.Div(total),
		TotalInvested: invested,
	}
}

// removeLot takes a sell of quantity shares out of the holding. The average
// cost is untouched; the invested total follows the remaining quantity.
// Callers check the quantity bound first.
func (h Holding) removeLot(quantity Quantity) Holding {
	remaining := h.Quantity.Sub(quantity)
	return Holding{
		Quantity:      remaining,
		AverageCost:   h.AverageCost,
		TotalInvested: h.AverageCost.Mul(remaining),
	}
}
