package domain

import (
	"fmt"
	"strconv"
)

type CabinClass int

const (
	Economy  CabinClass = 1
	Business CabinClass = 2
	First    CabinClass = 3
)

// CabinClasses lists the classes in menu order.
func CabinClasses() []CabinClass {
	return []CabinClass{Economy, Business, First}
}

func (c CabinClass) Valid() bool {
	return c >= Economy && c <= First
}

func (c CabinClass) String() string {
	switch c {
	case Economy:
		return "Economy"
	case Business:
		return "Business"
	case First:
		return "First"
	default:
		return fmt.Sprintf("CabinClass(%d)", int(c))
	}
}

// PriceBand is an open interval: both bounds are excluded.
type PriceBand struct {
	Min float64
	Max float64
}

func (b PriceBand) Contains(price float64) bool {
	return price > b.Min && price < b.Max
}

var priceBands = map[CabinClass]PriceBand{
	Economy:  {Min: 50, Max: 250},
	Business: {Min: 250, Max: 500},
	First:    {Min: 500, Max: 1000},
}

func PriceBandFor(c CabinClass) (PriceBand, bool) {
	b, ok := priceBands[c]
	return b, ok
}

// Route is bound to a ship name by its first ticket and reused afterwards.
type Route struct {
	Departure   string
	Destination string `validate:"nefield=Departure"`
	Date        string `validate:"voyagedate"`
}

type Ticket struct {
	ID          int
	PassengerID int
	ShipName    string
	Route       Route
	CabinClass  CabinClass
	Price       float64
}

// FormatPrice renders a price the way the ledger files and the console show it:
// six significant digits, so sums such as 100.1+200.2 print as 300.3.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'g', 6, 64)
}
