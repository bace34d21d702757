package store

import (
	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/shopspring/decimal"
)

// Cart holds the line items of one shopper together with the cart drawer state.
// It is not safe for concurrent use; callers serialise access.
type Cart struct {
	lines            []models.CartLine
	isOpen           bool
	animationTrigger int
	lastAddedID      int
}

// NewCart creates an empty, closed cart.
func NewCart() *Cart {
	return &Cart{lines: []models.CartLine{}}
}

func (c *Cart) Open() {
	c.isOpen = true
}

func (c *Cart) Close() {
	c.isOpen = false
}

func (c *Cart) IsOpen() bool {
	return c.isOpen
}

// Add puts one unit of product in the cart. A product already present gets its
// quantity bumped; a new one is appended with quantity 1.
func (c *Cart) Add(product models.Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, models.CartLine{Product: product, Quantity: 1})
	}
	c.lastAddedID = product.ID
	c.animationTrigger++
}

// Remove deletes the line for productID. Unknown ids are ignored.
func (c *Cart) Remove(productID int) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) IncreaseQuantity(productID int) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity++
	}
}

// DecreaseQuantity takes one unit off the line for productID and drops the line
// once nothing is left.
func (c *Cart) DecreaseQuantity(productID int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.lines[i].Quantity--
	if c.lines[i].Quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Clear empties the cart. The drawer stays as it was.
func (c *Cart) Clear() {
	c.lines = []models.CartLine{}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Quantity reports how many units of productID are in the cart, 0 when absent.
func (c *Cart) Quantity(productID int) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// TotalItems is the number of units across all lines.
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// AnimationTrigger increases on every Add. Presentation code watches it to
// play the "added to cart" feedback.
func (c *Cart) AnimationTrigger() int {
	return c.animationTrigger
}

// LastAddedProductID is the id passed to the latest Add, 0 before any.
func (c *Cart) LastAddedProductID() int {
	return c.lastAddedID
}

func (c *Cart) Snapshot() models.CartSnapshot {
	return models.CartSnapshot{
		Lines:              c.Lines(),
		IsOpen:             c.isOpen,
		AnimationTrigger:   c.animationTrigger,
		LastAddedProductID: c.lastAddedID,
	}
}

// RestoreCart rebuilds a cart from a snapshot. Lines with a quantity below 1
// are dropped and only the first line of a repeated product id is kept.
func RestoreCart(s models.CartSnapshot) *Cart {
	c := NewCart()
	for _, l := range s.Lines {
		if l.Quantity < 1 || c.indexOf(l.Product.ID) >= 0 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	c.isOpen = s.IsOpen
	if s.AnimationTrigger > 0 {
		c.animationTrigger = s.AnimationTrigger
	}
	c.lastAddedID = s.LastAddedProductID
	return c
}

func (c *Cart) indexOf(productID int) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}
