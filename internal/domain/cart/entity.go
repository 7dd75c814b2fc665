// internal/domain/cart/entity.go
package cart

// Item carries the display metadata captured when a product is added, so
// the cart renders without a catalog join. Size is optional: products with
// no size variants store nil.
type Item struct {
	ProductID  string  `json:"id"`
	Name       string  `json:"name"`
	Price      int64   `json:"price"` // unit price at time of adding
	Image      string  `json:"image,omitempty"`
	Size       *string `json:"size,omitempty"`
	Collection string  `json:"collection,omitempty"`
}

// Line is one cart entry. Identity is the (ProductID, Size) pair: two lines
// with the same pair are always merged, never duplicated. Qty is at least 1;
// a line reduced to zero is removed from the cart.
type Line struct {
	Item
	Qty int `json:"qty"`
}

// sameVariant reports whether two optional sizes refer to the same variant
func sameVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Owner identifies whose cart an operation targets: the anonymous browser
// session, or a named user namespace.
type Owner struct {
	SessionID string
	UserID    string
}

// SessionOwner returns the owner for an anonymous session cart
func SessionOwner(sessionID string) Owner {
	return Owner{SessionID: sessionID}
}

// UserOwner returns the owner for a per-user cart namespace
func UserOwner(userID string) Owner {
	return Owner{UserID: userID}
}

func (o Owner) key(prefix string) string {
	if o.UserID != "" {
		return prefix + ":cart:user:" + o.UserID
	}
	return prefix + ":cart:session:" + o.SessionID
}

// Count is the total quantity across lines, recomputed on every call
func Count(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Qty
	}
	return total
}

// Subtotal is the sum of qty * unit price across lines
func Subtotal(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * int64(l.Qty)
	}
	return total
}

// View is the cart as served to rendering surfaces
type View struct {
	Items    []Line `json:"items"`
	Count    int    `json:"count"`
	Subtotal int64  `json:"subtotal"`
}
