package cart

// Observer считает операции с корзиной. Может быть nil.
type Observer interface {
	CartOperation(op string)
}
