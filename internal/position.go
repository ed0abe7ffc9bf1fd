package internal

// CanInsert reports whether position addresses a slot a new element can be
// linked into, for a list holding length elements. length itself is the
// append slot.
func CanInsert(position, length int) bool {
	return position > -1 && position <= length
}

// CanAccess reports whether position addresses an existing element.
func CanAccess(position, length int) bool {
	return position > -1 && position < length
}
