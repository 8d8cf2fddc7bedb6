package cmds

// Var defines "name value" to set the returned value and "name." to reset it.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines "name" to turn on and "!name" to turn off.
func Switch(name string, desc string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("turn off "+name))

	return &value
}

// Collect appends the value of every "name value" pair.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
