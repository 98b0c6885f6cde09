package crt

// Collision Resolution Techniques
const (
	SeparateChaining int = iota + 1
	LinearProbing
	QuadraticProbing
	DoubleHashing
)

var names = map[int]string{
	SeparateChaining: "SeparateChaining",
	LinearProbing:    "LinearProbing",
	QuadraticProbing: "QuadraticProbing",
	DoubleHashing:    "DoubleHashing",
}

var keys = map[string]int{
	"separate_chaining": SeparateChaining,
	"linear_probing":    LinearProbing,
	"quadratic_probing": QuadraticProbing,
	"double_hashing":    DoubleHashing,
}

// Name - Returns the display name of a collision resolution technique, or an empty string if unknown
func Name(technique int) string {
	return names[technique]
}

// Parse - Returns the collision resolution technique for a configuration key such as "double_hashing"
func Parse(key string) (technique int, ok bool) {
	technique, ok = keys[key]
	return
}

// IsOpenAddressing - Returns true for the techniques that store records directly in the slot array
func IsOpenAddressing(technique int) bool {
	return technique == LinearProbing || technique == QuadraticProbing || technique == DoubleHashing
}
