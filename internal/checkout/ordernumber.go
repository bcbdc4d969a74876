package checkout

import (
	"fmt"
	"math/rand/v2"
)

// NumberGenerator issues order numbers. Uniqueness is not guaranteed.
type NumberGenerator interface {
	Next() string
}

type RandomNumbers struct{}

// Next returns "ORD-" and a uniform number in [100000, 999999].
func (RandomNumbers) Next() string {
	return fmt.Sprintf("ORD-%d", 100000+rand.IntN(900000))
}
