package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Source supplies single die results. Injecting it keeps combat
// deterministic under test.
type Source interface {
	// Die returns a uniform value in [1, sides].
	Die(sides int) int
}

// CryptoSource draws strongly uniform values via crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Die(sides int) int {
	if sides <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(sides)))
	return int(n.Int64()) + 1
}

// Result contains the finalized sum alongside the raw rolls used.
type Result struct {
	Total    int   `json:"total"`
	Rolls    []int `json:"rolls"`
	Sides    int   `json:"sides"`
	Modifier int   `json:"modifier"`
}

// Roller evaluates NdM[+/-K] notation against its Source.
type Roller struct {
	src Source
}

// New builds a Roller over the given source.
func New(src Source) *Roller {
	return &Roller{src: src}
}

// NewCrypto builds a Roller backed by crypto/rand.
func NewCrypto() *Roller {
	return New(CryptoSource{})
}

var diceRegex = regexp.MustCompile(`(?i)^(\d*)[d](\d+)([+-]\d+)?$`)

// Parse splits a notation string into count, sides and flat modifier.
func Parse(notation string) (count, sides, modifier int, err error) {
	raw := strings.ReplaceAll(notation, " ", "")
	matches := diceRegex.FindStringSubmatch(raw)
	if len(matches) == 0 {
		return 0, 0, 0, fmt.Errorf("invalid dice expression format: %s", notation)
	}

	count = 1
	if matches[1] != "" {
		count, _ = strconv.Atoi(matches[1])
	}
	sides, _ = strconv.Atoi(matches[2])
	if sides <= 0 {
		return 0, 0, 0, fmt.Errorf("cannot roll a die with 0 or negative sides")
	}
	if matches[3] != "" {
		modifier, _ = strconv.Atoi(matches[3])
	}
	return count, sides, modifier, nil
}

// Roll evaluates the notation. The total is always within
// [count+modifier, count*sides+modifier].
func (r *Roller) Roll(notation string) (Result, error) {
	count, sides, modifier, err := Parse(notation)
	if err != nil {
		return Result{}, err
	}

	res := Result{Sides: sides, Modifier: modifier}
	for i := 0; i < count; i++ {
		val := r.src.Die(sides)
		res.Rolls = append(res.Rolls, val)
		res.Total += val
	}
	res.Total += modifier
	return res, nil
}

// Total is the convenience form used where the notation comes from the
// data catalog: parse failures yield 0 rather than an error.
func (r *Roller) Total(notation string) int {
	res, err := r.Roll(notation)
	if err != nil {
		return 0
	}
	return res.Total
}

// Die exposes a single raw draw from the underlying source.
func (r *Roller) Die(sides int) int {
	return r.src.Die(sides)
}
