package parser

import (
	"fmt"
	"strings"
)

// MapError takes a raw action ID and a participle error, and returns a
// human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("empty action")
	}

	head := input
	if i := strings.IndexByte(input, ':'); i > 0 {
		head = input[:i]
	}

	switch head {
	case "shop":
		return fmt.Errorf("shop actions must be: shop[:buy|sell|...][:kind][:index]")
	case "inv":
		return fmt.Errorf("inventory actions must be: inv:<option>[:set:<index>]")
	case "guess":
		return fmt.Errorf("guess actions must be: guess:<number>")
	case "bet":
		return fmt.Errorf("bet actions must be: bet:+5|+10|+50|+100|ok|back")
	}

	return fmt.Errorf("malformed action %q: %v", input, err)
}
