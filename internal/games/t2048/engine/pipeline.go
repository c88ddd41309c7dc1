package engine

import "fmt"

// Condense removes the gaps in a line without merging anything.
// Each tile yields one token: NoAction if every cell before it was occupied,
// Move otherwise.
func Condense(line []Cell) []ActionToken {
	tokens := make([]ActionToken, 0, len(line))
	for idx, c := range line {
		value, ok := c.Value()
		if !ok {
			continue
		}
		if len(tokens) == idx {
			tokens = append(tokens, NoActionToken{Origin: idx, Value: value})
		} else {
			tokens = append(tokens, MoveToken{Origin: idx, Value: value})
		}
	}
	return tokens
}

// stillQuiescent reports whether a NoAction token at input index idx still
// describes a tile that has not moved, given outLen tokens emitted so far.
func stillQuiescent(idx, outLen, origin int) bool {
	return idx == outLen && origin == idx
}

// Collapse merges adjacent equal tokens of a condensed line. Every token takes
// part in at most one merge and merges never chain. Panics if the input already
// contains combine tokens.
func Collapse(tokens []ActionToken) []ActionToken {
	out := make([]ActionToken, 0, len(tokens))
	skipNext := false

	for idx, token := range tokens {
		if skipNext {
			skipNext = false
			continue
		}

		var next ActionToken
		hasPartner := false
		if idx < len(tokens)-1 {
			next = tokens[idx+1]
			hasPartner = next.TokenValue() == token.TokenValue()
		}

		switch t := token.(type) {
		case SingleCombineToken, DoubleCombineToken:
			panic(fmt.Sprintf("engine: collapse input contains combine token %#v at %d", t, idx))

		case NoActionToken:
			quiescent := stillQuiescent(idx, len(out), t.Origin)
			switch {
			case hasPartner && quiescent:
				// The next tile slides into this one, which stays put.
				out = append(out, SingleCombineToken{
					Origin: next.TokenOrigin(),
					Value:  addSat(t.Value, next.TokenValue()),
				})
				skipNext = true
			case hasPartner:
				out = append(out, DoubleCombineToken{
					Origin: t.Origin,
					Second: next.TokenOrigin(),
					Value:  addSat(t.Value, next.TokenValue()),
				})
				skipNext = true
			case !quiescent:
				out = append(out, MoveToken(t))
			default:
				out = append(out, t)
			}

		case MoveToken:
			if hasPartner {
				out = append(out, DoubleCombineToken{
					Origin: t.Origin,
					Second: next.TokenOrigin(),
					Value:  addSat(t.Value, next.TokenValue()),
				})
				skipNext = true
			} else {
				out = append(out, t)
			}

		default:
			panic(fmt.Sprintf("engine: unknown action token %T", token))
		}
	}
	return out
}

// Convert turns collapsed tokens into move orders. A token's destination is
// its index in the collapsed sequence; NoAction tokens produce nothing.
func Convert(tokens []ActionToken) []MoveOrder {
	var orders []MoveOrder
	for dest, token := range tokens {
		switch t := token.(type) {
		case NoActionToken:
		case MoveToken:
			orders = append(orders, SingleMoveOrder{Origin: t.Origin, Destination: dest, Value: t.Value})
		case SingleCombineToken:
			orders = append(orders, SingleMoveOrder{Origin: t.Origin, Destination: dest, Value: t.Value, WasMerge: true})
		case DoubleCombineToken:
			orders = append(orders, DoubleMoveOrder{Origin: t.Origin, Second: t.Second, Destination: dest, Value: t.Value})
		default:
			panic(fmt.Sprintf("engine: unknown action token %T", token))
		}
	}
	return orders
}

// Merge computes the move orders for one line given in travel order.
// It is pure: the same line always yields the same orders.
func Merge(line []Cell) []MoveOrder {
	return Convert(Collapse(Condense(line)))
}
