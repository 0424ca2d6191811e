package board

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Load decodes a Board from its JSON fixture representation (spec.md
// §6.4). It performs no validation beyond what encoding/json does;
// feasibility.Gate is responsible for rejecting malformed boards.
func Load(r io.Reader) (Board, error) {
	var b Board
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return Board{}, errors.Wrap(err, "decoding board")
	}
	if b.Elements == nil {
		b.Elements = map[string]Element{}
	}
	return b, nil
}
