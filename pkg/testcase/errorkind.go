package testcase

import (
	"fmt"

	"github.com/dshills/smartbelt/pkg/dragstate"
)

var errorKindNames = map[string]dragstate.ErrorKind{
	"too_far_to_connect":          dragstate.ErrTooFarToConnect,
	"entity_in_the_way":           dragstate.ErrEntityInTheWay,
	"cannot_upgrade_underground":  dragstate.ErrCannotUpgradeUnderground,
	"cannot_traverse_past_entity": dragstate.ErrCannotTraversePastEntity,
	"cannot_traverse_past_tile":   dragstate.ErrCannotTraversePastTile,
}

func parseErrorKind(s string) (dragstate.ErrorKind, error) {
	kind, ok := errorKindNames[s]
	if !ok {
		return 0, fmt.Errorf("testcase: unknown error kind %q", s)
	}
	return kind, nil
}
