// Package orderid encodes and decodes the table-scoped kitchen order ids
// shown on tickets ("T-5-03"). The id string is only a display/serialization
// format: the structured (table, sequence) pair is what the rest of the
// system works with, and parsing happens here at the boundary.
package orderid

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

// Canonical form is "T-<table>-<seq>" with the sequence zero-padded to two
// digits. The bare legacy form "T-<table>" still exists in old seed data and
// must keep decoding.
var idPattern = regexp.MustCompile(`^T-(\d+)(?:-(\d+))?$`)

// Decode parses an order id string. ok is false when the string does not
// match the pattern at all; sequence is 0 for the legacy bare form.
func Decode(id string) (tableID, sequence int, ok bool) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, false
	}
	tableID, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		sequence, _ = strconv.Atoi(m[2])
	}
	return tableID, sequence, true
}

// Encode builds the canonical padded id.
func Encode(tableID, sequence int) string {
	return fmt.Sprintf("T-%d-%02d", tableID, sequence)
}

// ResolveTableID returns the order's table: the explicit stored field when
// present, otherwise whatever the id string decodes to. 0 means
// unresolvable.
func ResolveTableID(order models.KitchenOrder) int {
	if order.TableID > 0 {
		return order.TableID
	}
	if tableID, _, ok := Decode(order.ID); ok {
		return tableID
	}
	return 0
}

// ResolveSequence returns the order's sequence number. The explicit stored
// field wins; else the id string is decoded; a legacy id that yields a
// table but no sequence counts as sequence 1. 0 means unresolvable.
func ResolveSequence(order models.KitchenOrder) int {
	if order.Sequence > 0 {
		return order.Sequence
	}
	tableID, sequence, ok := Decode(order.ID)
	if !ok {
		return 0
	}
	if sequence > 0 {
		return sequence
	}
	if tableID > 0 {
		// Legacy bare "T-<table>" id: implicit first order.
		return 1
	}
	return 0
}

// NextSequence allocates the next sequence for a table by scanning the
// current order list: max resolved sequence + 1, or 1 when the table has no
// live orders. It is recomputed from state on every call rather than kept
// as a counter, so numbering stays correct after orders are completed and
// removed.
func NextSequence(orders []models.KitchenOrder, tableID int) int {
	max := 0
	for _, order := range orders {
		if ResolveTableID(order) != tableID {
			continue
		}
		if seq := ResolveSequence(order); seq > max {
			max = seq
		}
	}
	return max + 1
}
