// Package tgi provides the Type/Group/Instance resource key used to address
// resources and chunks inside RCOL containers.
//
// Key is a comparable value type: == is structural equality and Key can be
// used as a map key directly. Keys order by type, then group, then instance.
// The external string form is fixed:
//
//	0xTTTTTTTT-0xGGGGGGGG-0xIIIIIIIIIIIIIIII
//
// Binary tables store the three fields in one of several orders; Order
// selects which. Owned is the mutable slot a parent uses when a key must
// report changes.
package tgi
