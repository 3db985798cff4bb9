// Package capability detects CPU support for hardware population count and
// selects the popcount kernel used by the raw package.
//
// Detection runs once at package init. The selection can be forced with the
// SUBINT_POPCOUNT environment variable ("generic" or "hardware"); an override
// naming a kernel the CPU cannot run is ignored.
package capability
