// Package tables holds the static reference tables and domain derivation
// functions used as fallback data sources during schema reconciliation:
// per-state indicators, era metadata and narratives, and per-festival
// impact figures. All maps are read-only after initialization and are
// shared process-wide.
package tables
