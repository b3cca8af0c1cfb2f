// Package core implements the normalization pipeline behind the dashboard's
// datasets: encoding-resilient CSV reading, schema reconciliation against
// declarative column specs, defensive parsing of composite string fields, and
// memoized per-dataset loaders.
//
// The package has no rendering dependencies and can be driven by web
// handlers, CLI tools, or tests without modification.
//
// # Dataset Registry
//
// Datasets are registered at init time using [Register]. Each
// [DatasetDefinition] names the source file and carries the column specs and
// derivation passes for one domain:
//
//	core.Register(DatasetDefinition{
//	    Name: "religious",
//	    File: "religions.csv",
//	    Specs: []ColumnSpec{
//	        {Name: "Religion", Type: FieldText, Rule: RuleSequential, SeqLabel: "Religion"},
//	        {Name: "Percentage", Type: FieldFloat, Rule: RuleConstant, Constant: FloatValue(0)},
//	    },
//	})
//
// # Pipeline
//
// A load runs a fixed pipeline: source existence check, encoding-resilient
// read ([ReadTable]), schema reconciliation ([Reconcile]), then zero or more
// post passes deriving columns from already-reconciled ones. Reconciliation
// is idempotent and never overwrites a column that is present with non-null
// values, except for declared alias/derived columns.
//
// # Error Handling
//
// Inside the pipeline, [NotFoundError] and [UnreadableError] signal an
// unusable source. Neither crosses the loader boundary: [Loader.Load]
// reports the failure and returns a nil table, which callers must treat as
// "dataset unavailable". Missing columns and unparseable composite fields
// are not errors at all; they are repaired by synthesis and neutral
// fallbacks and surface only as log warnings.
package core
