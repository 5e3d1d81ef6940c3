// Package dataset loads the numeric feature columns of a delimited table.
//
// The first record is the header and supplies the feature labels; every
// later record is one sample. A ColumnRange selects which columns are
// features, so an "id, f1, ..., fn, class" layout is read with
// ColumnRange{Start: 1, End: -1}. Feature i of the result is column
// Start+i; its series holds that column's values in row order.
package dataset
