// Package statement extracts financial records from the table rows of a
// brokerage monthly statement.
//
// The input is a Document: pages of tables of raw rows, as produced by a PDF
// table extractor. Every row goes through the same pipeline:
//   - Tokenize flattens the row cells into whitespace delimited tokens, which
//     hides the inconsistent cell boundaries of the extractor.
//   - Classify decides whether the tokens look like a position, a transaction,
//     or anything else (headers, subtotals, separators) that is ignored.
//   - ParsePosition and ParseTransaction parse the fields of a candidate row,
//     according to a fixed layout. A row with an invalid field is dropped.
//
// Extract runs the pipeline over a whole Document and returns a Statement
// with positions and transactions in encounter order. The Statement also
// offers the roll-up summaries and the market value distribution used for
// charts, where small positions are grouped into a single bucket.
//
// The literal labels that identify rows are brokerage specific, they are
// held in a Vocabulary.
package statement
