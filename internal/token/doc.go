// Package token defines lexical token kinds for the Pascal sectioner.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Keywords are case-insensitive; LookupKeyword folds to lowercase.
//   - Comments and preprocessor directives are ordinary tokens, not trivia:
//     the section extractor must see them to reject unsafe sections.
package token
