// Package token defines lexical token kinds, trivia, and the token
// stream for the Shard front-end.
// Invariants:
//   - Token.Text is the exact source slice; Token.Span matches it.
//   - Every source byte lives in some token's text or in trivia attached
//     to a token, so concatenating FullText over a stream reproduces the
//     input.
//   - Keyword kinds form one contiguous region (Kind.IsKeyword).
//   - Contextual accessor keywords (get, set, add, remove) are lexed as
//     Ident; the parser reclassifies them in place.
//   - Preprocessor lines ('#...') are single Directive tokens and are
//     never interpreted.
//   - Synthesized tokens (parser error recovery) have empty Text and
//     zero width.
package token
