// Package textbuilder builds indentation-aware text, such as generated
// source code or reports, by chaining operations on a [Builder].
//
// The entry points are [Build], which returns the finished string, and
// [Write], which streams into any [io.Writer]:
//
//	text, err := textbuilder.Build(func(b textbuilder.Builder) textbuilder.Builder {
//		return b.Str("pub struct Test {").
//			Indented(textbuilder.Str("    "), func(b textbuilder.Builder) textbuilder.Builder {
//				return b.Newline().Str("field: usize,")
//			}).
//			Newline().
//			Str("}")
//	})
//
// # Ownership
//
// Every writing method consumes the Builder it is called on and returns the
// next one. Keep only the latest handle: calling a method on an older one,
// for example the outer Builder captured inside an [Builder.Indented] body,
// fails the build with [ErrStaleBuilder].
//
// # Errors
//
// Failures are sticky. Once an operation fails, later operations do nothing
// and [Build] returns the first error, never partial text. Text already
// streamed by [Write] is not retracted.
//
//   - [ErrInvalidUTF8]: bytes given to [Builder.UTF8] are not valid UTF-8
//   - [ErrWrite]: the sink rejected a write
//   - [ErrFormat]: a template, encoder, or table could not be rendered
//   - [ErrStaleBuilder]: a consumed Builder was used
//   - [ErrUnbound]: the zero Builder was used
//
// # Indentation
//
// [Builder.Indented] pushes an indent for the duration of its body. Each
// [Builder.Newline] writes the line break, then every active indent from
// outermost to innermost. The line break defaults to "\n" and can be
// changed with [WithLineBreak] or [Builder.SetLineBreak].
//
// # Combinators
//
// [Enumerate], [Delimit], [AppendDelimit], and [Join] walk an [iter.Seq],
// threading the Builder through a callback per item:
//
//	textbuilder.AppendDelimit(b, textbuilder.Str(", "), slices.Values(args),
//		func(b textbuilder.Builder, _ int, arg string) textbuilder.Builder {
//			return b.Str(arg)
//		})
//
// # Appendables
//
// An [Appendable] renders itself into a [Sink]. [Char], [Str], and [Runes]
// cover plain text, [None] renders nothing, and [Func] adapts a function.
// [Padded], [Styled], and [Normalized] handle display width, ANSI styling,
// and Unicode normalization.
//
// # Blocks
//
// [Builder.JSON], [Builder.YAML], [Builder.TOML], and [Builder.Table] write
// multi-line blocks whose lines follow the current indentation. Implement
// [Indenter] to control encoder indentation.
package textbuilder
