package textbuilder

import "iter"

// Enumerate calls fn for each item of seq with its zero-based position,
// threading the returned Builder into the next call. Iteration stops once the
// build has failed. An empty seq returns b unchanged.
func Enumerate[T any](b Builder, seq iter.Seq[T], fn func(Builder, int, T) Builder) Builder {
	i := 0
	for item := range seq {
		if b.Err() != nil {
			break
		}
		b = fn(b, i, item)
		i++
	}
	return b
}

// Delimit is [Enumerate] with delim called strictly between consecutive
// items: never before the first or after the last.
func Delimit[T any](b Builder, delim func(Builder) Builder, seq iter.Seq[T], fn func(Builder, int, T) Builder) Builder {
	return Enumerate(b, seq, func(b Builder, i int, item T) Builder {
		if i > 0 {
			b = delim(b)
			if b.Err() != nil {
				return b
			}
		}
		return fn(b, i, item)
	})
}

// AppendDelimit is [Delimit] with a fixed Appendable separator.
func AppendDelimit[T any](b Builder, delim Appendable, seq iter.Seq[T], fn func(Builder, int, T) Builder) Builder {
	return Delimit(b, func(b Builder) Builder { return b.Append(delim) }, seq, fn)
}

// Join appends every item of seq, separated by delim.
func Join[A Appendable](b Builder, delim Appendable, seq iter.Seq[A]) Builder {
	return AppendDelimit(b, delim, seq, func(b Builder, _ int, item A) Builder {
		return b.Append(item)
	})
}
