package framing

import (
	"context"
	"iter"
)

// StreamGenerator produces a sequence of values into two sinks: first gets
// the first value, rest gets every value after it, in order. It returns once
// the producer is exhausted or a sink returns an error.
//
// A StreamGenerator drives one stream, once. It must not be called
// concurrently.
type StreamGenerator[T any] interface {
	GenerateStream(first, rest func(T) error) error
}

// ToStreamGenerator is implemented by producers which can be turned into a
// StreamGenerator.
type ToStreamGenerator[T any] interface {
	ToStreamGenerator() StreamGenerator[T]
}

// StreamGeneratorFunc is a function used as a StreamGenerator.
type StreamGeneratorFunc[T any] func(first, rest func(T) error) error

// GenerateStream calls f(first, rest).
func (f StreamGeneratorFunc[T]) GenerateStream(first, rest func(T) error) error {
	return f(first, rest)
}

// ToStreamGenerator returns f itself.
func (f StreamGeneratorFunc[T]) ToStreamGenerator() StreamGenerator[T] {
	return f
}

// Slice is a slice producer.
type Slice[T any] []T

// ToStreamGenerator returns a generator over the elements of s.
func (s Slice[T]) ToStreamGenerator() StreamGenerator[T] {
	return FromSeq(func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	})
}

// Seq is an iterator producer.
type Seq[T any] iter.Seq[T]

// ToStreamGenerator returns a generator over the values of s.
func (s Seq[T]) ToStreamGenerator() StreamGenerator[T] {
	return FromSeq(iter.Seq[T](s))
}

// FromSlice returns a generator over values.
func FromSlice[T any](values ...T) StreamGenerator[T] {
	return Slice[T](values).ToStreamGenerator()
}

// FromSeq returns a generator over seq.
func FromSeq[T any](seq iter.Seq[T]) StreamGeneratorFunc[T] {
	return func(first, rest func(T) error) error {
		var err error
		sink := first
		for v := range seq {
			if err = sink(v); err != nil {
				break
			}
			sink = rest
		}
		return err
	}
}

// FromChan returns a generator which receives from ch until it is closed or
// ctx is done. In the latter case it returns ctx.Err().
func FromChan[T any](ctx context.Context, ch <-chan T) StreamGeneratorFunc[T] {
	return func(first, rest func(T) error) error {
		sink := first
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case v, ok := <-ch:
				if !ok {
					return nil
				}
				if err := sink(v); err != nil {
					return err
				}
				sink = rest
			}
		}
	}
}

// Iterator is a pull producer. Next returns false once it is exhausted.
type Iterator[T any] interface {
	Next() (T, bool, error)
}

// FromIterator returns a generator pulling from it. An error from Next ends
// the stream with that error.
func FromIterator[T any](it Iterator[T]) StreamGeneratorFunc[T] {
	return func(first, rest func(T) error) error {
		sink := first
		for {
			v, ok, err := it.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := sink(v); err != nil {
				return err
			}
			sink = rest
		}
	}
}

// Map returns a generator yielding f applied to every value of g. An error
// from f stops g.
func Map[T, U any](g StreamGenerator[T], f func(T) (U, error)) StreamGeneratorFunc[U] {
	return func(first, rest func(U) error) error {
		wrap := func(sink func(U) error) func(T) error {
			return func(v T) error {
				u, err := f(v)
				if err != nil {
					return err
				}
				return sink(u)
			}
		}
		return g.GenerateStream(wrap(first), wrap(rest))
	}
}
