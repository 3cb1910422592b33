package iterator

import "github.com/koto-lang/koto/value"

// Adaptors are lazy: constructing one never touches the upstream
// Iterator; every failure surfaces from a later Next call. Each adaptor
// takes ownership of its upstream handle in the sense described in the
// language core's iterator contract — the caller may still hold and
// advance it, observing the same shared cursor.

type eachSource struct {
	upstream *Iterator
	f        value.Callable
}

// Each returns an Iterator applying f to every upstream element.
func (it *Iterator) Each(f value.Callable) *Iterator {
	return New(&eachSource{upstream: it, f: f})
}

func (s *eachSource) Next() (value.Value, bool, error) {
	v, done, err := s.upstream.advance()
	if err != nil || done {
		return nil, done, err
	}
	r, err := s.f.Call([]value.Value{v})
	if err != nil {
		return nil, false, err
	}
	return r, false, nil
}

func (s *eachSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	return &eachSource{upstream: up, f: s.f}, nil
}

type keepSource struct {
	upstream *Iterator
	pred     value.Callable
}

// Keep returns an Iterator yielding only upstream elements for which pred
// returns true.
func (it *Iterator) Keep(pred value.Callable) *Iterator {
	return New(&keepSource{upstream: it, pred: pred})
}

func (s *keepSource) Next() (value.Value, bool, error) {
	for {
		v, done, err := s.upstream.advance()
		if err != nil || done {
			return nil, done, err
		}
		r, err := s.pred.Call([]value.Value{v})
		if err != nil {
			return nil, false, err
		}
		b, ok := r.(value.Bool)
		if !ok {
			return nil, false, value.NewError(value.TypeError, "keep predicate must return Bool, got %s", r.Kind())
		}
		if bool(b) {
			return v, false, nil
		}
	}
}

func (s *keepSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	return &keepSource{upstream: up, pred: s.pred}, nil
}

type chainSource struct {
	first, second *Iterator
	onSecond      bool
}

// Chain returns an Iterator yielding it to exhaustion, then other.
func (it *Iterator) Chain(other *Iterator) *Iterator {
	return New(&chainSource{first: it, second: other})
}

func (s *chainSource) Next() (value.Value, bool, error) {
	if !s.onSecond {
		v, done, err := s.first.advance()
		if err != nil {
			return nil, false, err
		}
		if !done {
			return v, false, nil
		}
		s.onSecond = true
	}
	return s.second.advance()
}

func (s *chainSource) Copy() (Source, error) {
	f, err := s.first.Copy()
	if err != nil {
		return nil, err
	}
	sec, err := s.second.Copy()
	if err != nil {
		return nil, err
	}
	return &chainSource{first: f, second: sec, onSecond: s.onSecond}, nil
}

type cycleSource struct {
	upstream *Iterator
	cache    []value.Value
	caching  bool
	pos      int
}

// Cycle returns an Iterator that repeats it forever. An empty upstream
// produces an empty iterator rather than looping forever over nothing.
func (it *Iterator) Cycle() *Iterator {
	return New(&cycleSource{upstream: it, caching: true})
}

func (s *cycleSource) Next() (value.Value, bool, error) {
	if s.caching {
		v, done, err := s.upstream.advance()
		if err != nil {
			return nil, false, err
		}
		if !done {
			s.cache = append(s.cache, v)
			return v, false, nil
		}
		s.caching = false
		if len(s.cache) == 0 {
			return nil, true, nil
		}
	}
	if len(s.cache) == 0 {
		return nil, true, nil
	}
	v := s.cache[s.pos]
	s.pos = (s.pos + 1) % len(s.cache)
	return v, false, nil
}

func (s *cycleSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	cache := make([]value.Value, len(s.cache))
	copy(cache, s.cache)
	return &cycleSource{upstream: up, cache: cache, caching: s.caching, pos: s.pos}, nil
}

type enumerateSource struct {
	upstream *Iterator
	idx      int64
}

// Enumerate returns an Iterator yielding (index, value) pairs starting at
// 0.
func (it *Iterator) Enumerate() *Iterator {
	return New(&enumerateSource{upstream: it})
}

func (s *enumerateSource) Next() (value.Value, bool, error) {
	v, done, err := s.upstream.advance()
	if err != nil || done {
		return nil, done, err
	}
	out := value.NewTuple(value.Number(s.idx), v)
	s.idx++
	return out, false, nil
}

func (s *enumerateSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	return &enumerateSource{upstream: up, idx: s.idx}, nil
}

type intersperseSource struct {
	upstream    *Iterator
	sep         value.Value
	sepFn       value.Callable
	initialized bool
	haveCur     bool
	cur         value.Value
	pendingSep  bool
}

// Intersperse returns an Iterator yielding e0, sep, e1, sep, e2, …. sep
// may be a fixed Value or a zero-argument Function called once per gap;
// a Function that returns Empty yields Empty as the separator, since
// Empty is a legitimate element here rather than a sentinel.
func (it *Iterator) Intersperse(sep value.Value) *Iterator {
	return New(&intersperseSource{upstream: it, sep: sep})
}

// IntersperseWith is the Function-separator form of Intersperse.
func (it *Iterator) IntersperseWith(sepFn value.Callable) *Iterator {
	return New(&intersperseSource{upstream: it, sepFn: sepFn})
}

func (s *intersperseSource) separator() (value.Value, error) {
	if s.sepFn != nil {
		return s.sepFn.Call(nil)
	}
	return s.sep, nil
}

func (s *intersperseSource) Next() (value.Value, bool, error) {
	if !s.initialized {
		s.initialized = true
		v, done, err := s.upstream.advance()
		if err != nil {
			return nil, false, err
		}
		if done {
			return nil, true, nil
		}
		s.cur, s.haveCur = v, true
	}
	if s.pendingSep {
		s.pendingSep = false
		sepv, err := s.separator()
		if err != nil {
			return nil, false, err
		}
		return sepv, false, nil
	}
	if !s.haveCur {
		return nil, true, nil
	}
	v := s.cur
	s.haveCur = false
	nv, done, err := s.upstream.advance()
	if err != nil {
		return nil, false, err
	}
	if !done {
		s.cur, s.haveCur = nv, true
		s.pendingSep = true
	}
	return v, false, nil
}

func (s *intersperseSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	cp := *s
	cp.upstream = up
	return &cp, nil
}

type skipSource struct {
	upstream *Iterator
	n        int
	skipped  int
}

// Skip returns an Iterator positioned after dropping up to n upstream
// elements.
func (it *Iterator) Skip(n int) *Iterator {
	return New(&skipSource{upstream: it, n: n})
}

func (s *skipSource) Next() (value.Value, bool, error) {
	for s.skipped < s.n {
		_, done, err := s.upstream.advance()
		if err != nil {
			return nil, false, err
		}
		s.skipped++
		if done {
			s.skipped = s.n
			return nil, true, nil
		}
	}
	return s.upstream.advance()
}

func (s *skipSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	return &skipSource{upstream: up, n: s.n, skipped: s.skipped}, nil
}

type takeSource struct {
	upstream *Iterator
	n, taken int
}

// Take returns an Iterator yielding at most n elements, then terminating
// without advancing the upstream any further.
func (it *Iterator) Take(n int) *Iterator {
	return New(&takeSource{upstream: it, n: n})
}

func (s *takeSource) Next() (value.Value, bool, error) {
	if s.taken >= s.n {
		return nil, true, nil
	}
	v, done, err := s.upstream.advance()
	if err != nil || done {
		return nil, done, err
	}
	s.taken++
	return v, false, nil
}

func (s *takeSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	return &takeSource{upstream: up, n: s.n, taken: s.taken}, nil
}

type zipSource struct {
	a, b *Iterator
}

// Zip returns an Iterator yielding (a, b) pairs, terminating when either
// side terminates.
func (it *Iterator) Zip(other *Iterator) *Iterator {
	return New(&zipSource{a: it, b: other})
}

func (s *zipSource) Next() (value.Value, bool, error) {
	va, da, ea := s.a.advance()
	if ea != nil || da {
		return nil, da, ea
	}
	vb, db, eb := s.b.advance()
	if eb != nil || db {
		return nil, db, eb
	}
	return value.NewTuple(va, vb), false, nil
}

func (s *zipSource) Copy() (Source, error) {
	a, err := s.a.Copy()
	if err != nil {
		return nil, err
	}
	b, err := s.b.Copy()
	if err != nil {
		return nil, err
	}
	return &zipSource{a: a, b: b}, nil
}

type windowsSource struct {
	upstream *Iterator
	n        int
	buf      []value.Value
	started  bool
}

// Windows returns an Iterator yielding overlapping tuples of size n,
// sliding by one element at a time.
func (it *Iterator) Windows(n int) *Iterator {
	return New(&windowsSource{upstream: it, n: n})
}

func (s *windowsSource) Next() (value.Value, bool, error) {
	if !s.started {
		s.started = true
		for len(s.buf) < s.n {
			v, done, err := s.upstream.advance()
			if err != nil {
				return nil, false, err
			}
			if done {
				return nil, true, nil
			}
			s.buf = append(s.buf, v)
		}
		return value.NewTuple(s.buf...), false, nil
	}
	v, done, err := s.upstream.advance()
	if err != nil {
		return nil, false, err
	}
	if done {
		return nil, true, nil
	}
	next := make([]value.Value, s.n)
	copy(next, s.buf[1:])
	next[s.n-1] = v
	s.buf = next
	return value.NewTuple(s.buf...), false, nil
}

func (s *windowsSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	buf := make([]value.Value, len(s.buf))
	copy(buf, s.buf)
	return &windowsSource{upstream: up, n: s.n, buf: buf, started: s.started}, nil
}

type chunksSource struct {
	upstream *Iterator
	n        int
}

// Chunks returns an Iterator yielding non-overlapping tuples of size n.
// The final chunk is yielded even if shorter than n, when the upstream
// ends mid-chunk.
func (it *Iterator) Chunks(n int) *Iterator {
	return New(&chunksSource{upstream: it, n: n})
}

func (s *chunksSource) Next() (value.Value, bool, error) {
	chunk := make([]value.Value, 0, s.n)
	for len(chunk) < s.n {
		v, done, err := s.upstream.advance()
		if err != nil {
			return nil, false, err
		}
		if done {
			break
		}
		chunk = append(chunk, v)
	}
	if len(chunk) == 0 {
		return nil, true, nil
	}
	return value.NewTuple(chunk...), false, nil
}

func (s *chunksSource) Copy() (Source, error) {
	up, err := s.upstream.Copy()
	if err != nil {
		return nil, err
	}
	return &chunksSource{upstream: up, n: s.n}, nil
}
