// Package seek is a sampler of elementary search algorithms over Go slices.
//
// Every function returns the zero-based position of the first match, or
// NotFound (-1). The linear and binary searches neither allocate nor keep
// state. ParallelSearch starts two goroutines per call; HashIndex is built
// once and then queried.
//
// # Basic Usage
//
// Linear search, in three shapes:
//
//	ok := seek.Contains(names, "banana")        // bool
//	i := seek.Index(names, "banana")            // position or -1
//	m, ok := seek.Find(names, "banana")         // Match{Index, Value}, found
//
// Binary search on ascending input:
//
//	i := seek.BinarySearch([]int{1, 3, 5, 7, 9, 11}, 7) // 3
//
// Parallel linear search:
//
//	res, err := seek.ParallelSearch(ctx, big, target,
//	    seek.WithTimeout(time.Second),
//	    seek.WithObserver(seek.NewZapObserver(logger)),
//	)
//	if err != nil {
//	    log.Fatal(err) // errors.ErrTimeout or ctx cancellation
//	}
//	fmt.Println(res.Index, res.Worker, res.Elapsed)
//
// Repeated lookups:
//
//	idx, err := seek.NewHashIndex(big)
//	i := idx.Lookup(target)
//
// # Choosing an algorithm
//
// For n = 1,000,000 a linear scan makes up to a million comparisons, binary
// search about twenty, and a hash index one bucket probe. ParallelSearch
// still makes up to half a million comparisons per worker and pays goroutine
// start-up and coordination on top; the bench command's sweep shows where,
// if ever, it overtakes Index on a given machine.
//
// # Package Structure
//
//   - Linear: linear.go (Contains, Index, Find)
//   - Binary: binary.go (BinarySearch, BinarySearchFunc, BinarySearchChecked)
//   - Parallel: parallel.go (ParallelSearch, Result), parallel_options.go
//     (ParallelOption, With* functions), parallel_split.go (halves, offset
//     translation), observer.go (Observer, ZapObserver)
//   - Hash index: hash_index.go (HashIndex), hash_options.go (HashOption)
//   - Coordination: internal/race (first-success combinator, Tracker)
//   - Hashing: internal/hashing (xxh3, xxhash, murmur3), internal/bits
//   - Benchmark inputs: internal/dataset, cmd/bench
package seek
