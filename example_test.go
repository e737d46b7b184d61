package seek_test

import (
	"context"
	"fmt"
	"time"

	"github.com/tamirms/seek"
)

func ExampleIndex() {
	s := []int{10, 20, 30, 30, 40}
	fmt.Println(seek.Index(s, 30), seek.Index(s, 35))
	// Output: 2 -1
}

func ExampleFind() {
	m, ok := seek.Find([]string{"apple", "banana", "cherry"}, "banana")
	fmt.Println(m.Index, m.Value, ok)
	_, ok = seek.Find([]string{"apple"}, "grape")
	fmt.Println(ok)
	// Output:
	// 1 banana true
	// false
}

func ExampleBinarySearch() {
	s := []int{1, 3, 5, 7, 9, 11}
	fmt.Println(seek.BinarySearch(s, 7))
	fmt.Println(seek.BinarySearch(s, 6))
	// Output:
	// 3
	// -1
}

func ExampleParallelSearch() {
	s := make([]int, 1_000_000)
	for i := range s {
		s[i] = i
	}

	res, err := seek.ParallelSearch(context.Background(), s, 879_654, seek.WithTimeout(10*time.Second))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Index, res.Worker, res.Inline)
	// Output: 879654 upper false
}
