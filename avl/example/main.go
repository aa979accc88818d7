package main

import (
	"fmt"

	"github.com/wbr/go-staticds/avl"
)

func main() {
	tree := avl.New[int, string](16)

	for _, kv := range []avl.KV[int, string]{
		{Key: 7, Val: "seven"},
		{Key: 4, Val: "four"},
		{Key: 12, Val: "twelve"},
		{Key: 3, Val: "three"},
		{Key: 5, Val: "five"},
		{Key: 10, Val: "ten"},
		{Key: 14, Val: "fourteen"},
	} {
		tree.Insert(kv)
	}

	fmt.Println("in-order:")
	tree.LCRAction(func(k int, v *string) {
		fmt.Printf("  %d = %s\n", k, *v)
	})

	fmt.Println("level-order, lazily:")
	tree.BFSActionS(func(k int, v *string) {
		fmt.Printf("  %d = %s\n", k, *v)
	})

	tree.Remove(7)
	fmt.Println("after remove(7), valid:", tree.Valid())

	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		fmt.Printf("%d ", it.Key())
	}
	fmt.Println()

	tree.DebugDump()
}
