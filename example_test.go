package byteseq_test

import (
	"fmt"

	"github.com/ghettovoice/byteseq"
	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/search"
	"github.com/ghettovoice/byteseq/slice"
)

func ExampleBytes_Decode() {
	b, _ := byteseq.FromInts([]int{169, 195, 169, 97, 101})
	for _, policy := range []string{"replace", "ignore", "backslashreplace"} {
		s, _ := b.Decode("utf-8", policy)
		fmt.Println(s)
	}
	_, err := b.Decode("utf-8", "strict")
	fmt.Println(err)
	// Output:
	// �éae
	// éae
	// \xa9éae
	// 'utf-8' codec can't decode byte 0xa9 in position 0: invalid start byte
}

func ExampleBytes_Slice() {
	b := byteseq.FromBytes([]byte("abcdefghij"))
	s, _ := b.Slice(slice.Int(8), slice.Int(1), slice.Int(-2))
	fmt.Println(s)
	// Output: b'igec'
}

func ExampleBytes_Count() {
	b := byteseq.FromBytes([]byte("azeazerazeazopia"))
	n, _ := b.Count(search.Sub(bytelike.Slice("aze")), slice.None, slice.None)
	fmt.Println(n)
	// Output: 3
}

func ExampleBytes_Center() {
	b := byteseq.FromBytes([]byte("kok"))
	c, _ := b.Center(6, bytelike.Slice("|"))
	fmt.Printf("%s %x\n", c, c)
	// Output: b'|kok||' 7c6b6f6b7c7c
}
