package deflate_test

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"

	"github.com/akmitrich/otus-deflate"
)

func ExampleCompress() {
	out := deflate.Compress([]byte("AIAIAIAIAIAIA"))

	r := flate.NewReader(bytes.NewReader(out))
	defer r.Close()
	decoded, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(decoded))
	// Output: AIAIAIAIAIAIA
}

func ExampleNewWriter() {
	var b bytes.Buffer
	w := deflate.NewWriter(&b)
	w.Write([]byte("AIAIAIAIAIAIA"))
	w.Close()

	r := flate.NewReader(bytes.NewReader(b.Bytes()))
	defer r.Close()
	decoded, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(decoded))
	// Output: AIAIAIAIAIAIA
}

func ExampleGenerateCode() {
	code, err := deflate.GenerateCode([]uint8{3, 3, 3, 3, 3, 2, 4, 4})
	if err != nil {
		panic(err)
	}
	for _, entry := range code {
		fmt.Println(entry.Code)
	}
	// Output:
	// 2
	// 3
	// 4
	// 5
	// 6
	// 0
	// 14
	// 15
}
