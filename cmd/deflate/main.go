package main

import (
	"flag"
	"log"
	"os"

	"github.com/akmitrich/otus-deflate"
)

func main() {
	inputFile := flag.String("i", "", "input file")
	outputFile := flag.String("o", "", "output file")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	compressed := deflate.Compress(data)

	if err := os.WriteFile(*outputFile, compressed, 0o644); err != nil {
		log.Fatal(err)
	}
}
