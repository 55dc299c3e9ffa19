// Command bfi runs a tape-language source file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KrokodileGlue/bfi/interpreter"
)

var (
	printTime = flag.Bool("t", false, "Print elapsed wall-clock time after execution.")
	listCode  = flag.Bool("list", false, "Print the compiled instruction listing instead of running.")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Println("Usage: bfi [options] INPUT_FILE")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	src, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("Couldn't read source file: %v", err)
	}

	if *listCode {
		code, err := interpreter.Compile(src)
		if err != nil {
			log.Fatalf("Compilation failed: %v", err)
		}
		fmt.Print(interpreter.Listing(code))
		return
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	begin := time.Now()
	err = interpreter.Run(src, os.Stdin, out)
	elapsed := time.Since(begin)
	if err != nil {
		out.Flush()
		log.Fatalf("Execution failed: %v", err)
	}

	if *printTime {
		out.Flush()
		log.Printf("\nProgram used %f seconds of wall-clock time.", elapsed.Seconds())
	}
}
