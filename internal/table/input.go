package table

import (
	"bufio"
	"io"
	"log"
)

// readLines forwards each line of r to out and closes out at EOF.
func readLines(r io.Reader, out chan<- string) {
	defer close(out)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Read error on input: %v", err)
	}
}
