// Command meetsense-score scores a single meeting description from JSON
// and prints the full assessment to stdout, no server or storage required
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"meetsense/internal/services/api/assessments/domain"
	svc "meetsense/internal/services/api/assessments/service"
)

func main() {
	var (
		in     = flag.String("in", "-", "input path or '-' for stdin")
		pretty = flag.Bool("pretty", true, "pretty-print JSON")
	)
	flag.Parse()

	raw, err := readInput(*in)
	must(err)

	var input domain.AssessmentInput
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	must(dec.Decode(&input))

	out, err := svc.Score(input)
	must(err)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	must(enc.Encode(out))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
