// Command formcheck validates a JSON snapshot of field values against one of
// the built-in disclosure form definitions and prints every validation issue.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/anish877/Realta-Wealth-sub002/pkg/disclosures"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
	"github.com/anish877/Realta-Wealth-sub002/pkg/validation"
)

func main() {
	form := flag.String("form", "", "form type to validate against")
	input := flag.String("snapshot", "", "JSON snapshot file (stdin if empty)")
	page := flag.Int("page", 0, "restrict validation to one page (0 validates the whole form)")
	list := flag.Bool("list", false, "list the built-in form types and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(disclosures.Names(), "\n"))
		return
	}
	if *form == "" {
		log.Fatalf("missing -form; known forms: %s", strings.Join(disclosures.Names(), ", "))
	}

	def, err := disclosures.Definition(*form)
	if err != nil {
		log.Fatalf("%v", err)
	}

	snap, err := readSnapshot(*input)
	if err != nil {
		log.Fatalf("read snapshot: %v", err)
	}

	var scope map[string]struct{}
	if *page > 0 {
		ids := def.Doc.PageFieldIDs(*page)
		if len(ids) == 0 {
			log.Fatalf("form %q has no page %d", *form, *page)
		}
		scope = validation.FieldScope(ids)
	}

	result := def.Validate(snap, scope)
	if result.Valid {
		fmt.Println("ok")
		return
	}

	fields := make([]string, 0, len(result.Errors))
	for field := range result.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("%s: %s\n", field, result.Errors[field])
	}
	os.Exit(1)
}

func readSnapshot(path string) (snapshot.Snapshot, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	snap := snapshot.New()
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse %s: %w", displayName(path), err)
	}
	return snap, nil
}

func displayName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
