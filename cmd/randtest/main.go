package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/randutil"
	"github.com/Han-16/boolext/internal/report"
	"github.com/Han-16/boolext/internal/word"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage : go run ./cmd/randtest <vars> [count]")
		fmt.Println("Example: go run ./cmd/randtest 9 8   # 8 random 9-variable functions")
		return
	}

	vars, err := strconv.Atoi(os.Args[1])
	if err != nil || vars < 1 || vars > 9 {
		fmt.Println("Invalid variable count (1..9):", os.Args[1])
		return
	}

	count := 4
	if len(os.Args) >= 3 {
		count, err = strconv.Atoi(os.Args[2])
		if err != nil || count <= 0 {
			fmt.Println("Invalid count:", os.Args[2])
			return
		}
	}

	t := boolfn.MustNew(vars, word.U512{})
	fs, err := randutil.RandomFunctionsPar(word.U512{}, vars, count, 0)
	if err != nil {
		fmt.Println("Error generating random functions:", err)
		return
	}

	rows := make([]boolfn.Properties, len(fs))
	for i, f := range fs {
		rows[i] = boolfn.Analyze(t, f)
	}
	fmt.Printf("Generated %d random %d-variable functions:\n", count, vars)
	report.Properties(os.Stdout, rows)
}
