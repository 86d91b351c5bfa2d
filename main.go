package main

import (
	"fmt"
	"os"

	"github.com/abc401/church/helpers"
	"github.com/abc401/church/scenario"
)

func main() {
	exitCode := 0

	defer func() {
		os.Exit(exitCode)
	}()

	programName := os.Args[0]
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "[Error] Incorrect usage!\n")
		fmt.Println("[Info] Correct usage:")
		fmt.Printf("  %s [scenario.yaml]\n", programName)
		exitCode = 1
		return
	}

	var scn = scenario.Default()
	if len(os.Args) == 2 {
		var err error
		scn, err = scenario.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "[Error] %s\n", err.Error())
			exitCode = 1
			return
		}
		fmt.Printf("[Info] Loaded scenario %q with %d steps.\n", scn.Name, len(scn.Steps))
	}

	results, err := scenario.Run(scn)
	for _, result := range results {
		fmt.Printf("%s = %s\n", result.Label(), result.Value)
		if !result.Matched {
			fmt.Fprintf(os.Stderr, "[Error] %s: expected %s, got %s\n", result.Label(), result.Expected, result.Value)
			exitCode = 1
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[Error] %s\n", err.Error())
		exitCode = 1
		return
	}

	if len(os.Args) == 2 {
		fmt.Printf("[Info] Report:\n%s\n", helpers.SPrettyPrint(results))
	}
}
