package helpers

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
)

func SPrettyPrint(val interface{}) string {
	var out, err = json.MarshalIndent(val, "", "  ")
	if err != nil {
		log.Panicf("[Panic] Could not pretty print value: %s", err.Error())
	}
	return string(out)
}

// JoinInts renders values as "[1, 2, 3]".
func JoinInts(values []int) string {
	var parts = make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, strconv.Itoa(value))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
