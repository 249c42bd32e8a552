package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"delve-server/pkg/utils"
)

// seedutil - утилита для работы с сидами генератора.
// Удобна, чтобы воспроизвести баг: хешируем имя бага в сид и
// запускаем сервер с -seed.
func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "random":
		fmt.Println(time.Now().UnixNano())
	case "hash":
		if len(os.Args) < 3 {
			fmt.Println("Usage: seedutil hash <string>")
			return
		}
		fmt.Println(utils.StringToSeed(os.Args[2]))
	case "check":
		if len(os.Args) < 3 {
			fmt.Println("Usage: seedutil check <seed>")
			return
		}
		seed, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid seed: %v\n", err)
			return
		}
		if seed <= 0 {
			fmt.Println("Seed must be positive")
			return
		}
		fmt.Printf("Seed %d is valid. Run: server -seed %d\n", seed, seed)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println("seedutil - dungeon seed helper")
	fmt.Println("Commands:")
	fmt.Println("  random          print a fresh random seed")
	fmt.Println("  hash <string>   derive a stable seed from a string")
	fmt.Println("  check <seed>    validate a seed value")
}
