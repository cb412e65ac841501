package main

import (
	"log"
	"os"
)

func main() {
	os.Exit(1)          // want `вызов os.Exit в функции main запрещён`
	log.Fatal("boom")   // want `вызов log.Fatal в функции main запрещён`
	log.Fatalf("%d", 1) // want `вызов log.Fatalf в функции main запрещён`

	defer func() {
		os.Exit(2)
	}()
}

func helper() {
	os.Exit(3)
}
